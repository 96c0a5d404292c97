package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KromDaniel/dfagen/internal/codegen"
	"github.com/KromDaniel/dfagen/internal/description"
	"github.com/KromDaniel/dfagen/internal/report"
	"github.com/KromDaniel/dfagen/pkg/dfagen"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newRunCommand creates the command printing every automaton of the
// normalization followed by the word results.
func newRunCommand() *cobra.Command {
	var (
		opts  dfagen.Options
		table bool
		save  string
	)

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Normalize an automaton and test words against it",
		Long:  "Print the input automaton, the epsilon-free and determinized automata when they differ, then whether each word is accepted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			result, err := dfagen.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, step := range result.Steps {
				report.Automaton(out, step.Name, step.Automaton, step.Kind)
				fmt.Fprintln(out)
			}

			if table {
				report.Summary(out, result.Steps)
				report.WordTable(out, result.Words)
			} else {
				report.Words(out, result.Words)
			}

			if save != "" {
				if err := saveResult(save, opts.Input, result); err != nil {
					return err
				}
				glog.Infof("Saved %s to %s", result.FinalKind(), save)
			}
			return nil
		},
	}

	addWordFlag(cmd.Flags(), &opts.Words, "Word to test after the description words")
	addVerboseFlag(cmd.Flags(), &opts.Verbose)
	cmd.Flags().BoolVar(&table, FlagTable, false, "Print a step summary and the word results as tables")
	cmd.Flags().BoolVar(&opts.CrossCheck, FlagCrossCheck, false, "Fail when the DFA and the input automaton disagree on a word")
	cmd.Flags().BoolVar(&opts.Simulate, FlagSimulate, false, "Evaluate words on the input automaton instead of the DFA")
	cmd.Flags().IntVar(&opts.Concurrency, FlagConcurrency, 0, "Goroutines evaluating words (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&save, FlagSave, "", "Write the final DFA as a .json or .yaml description")

	return cmd
}

func saveResult(path, input string, result *dfagen.Result) error {
	words := make([]string, 0, len(result.Words))
	for _, w := range result.Words {
		words = append(words, w.Word)
	}

	base := filepath.Base(input)
	name := codegen.Identifier(strings.TrimSuffix(base, filepath.Ext(base)))
	if err := description.Save(path, description.FromAutomaton(name, result.Final(), words)); err != nil {
		return errors.Wrap(err, "unable to save result")
	}
	return nil
}
