package main

import (
	"github.com/KromDaniel/dfagen/pkg/dfagen"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// newGenerateCommand creates the command compiling the DFA of a description
// into a Go matcher.
func newGenerateCommand() *cobra.Command {
	var opts dfagen.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Generate a Go matcher for the DFA of an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			if err := dfagen.Generate(cmd.Context(), opts); err != nil {
				return err
			}
			glog.Infof("Generated %s", opts.OutputFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, FlagName, "", "Type name of the matcher (default from the description)")
	cmd.Flags().StringVar(&opts.Package, FlagPackage, "main", "Package of the generated file")
	cmd.Flags().StringVarP(&opts.OutputFile, FlagOutput, "o", "", "Generated file")
	cmd.Flags().BoolVar(&opts.GenerateTestFile, FlagTestFile, false, "Also generate a test file for the description words")
	addWordFlag(cmd.Flags(), &opts.Words, "Extra word for the generated test file")
	addVerboseFlag(cmd.Flags(), &opts.Verbose)
	_ = cmd.MarkFlagRequired(FlagOutput)

	return cmd
}
