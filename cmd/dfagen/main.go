// Command dfagen classifies finite automata, converts them to deterministic
// automata, tests words against them and generates Go matchers.
package main

import (
	"context"
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	// This is needed to make `glog` believe that the flags have already been parsed, otherwise
	// every log messages is prefixed by an error message stating the the flags haven't been
	// parsed.
	_ = flag.CommandLine.Parse([]string{})

	// Always log to stderr by default
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		glog.Fatalf("error running command: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dfagen",
		Short:         "Convert finite automata to DFAs and test words against them",
		Long:          "dfagen reads an automaton description, removes epsilon moves, applies subset construction and reports which words the resulting DFA accepts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(newRunCommand(), newClassifyCommand(), newGenerateCommand())
	return rootCmd
}
