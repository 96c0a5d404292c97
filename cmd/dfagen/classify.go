package main

import (
	"fmt"

	"github.com/KromDaniel/dfagen/pkg/dfagen"
	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE",
		Short: "Print whether an automaton is a DFA, an NFA or an epsilon-NFA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dfagen.Classify(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}
}
