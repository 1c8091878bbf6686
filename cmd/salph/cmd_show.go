package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wouterdebie/salph/alphabet"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <alphabet>",
		Short: "Show the contents of an alphabet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := alphabet.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a)
			return nil
		},
	}
}
