package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wouterdebie/salph/alphabet"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := alphabet.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available alphabets:")
			for _, info := range infos {
				fmt.Fprintf(out, "  - %s: %s\n", info.Code, info.Name)
			}
			return nil
		},
	}
}
