package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dorc/pkg/glob"
)

func newGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob <pattern>",
		Short: MsgGlobShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := glob.Expand(args[0])
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}
