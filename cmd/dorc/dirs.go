package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: MsgDirsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}

			s.RestoreDirectory()
			for i, dir := range s.DirStack.Stack().Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", i, dir)
			}
			return nil
		},
	}
}
