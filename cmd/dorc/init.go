package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "init [zsh|bash]",
		Short:     MsgInitShort,
		Long:      MsgInitLong,
		ValidArgs: []string{"zsh", "bash"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s.Bootstrap(args[0]))
			return nil
		},
	}
}
