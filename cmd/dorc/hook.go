package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "hook",
		Short:  MsgHookShort,
		Hidden: true,
	}
	cmd.AddCommand(newChpwdCmd())
	return cmd
}

func newChpwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chpwd <dir>",
		Short: MsgChpwdShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}

			dir, err := filepath.Abs(args[0])
			if err != nil {
				dir = args[0]
			}

			listing, err := s.ChangedDirectory(dir)
			if err != nil {
				return err
			}
			if listing != "" {
				fmt.Fprintln(cmd.OutOrStdout(), listing)
			}
			return nil
		},
	}
}
