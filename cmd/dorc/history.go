package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: MsgHistoryShort,
	}
	cmd.AddCommand(newHistoryAddCmd())
	cmd.AddCommand(newHistoryListCmd())
	return cmd
}

func newHistoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add -- <command...>",
		Short: MsgHistAddShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			return s.AddHistory(strings.Join(args, " "))
		},
	}
}

func newHistoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgHistListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}

			entries, err := s.History.Load()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.When.Format("2006-01-02 15:04:05"), e.Command)
			}
			return nil
		},
	}
}
