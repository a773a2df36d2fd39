package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: MsgPromptShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s.RenderPrompt())
			return nil
		},
	}
}
