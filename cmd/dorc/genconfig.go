package main

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dorc/pkg/config"
)

func newGenconfigCmd() *cobra.Command {
	var merged bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !merged {
				_, err := cmd.OutOrStdout().Write(config.DefaultTOML())
				return err
			}

			// Render the effective configuration after user overrides
			s, err := newSession()
			if err != nil {
				return err
			}
			out, err := toml.Marshal(s.Config)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&merged, "merged", false, "Print the effective configuration with overrides applied")
	return cmd
}
