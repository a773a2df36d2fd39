package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dorc/internal/version"
	"github.com/arthur-debert/dorc/pkg/logging"
	"github.com/arthur-debert/dorc/pkg/session"
	"github.com/arthur-debert/dorc/pkg/ui"
)

var (
	verbosity  int
	formatFlag string

	rootCmd = &cobra.Command{
		Use:   "dorc",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "auto", MsgFlagFormat)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newDirsCmd())
	rootCmd.AddCommand(newGlobCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
}

// newSession builds the session context honoring the --format flag
func newSession() (*session.Session, error) {
	format, err := ui.ParseFormat(formatFlag)
	if err != nil {
		return nil, err
	}
	return session.New(format)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: MsgVersionShort,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dorc version %s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(dorc completion bash)

Zsh:
  $ dorc completion zsh > "${fpath[1]}/_dorc"

Fish:
  $ dorc completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}
