package main

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dorc/pkg/ui"
)

//go:embed topics/*.md
var topicsFS embed.FS

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "topics [topic]",
		Short:     MsgTopicsShort,
		Long:      MsgTopicsLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range topicNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			content, err := topicsFS.ReadFile("topics/" + args[0] + ".md")
			if err != nil {
				return fmt.Errorf("unknown topic: %s", args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTopic(string(content)))
			return nil
		},
	}
}

func topicNames() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderTopic formats markdown for the terminal, falling back to the raw
// text when rendering is unavailable
func renderTopic(content string) string {
	format, err := ui.ParseFormat(formatFlag)
	if err != nil || ui.Resolve(format, os.Stdout) == ui.FormatText {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
