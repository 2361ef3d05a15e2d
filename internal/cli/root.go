package cli

import (
	"github.com/spf13/cobra"

	"github.com/natvega/tasktique/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "tasktique",
	Short:   "Task manager backed by the TaskTique service",
	Long:    `Tasktique keeps a local mirror of your remote task list: create, edit, complete and delete tasks, tag them locally, and generate tasks from a free-text prompt.`,
	Version: version.String(),
}

func init() {
	rootCmd.AddCommand(
		listCmd,
		addCmd,
		editCmd,
		doneCmd,
		rmCmd,
		statsCmd,
		aiCmd,
		tagCmd,
		themeCmd,
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
