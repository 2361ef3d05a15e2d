package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.tasks.Refresh(cmd.Context()); err != nil {
		return err
	}
	return app.tasks.ToggleCompletion(cmd.Context(), args[0])
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.tasks.Refresh(cmd.Context()); err != nil {
		return err
	}
	return app.tasks.Delete(cmd.Context(), args[0])
}

func errUnknownStatus(s string) error {
	return fmt.Errorf("unknown status %q (want pending or completed)", s)
}
