package cli

import (
	"github.com/spf13/cobra"

	"github.com/natvega/tasktique/internal/task"
)

var (
	editTitle       string
	editDescription string
	editPriority    string
	editDue         string
	editClearDue    bool
	editEstimate    string
	editStatus      string
	editTags        []string
)

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "desc", "", "New description")
	editCmd.Flags().StringVar(&editPriority, "priority", "", "New priority: low, medium or high")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "Remove the due date")
	editCmd.Flags().StringVar(&editEstimate, "estimate", "", "New estimate, e.g. 30m, 2h, 1.5d")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status: pending or completed")
	editCmd.Flags().StringSliceVar(&editTags, "tag", nil, "Replace tag ids (repeatable)")
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update task fields",
	Long:  `Update a task. Only the flags you pass are sent and applied; everything else is left alone.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	var u task.Update

	if cmd.Flags().Changed("title") {
		u.Title = &editTitle
	}
	if cmd.Flags().Changed("desc") {
		u.Description = &editDescription
	}
	if cmd.Flags().Changed("priority") {
		p, err := parsePriority(editPriority)
		if err != nil {
			return err
		}
		u.Priority = &p
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDue(editDue)
		if err != nil {
			return err
		}
		u.DueDate = &due
	}
	u.ClearDueDate = editClearDue
	if cmd.Flags().Changed("estimate") {
		est, err := parseEstimate(editEstimate)
		if err != nil {
			return err
		}
		u.Estimation = &est
	}
	if cmd.Flags().Changed("status") {
		switch task.Status(editStatus) {
		case task.StatusPending, task.StatusCompleted:
			s := task.Status(editStatus)
			u.Status = &s
		default:
			return errUnknownStatus(editStatus)
		}
	}
	if cmd.Flags().Changed("tag") {
		tags := append([]string(nil), editTags...)
		u.Tags = &tags
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.tasks.Refresh(cmd.Context()); err != nil {
		return err
	}
	return app.tasks.Update(cmd.Context(), args[0], u)
}
