package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/natvega/tasktique/internal/task"
)

var (
	addDescription string
	addPriority    string
	addDue         string
	addEstimate    string
	addTags        []string
)

func init() {
	addCmd.Flags().StringVar(&addDescription, "desc", "", "Task description")
	addCmd.Flags().StringVar(&addPriority, "priority", "medium", "Priority: low, medium or high")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addEstimate, "estimate", "", "Effort estimate, e.g. 30m, 2h, 1.5d")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag id (repeatable)")
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	priority, err := parsePriority(addPriority)
	if err != nil {
		return err
	}

	draft := task.Draft{
		Title:       strings.Join(args, " "),
		Description: addDescription,
		Priority:    priority,
		Estimation:  task.Estimation{Unit: task.UnitHours},
		Tags:        addTags,
	}
	// The create boundary is the only place the title is validated.
	if err := draft.Validate(); err != nil {
		return err
	}

	if addDue != "" {
		due, err := parseDue(addDue)
		if err != nil {
			return err
		}
		draft.DueDate = &due
	}
	if addEstimate != "" {
		est, err := parseEstimate(addEstimate)
		if err != nil {
			return err
		}
		draft.Estimation = est
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	_, err = app.tasks.Create(cmd.Context(), draft)
	return err
}
