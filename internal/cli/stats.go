package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/natvega/tasktique/internal/display"
	"github.com/natvega/tasktique/internal/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.tasks.Refresh(cmd.Context()); err != nil {
		return err
	}

	s := app.tasks.Stats()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total tasks\t%d\n", s.Total)
	fmt.Fprintf(w, "Completed\t%d (%d%%)\n", s.ByStatus[task.StatusCompleted], s.CompletionRate)
	fmt.Fprintf(w, "Pending\t%d\n", s.ByStatus[task.StatusPending])
	fmt.Fprintf(w, "Priority\thigh %d / medium %d / low %d\n",
		s.ByPriority[task.PriorityHigh], s.ByPriority[task.PriorityMedium], s.ByPriority[task.PriorityLow])
	fmt.Fprintf(w, "Due today\t%d\n", s.DueToday)
	fmt.Fprintf(w, "Due this week\t%d\n", s.DueThisWeek)
	fmt.Fprintf(w, "Upcoming\t%d\n", s.Upcoming)
	fmt.Fprintf(w, "Overdue\t%d\n", s.Overdue)
	fmt.Fprintf(w, "Estimated effort\t%s\n", s.EstimatedTime)
	return w.Flush()
}

var aiCmd = &cobra.Command{
	Use:   "ai <prompt...>",
	Short: "Generate tasks from a free-text prompt",
	Long:  `Send free text to the service's AI endpoint. Generated tasks are appended to your list.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAi,
}

func runAi(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	// Generation can take a while on the service side.
	line := display.New(os.Stderr)
	line.Start("Generating tasks")
	generated, err := app.tasks.ProcessPrompt(cmd.Context(), strings.Join(args, " "))
	line.Stop()
	if err != nil {
		return err
	}

	if len(generated) == 0 {
		fmt.Println("No tasks were generated.")
		return nil
	}
	for _, t := range generated {
		fmt.Printf("  + %s [%s]\n", t.Title, t.Priority)
	}
	return nil
}
