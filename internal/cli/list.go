package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/natvega/tasktique/internal/task"
)

var (
	listFilter string
	listSort   string
	listDesc   bool
	listSearch string
)

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "Filter: all, active, completed, today or overdue")
	listCmd.Flags().StringVar(&listSort, "sort", "dueDate", "Sort key: dueDate, priority, title or createdAt")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "Sort in descending order")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive match on title or description")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `Fetch the task list from the service and print it filtered, searched and sorted.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := parseFilter(listFilter)
	if err != nil {
		return err
	}
	sortBy, err := parseSort(listSort)
	if err != nil {
		return err
	}

	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.tasks.Refresh(cmd.Context()); err != nil {
		return err
	}

	q := task.Query{Filter: filter, Search: listSearch, SortBy: sortBy, Desc: listDesc}
	tasks := task.Apply(app.tasks.Tasks(), q, time.Now())

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRI\tDUE\tEST\tTITLE\tTAGS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Status,
			t.Priority,
			formatDue(t.DueDate),
			formatEstimate(t.Estimation),
			t.Title,
			strings.Join(t.Tags, ","),
		)
	}
	return w.Flush()
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "-"
	}
	return due.Local().Format("2006-01-02")
}

func formatEstimate(e task.Estimation) string {
	if e.Value == nil {
		return "-"
	}
	switch e.Unit {
	case task.UnitMinutes:
		return fmt.Sprintf("%gm", *e.Value)
	case task.UnitDays:
		return fmt.Sprintf("%gd", *e.Value)
	default:
		return fmt.Sprintf("%gh", *e.Value)
	}
}
