package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/natvega/tasktique/internal/task"
)

// parsePriority validates a priority flag value.
func parsePriority(s string) (task.Priority, error) {
	switch task.Priority(s) {
	case task.PriorityLow, task.PriorityMedium, task.PriorityHigh:
		return task.Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q (want low, medium or high)", s)
}

// parseDue accepts "2006-01-02" or a full RFC 3339 timestamp. Date-only
// values are midnight local time, which is all calendar-date bucketing
// looks at anyway.
func parseDue(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (want YYYY-MM-DD or RFC 3339)", s)
}

// parseEstimate turns "30m", "2h" or "1.5d" into an estimation.
func parseEstimate(s string) (task.Estimation, error) {
	if len(s) < 2 {
		return task.Estimation{}, fmt.Errorf("invalid estimate %q (want e.g. 30m, 2h, 1.5d)", s)
	}

	var unit task.EstimationUnit
	switch s[len(s)-1] {
	case 'm':
		unit = task.UnitMinutes
	case 'h':
		unit = task.UnitHours
	case 'd':
		unit = task.UnitDays
	default:
		return task.Estimation{}, fmt.Errorf("invalid estimate unit in %q (want m, h or d)", s)
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(s, s[len(s)-1:]), 64)
	if err != nil {
		return task.Estimation{}, fmt.Errorf("invalid estimate value in %q", s)
	}
	return task.Estimation{Unit: unit, Value: &value}, nil
}

// parseFilter validates a filter flag value.
func parseFilter(s string) (task.Filter, error) {
	for _, f := range task.Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q (want all, active, completed, today or overdue)", s)
}

// parseSort validates a sort flag value.
func parseSort(s string) (task.Sort, error) {
	switch task.Sort(s) {
	case task.SortDueDate, task.SortPriority, task.SortTitle, task.SortCreatedAt:
		return task.Sort(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (want dueDate, priority, title or createdAt)", s)
}
