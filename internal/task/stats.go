package task

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Stats summarizes a task list. It is derived on demand and never
// persisted; the remote service may supply its own version, which takes
// precedence over local computation for the fields it covers.
type Stats struct {
	Total          int
	ByPriority     map[Priority]int
	ByStatus       map[Status]int
	DueToday       int
	Upcoming       int
	Overdue        int
	DueThisWeek    int
	CompletionRate int // percent, 0-100
	EstimatedHours float64
	EstimatedTime  string
}

// ComputeStats derives stats from a task snapshot. Date bucketing uses
// calendar dates in the local time zone; time of day is ignored.
func ComputeStats(tasks []Task, now time.Time) Stats {
	s := Stats{
		Total:      len(tasks),
		ByPriority: map[Priority]int{PriorityLow: 0, PriorityMedium: 0, PriorityHigh: 0},
		ByStatus:   map[Status]int{StatusPending: 0, StatusCompleted: 0},
	}

	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	for _, t := range tasks {
		s.ByPriority[t.Priority]++
		s.ByStatus[t.Status]++
		s.EstimatedHours += t.Estimation.Hours()

		if t.DueDate == nil || t.Completed() {
			continue
		}
		switch {
		case sameDay(*t.DueDate, now):
			s.DueToday++
		case beforeDay(*t.DueDate, now):
			s.Overdue++
		default:
			s.Upcoming++
		}
		if !t.DueDate.Before(weekStart) && t.DueDate.Before(weekEnd) {
			s.DueThisWeek++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = int(float64(s.ByStatus[StatusCompleted])/float64(s.Total)*100 + 0.5)
	}
	s.EstimatedTime = FormatHours(s.EstimatedHours)
	return s
}

// FormatHours renders an hour count the way the remote service does,
// e.g. "13 hours" or "2.5 hours".
func FormatHours(hours float64) string {
	return humanize.Ftoa(hours) + " hours"
}

// startOfWeek returns midnight of the Monday of now's week.
func startOfWeek(now time.Time) time.Time {
	day := startOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay reports whether a and b fall on the same local calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// beforeDay reports whether a's calendar date is strictly before b's.
func beforeDay(a, b time.Time) bool {
	return startOfDay(a).Before(startOfDay(b))
}

// afterDay reports whether a's calendar date is strictly after b's.
func afterDay(a, b time.Time) bool {
	return startOfDay(a).After(startOfDay(b))
}
