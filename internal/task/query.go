package task

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter selects which tasks a view shows. Modes are mutually exclusive.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
	FilterToday     Filter = "today"
)

// Filters lists the filter modes in cycling order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted, FilterToday, FilterOverdue}

// Sort identifies a sort key.
type Sort string

const (
	SortDueDate   Sort = "dueDate"
	SortPriority  Sort = "priority"
	SortTitle     Sort = "title"
	SortCreatedAt Sort = "createdAt"
)

// Query describes a view over a task list: filter, then search, then sort.
type Query struct {
	Filter Filter
	Search string
	SortBy Sort
	Desc   bool
}

// Select picks a sort key. Selecting the active key again flips the
// direction; selecting a different key resets to ascending.
func (q *Query) Select(s Sort) {
	if q.SortBy == s {
		q.Desc = !q.Desc
		return
	}
	q.SortBy = s
	q.Desc = false
}

// titleCollator provides locale-aware title comparison.
var titleCollator = collate.New(language.Und)

// Apply runs the filter → search → sort pipeline over a snapshot and
// returns a new slice; the input is not modified.
func Apply(tasks []Task, q Query, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Filter.matches(t, now) && matchesSearch(t, q.Search) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], q.SortBy, q.Desc)
	})
	return out
}

// matches applies a single filter mode. Overdue requires the task to be
// incomplete; Today deliberately does not, matching the list view
// semantics rather than the dashboard stat.
func (f Filter) matches(t Task, now time.Time) bool {
	switch f {
	case FilterCompleted:
		return t.Completed()
	case FilterActive:
		return !t.Completed()
	case FilterOverdue:
		return !t.Completed() && t.DueDate != nil && beforeDay(*t.DueDate, now)
	case FilterToday:
		return t.DueDate != nil && sameDay(*t.DueDate, now)
	default:
		return true
	}
}

// matchesSearch does a case-insensitive substring match on title or
// description. An empty query matches everything.
func matchesSearch(t Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// less compares two tasks under a sort key. Tasks without a due date sort
// after all tasks with one regardless of direction; only comparisons
// between non-nil due dates flip when descending.
func less(a, b Task, key Sort, desc bool) bool {
	var cmp int
	switch key {
	case SortDueDate:
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case a.DueDate.Equal(*b.DueDate):
			return false
		case a.DueDate.Before(*b.DueDate):
			cmp = -1
		default:
			cmp = 1
		}
	case SortPriority:
		cmp = a.Priority.rank() - b.Priority.rank()
	case SortTitle:
		cmp = titleCollator.CompareString(a.Title, b.Title)
	case SortCreatedAt:
		switch {
		case a.CreatedAt.Equal(b.CreatedAt):
			return false
		case a.CreatedAt.Before(b.CreatedAt):
			cmp = -1
		default:
			cmp = 1
		}
	default:
		return false
	}

	if desc {
		return cmp > 0
	}
	return cmp < 0
}
