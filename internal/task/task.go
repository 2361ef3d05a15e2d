package task

import (
	"errors"
	"strings"
	"time"
)

// Task is a locally cached copy of a remotely owned task.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	DueDate     *time.Time
	Priority    Priority
	Estimation  Estimation
	Tags        []string
}

// Completed reports whether the task status is completed. The boolean is
// always derived from Status; it is never stored separately.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// Status represents the task lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// StatusFromCompleted maps the boolean wire representation to a status.
func StatusFromCompleted(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}

// Priority represents task importance.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// rank orders priorities high first, for sorting.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// EstimationUnit is the unit an estimation value is expressed in.
type EstimationUnit string

const (
	UnitMinutes EstimationUnit = "minutes"
	UnitHours   EstimationUnit = "hours"
	UnitDays    EstimationUnit = "days"
)

// Estimation is an optional effort estimate. A nil Value means the task
// has not been estimated.
type Estimation struct {
	Unit  EstimationUnit
	Value *float64
}

// workdayHours is the number of hours a "day" estimation counts for.
const workdayHours = 8

// Hours normalizes the estimation to hours. Unestimated tasks contribute 0.
func (e Estimation) Hours() float64 {
	if e.Value == nil {
		return 0
	}
	switch e.Unit {
	case UnitMinutes:
		return *e.Value / 60
	case UnitDays:
		return *e.Value * workdayHours
	default:
		return *e.Value
	}
}

// ErrEmptyTitle is returned when a draft is submitted without a title.
var ErrEmptyTitle = errors.New("task title cannot be empty")

// Draft holds the fields a user supplies when creating a task. Status is
// not part of the draft: new tasks always start out pending.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Estimation  Estimation
	Tags        []string
}

// Validate checks the creation-boundary rules.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Update carries a partial set of task fields. Nil fields are left
// untouched. Setting a due date and clearing one are distinct: DueDate
// non-nil sets a new date, ClearDueDate removes the existing one.
type Update struct {
	Title        *string
	Description  *string
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
	Estimation   *Estimation
	Tags         *[]string
	Status       *Status
	Completed    *bool
}

// NewStatus resolves the authoritative status carried by the update, if
// any. When both Status and Completed are supplied, Status wins; the two
// are never honored independently.
func (u Update) NewStatus() *Status {
	if u.Status != nil {
		return u.Status
	}
	if u.Completed != nil {
		s := StatusFromCompleted(*u.Completed)
		return &s
	}
	return nil
}

// ApplyTo merges the update into a task, leaving omitted fields alone.
func (u Update) ApplyTo(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		due := *u.DueDate
		t.DueDate = &due
	} else if u.ClearDueDate {
		t.DueDate = nil
	}
	if u.Estimation != nil {
		t.Estimation = *u.Estimation
	}
	if u.Tags != nil {
		t.Tags = append([]string(nil), (*u.Tags)...)
	}
	if s := u.NewStatus(); s != nil {
		t.Status = *s
	}
}
