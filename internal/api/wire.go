package api

import (
	"time"

	"github.com/natvega/tasktique/internal/task"
)

// apiTask mirrors the remote task JSON shape field for field.
type apiTask struct {
	ID              string   `json:"_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	DueDate         *string  `json:"due_date"`
	EstimationType  string   `json:"estimation_type"`
	EstimationValue *float64 `json:"estimation_value"`
	Completed       *bool    `json:"completed,omitempty"`
	Status          *string  `json:"status,omitempty"`
	CreatedAt       *string  `json:"created_at"`
	UpdatedAt       *string  `json:"updated_at"`
}

type tasksResponse struct {
	Message  string        `json:"message,omitempty"`
	Tasks    []apiTask     `json:"tasks"`
	Metadata *statsPayload `json:"metadata,omitempty"`
}

type taskResponse struct {
	Message string  `json:"message"`
	Task    apiTask `json:"task"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// statsPayload is the optional precomputed aggregate some responses carry.
type statsPayload struct {
	TotalTasks          int     `json:"total_tasks"`
	HighPriorityCount   int     `json:"high_priority_count"`
	MediumPriorityCount int     `json:"medium_priority_count"`
	LowPriorityCount    int     `json:"low_priority_count"`
	TotalEstimatedTime  string  `json:"total_estimated_time"`
	TotalEstimatedHours float64 `json:"total_estimated_hours"`
}

// toStats converts the payload to the domain stats type. A nil payload
// maps to nil, which the store reads as "recompute locally".
func (p *statsPayload) toStats() *task.Stats {
	if p == nil {
		return nil
	}
	return &task.Stats{
		Total: p.TotalTasks,
		ByPriority: map[task.Priority]int{
			task.PriorityHigh:   p.HighPriorityCount,
			task.PriorityMedium: p.MediumPriorityCount,
			task.PriorityLow:    p.LowPriorityCount,
		},
		EstimatedTime:  p.TotalEstimatedTime,
		EstimatedHours: p.TotalEstimatedHours,
	}
}

// decode maps a wire task to the domain type. Status is the single
// source of truth: an explicit status field wins, a bare completed flag
// is converted, and the default is pending.
func (a apiTask) decode() task.Task {
	t := task.Task{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Priority:    task.Priority(a.Priority),
		Status:      task.StatusPending,
		Estimation: task.Estimation{
			Unit:  task.EstimationUnit(a.EstimationType),
			Value: a.EstimationValue,
		},
	}

	if t.ID == "" {
		t.ID = placeholderID()
	}
	if a.Status != nil {
		t.Status = task.Status(*a.Status)
	} else if a.Completed != nil {
		t.Status = task.StatusFromCompleted(*a.Completed)
	}
	if a.DueDate != nil {
		if due, err := time.Parse(time.RFC3339, *a.DueDate); err == nil {
			t.DueDate = &due
		}
	}
	if a.CreatedAt != nil {
		if created, err := time.Parse(time.RFC3339, *a.CreatedAt); err == nil {
			t.CreatedAt = created
		}
	}
	return t
}

func decodeTasks(in []apiTask) []task.Task {
	out := make([]task.Task, len(in))
	for i, a := range in {
		out[i] = a.decode()
	}
	return out
}
