// Package store owns the client-side mirrors of the task and tag
// collections and funnels every mutation through them.
package store

import (
	"context"
	"errors"

	"github.com/natvega/tasktique/internal/task"
)

// ErrNotFound is returned when an operation references an id that is not
// in the local store. It short-circuits before any network call.
var ErrNotFound = errors.New("task not found")

// Gateway is the remote task service surface the store depends on.
// api.Client is the production implementation.
type Gateway interface {
	FetchTasks(ctx context.Context) ([]task.Task, *task.Stats, error)
	CreateTask(ctx context.Context, d task.Draft) (task.Task, error)
	UpdateTask(ctx context.Context, id string, u task.Update) (task.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status task.Status) (task.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ProcessPrompt(ctx context.Context, text string) ([]task.Task, *task.Stats, error)
}

// Notifier delivers fire-and-forget user-visible notifications. The
// store never reads anything back from it.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
