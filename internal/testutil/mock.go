// Package testutil provides shared fakes for the tasktique test suites.
package testutil

import (
	"context"
	"sync"

	"github.com/natvega/tasktique/internal/task"
)

// GatewayStub is a scriptable in-memory stand-in for the remote task
// service. Each hook is optional; unset hooks succeed with zero values.
// Every call is recorded in Calls by method name.
type GatewayStub struct {
	mu    sync.Mutex
	Calls []string

	FetchFunc        func(ctx context.Context) ([]task.Task, *task.Stats, error)
	CreateFunc       func(ctx context.Context, d task.Draft) (task.Task, error)
	UpdateFunc       func(ctx context.Context, id string, u task.Update) (task.Task, error)
	UpdateStatusFunc func(ctx context.Context, id string, status task.Status) (task.Task, error)
	DeleteFunc       func(ctx context.Context, id string) error
	PromptFunc       func(ctx context.Context, text string) ([]task.Task, *task.Stats, error)
}

func (g *GatewayStub) record(name string) {
	g.mu.Lock()
	g.Calls = append(g.Calls, name)
	g.mu.Unlock()
}

// CallCount returns how many times a method was invoked.
func (g *GatewayStub) CallCount(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (g *GatewayStub) FetchTasks(ctx context.Context) ([]task.Task, *task.Stats, error) {
	g.record("FetchTasks")
	if g.FetchFunc != nil {
		return g.FetchFunc(ctx)
	}
	return nil, nil, nil
}

func (g *GatewayStub) CreateTask(ctx context.Context, d task.Draft) (task.Task, error) {
	g.record("CreateTask")
	if g.CreateFunc != nil {
		return g.CreateFunc(ctx, d)
	}
	return task.Task{}, nil
}

func (g *GatewayStub) UpdateTask(ctx context.Context, id string, u task.Update) (task.Task, error) {
	g.record("UpdateTask")
	if g.UpdateFunc != nil {
		return g.UpdateFunc(ctx, id, u)
	}
	return task.Task{}, nil
}

func (g *GatewayStub) UpdateTaskStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	g.record("UpdateTaskStatus")
	if g.UpdateStatusFunc != nil {
		return g.UpdateStatusFunc(ctx, id, status)
	}
	return task.Task{}, nil
}

func (g *GatewayStub) DeleteTask(ctx context.Context, id string) error {
	g.record("DeleteTask")
	if g.DeleteFunc != nil {
		return g.DeleteFunc(ctx, id)
	}
	return nil
}

func (g *GatewayStub) ProcessPrompt(ctx context.Context, text string) ([]task.Task, *task.Stats, error) {
	g.record("ProcessPrompt")
	if g.PromptFunc != nil {
		return g.PromptFunc(ctx, text)
	}
	return nil, nil, nil
}

// NotifierRecorder captures notifications for assertions.
type NotifierRecorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *NotifierRecorder) Success(msg string) {
	n.mu.Lock()
	n.Successes = append(n.Successes, msg)
	n.mu.Unlock()
}

func (n *NotifierRecorder) Error(msg string) {
	n.mu.Lock()
	n.Errors = append(n.Errors, msg)
	n.mu.Unlock()
}

// LastError returns the most recent error notification, or "".
func (n *NotifierRecorder) LastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Errors) == 0 {
		return ""
	}
	return n.Errors[len(n.Errors)-1]
}
