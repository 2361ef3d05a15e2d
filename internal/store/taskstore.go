package store

import (
	"context"
	"sync"
	"time"

	"github.com/natvega/tasktique/internal/task"
)

// TaskStore holds the canonical in-memory task list. The remote service
// is the system of record; the store mirrors it, mutates through it, and
// reconciles responses back in.
//
// Every reconciliation happens against the list as it is when the
// network call resolves, never against a snapshot captured when the call
// was issued, so back-to-back mutations cannot lose each other's writes.
type TaskStore struct {
	mu      sync.Mutex
	tasks   []task.Task
	stats   task.Stats
	loading bool
	lastErr string

	gw     Gateway
	notify Notifier

	// Now is the clock used for stats and queries. Tests override it.
	Now func() time.Time
}

// NewTaskStore creates an empty store backed by the given gateway.
func NewTaskStore(gw Gateway, notify Notifier) *TaskStore {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &TaskStore{gw: gw, notify: notify, Now: time.Now}
}

// Tasks returns a copy of the current task list.
func (s *TaskStore) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]task.Task(nil), s.tasks...)
}

// Stats returns the most recently computed or server-supplied stats.
func (s *TaskStore) Stats() task.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Loading reports whether a remote call is in flight.
func (s *TaskStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the most recent failure, or "" after
// a successful refresh.
func (s *TaskStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Get looks up a task by id in the current list.
func (s *TaskStore) Get(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// Refresh replaces the local list wholesale from the remote service. On
// failure the previous list is left untouched.
func (s *TaskStore) Refresh(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	tasks, serverStats, err := s.gw.FetchTasks(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.lastErr = ""
	s.refreshStatsLocked(serverStats)
	s.mu.Unlock()
	return nil
}

// Create submits a draft and appends the remote-confirmed task. Nothing
// is appended on failure.
func (s *TaskStore) Create(ctx context.Context, d task.Draft) (task.Task, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.gw.CreateTask(ctx, d)
	if err != nil {
		return task.Task{}, s.fail(err)
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, created)
	s.refreshStatsLocked(nil)
	s.mu.Unlock()

	s.notify.Success("Task created successfully")
	return created, nil
}

// Update sends the partial fields to the remote service, then applies
// the same fields to the matching local task. The status/completed pair
// is collapsed to a single authoritative status before anything is
// touched.
func (s *TaskStore) Update(ctx context.Context, id string, u task.Update) error {
	if !s.has(id) {
		return s.fail(ErrNotFound)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.gw.UpdateTask(ctx, id, u); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	if i := s.indexLocked(id); i >= 0 {
		u.ApplyTo(&s.tasks[i])
	}
	s.refreshStatsLocked(nil)
	s.mu.Unlock()

	s.notify.Success("Task updated successfully")
	return nil
}

// Delete removes a task remotely, then locally on success only.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if !s.has(id) {
		return s.fail(ErrNotFound)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.DeleteTask(ctx, id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	if i := s.indexLocked(id); i >= 0 {
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	}
	s.refreshStatsLocked(nil)
	s.mu.Unlock()

	s.notify.Success("Task deleted")
	return nil
}

// ToggleCompletion flips a task between pending and completed. The
// opposite status is read from the store at call time; the result is
// written back against whatever the list looks like when the call
// resolves.
func (s *TaskStore) ToggleCompletion(ctx context.Context, id string) error {
	current, ok := s.Get(id)
	if !ok {
		return s.fail(ErrNotFound)
	}
	next := current.Status.Toggle()

	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.gw.UpdateTaskStatus(ctx, id, next); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	if i := s.indexLocked(id); i >= 0 {
		s.tasks[i].Status = next
	}
	s.refreshStatsLocked(nil)
	s.mu.Unlock()

	s.notify.Success("Task marked as " + string(next))
	return nil
}

// ProcessPrompt sends free text to the AI endpoint and appends the
// generated tasks to the list. The list is never replaced; server stats,
// when present, become authoritative.
func (s *TaskStore) ProcessPrompt(ctx context.Context, text string) ([]task.Task, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	generated, serverStats, err := s.gw.ProcessPrompt(ctx, text)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, generated...)
	s.refreshStatsLocked(serverStats)
	s.mu.Unlock()

	s.notify.Success("Tasks generated from prompt")
	return generated, nil
}

// PruneTag removes a tag id from every task's tag set. Tags are a
// local-only concern, so no remote call is involved.
func (s *TaskStore) PruneTag(tagID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		tags := s.tasks[i].Tags[:0]
		for _, id := range s.tasks[i].Tags {
			if id != tagID {
				tags = append(tags, id)
			}
		}
		s.tasks[i].Tags = tags
	}
}

// refreshStatsLocked recomputes stats from the current list. Fields the
// server metadata covers take precedence over the local computation;
// everything else is always derived locally.
func (s *TaskStore) refreshStatsLocked(server *task.Stats) {
	stats := task.ComputeStats(s.tasks, s.Now())
	if server != nil {
		stats.Total = server.Total
		stats.ByPriority = server.ByPriority
		stats.EstimatedTime = server.EstimatedTime
		stats.EstimatedHours = server.EstimatedHours
	}
	s.stats = stats
}

// fail records a failure and forwards it to the notifier. Local state is
// left exactly as it was.
func (s *TaskStore) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	s.notify.Error(err.Error())
	return err
}

func (s *TaskStore) has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

func (s *TaskStore) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
