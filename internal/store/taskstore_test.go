package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/natvega/tasktique/internal/task"
	"github.com/natvega/tasktique/internal/testutil"
)

func seededStore(t *testing.T, gw *testutil.GatewayStub, notify Notifier, tasks ...task.Task) *TaskStore {
	t.Helper()
	s := NewTaskStore(gw, notify)
	gw.FetchFunc = func(ctx context.Context) ([]task.Task, *task.Stats, error) {
		return append([]task.Task(nil), tasks...), nil, nil
	}
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("seed refresh failed: %v", err)
	}
	gw.FetchFunc = nil
	return s
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces list wholesale and clears last error", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "old", Status: task.StatusPending})

		gw.FetchFunc = func(ctx context.Context) ([]task.Task, *task.Stats, error) {
			return nil, nil, errors.New("boom")
		}
		s.Refresh(ctx)

		gw.FetchFunc = func(ctx context.Context) ([]task.Task, *task.Stats, error) {
			return []task.Task{{ID: "new", Status: task.StatusPending}}, nil, nil
		}
		if err := s.Refresh(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := s.Tasks()
		if len(got) != 1 || got[0].ID != "new" {
			t.Errorf("got %v, want the new list", got)
		}
		if s.LastError() != "" {
			t.Errorf("last error not cleared: %q", s.LastError())
		}
	})

	t.Run("failure leaves previous list untouched", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		notify := &testutil.NotifierRecorder{}
		s := seededStore(t, gw, notify, task.Task{ID: "a", Status: task.StatusPending})
		before := s.Tasks()

		gw.FetchFunc = func(ctx context.Context) ([]task.Task, *task.Stats, error) {
			return nil, nil, errors.New("service unavailable")
		}
		if err := s.Refresh(ctx); err == nil {
			t.Fatal("expected error")
		}

		if !reflect.DeepEqual(s.Tasks(), before) {
			t.Error("task list changed on failed refresh")
		}
		if s.LastError() != "service unavailable" {
			t.Errorf("last error: got %q", s.LastError())
		}
		if notify.LastError() != "service unavailable" {
			t.Errorf("notifier: got %q", notify.LastError())
		}
	})

	t.Run("server metadata overrides covered stats fields", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := NewTaskStore(gw, nil)
		gw.FetchFunc = func(ctx context.Context) ([]task.Task, *task.Stats, error) {
			tasks := []task.Task{
				{ID: "a", Status: task.StatusCompleted, Priority: task.PriorityLow},
				{ID: "b", Status: task.StatusPending, Priority: task.PriorityLow},
			}
			server := &task.Stats{
				Total:          99,
				ByPriority:     map[task.Priority]int{task.PriorityHigh: 99},
				EstimatedTime:  "99 hours",
				EstimatedHours: 99,
			}
			return tasks, server, nil
		}
		if err := s.Refresh(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stats := s.Stats()
		if stats.Total != 99 || stats.EstimatedHours != 99 {
			t.Errorf("server fields not adopted: %+v", stats)
		}
		// Fields the payload does not carry are still derived locally.
		if stats.ByStatus[task.StatusCompleted] != 1 {
			t.Errorf("status counts not derived locally: %+v", stats.ByStatus)
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("appends the remote-confirmed task", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		notify := &testutil.NotifierRecorder{}
		s := seededStore(t, gw, notify, task.Task{ID: "a", Status: task.StatusPending})

		gw.CreateFunc = func(ctx context.Context, d task.Draft) (task.Task, error) {
			return task.Task{ID: "remote-id", Title: d.Title, Status: task.StatusPending}, nil
		}
		created, err := s.Create(ctx, task.Draft{Title: "New task"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "remote-id" {
			t.Errorf("got id %q, want remote-id", created.ID)
		}

		got := s.Tasks()
		if len(got) != 2 || got[1].ID != "remote-id" {
			t.Errorf("task not appended: %v", got)
		}
		if len(notify.Successes) == 0 {
			t.Error("no success notification")
		}
		if s.Stats().Total != 2 {
			t.Errorf("stats not recomputed: %+v", s.Stats())
		}
	})

	t.Run("failure leaves the list byte-for-byte equal", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Title: "Keep me", Status: task.StatusPending})
		before := s.Tasks()

		gw.CreateFunc = func(ctx context.Context, d task.Draft) (task.Task, error) {
			return task.Task{}, errors.New("create rejected")
		}
		if _, err := s.Create(ctx, task.Draft{Title: "Doomed"}); err == nil {
			t.Fatal("expected error")
		}

		if !reflect.DeepEqual(s.Tasks(), before) {
			t.Error("local state mutated on failed create")
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial fields locally after the call", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil,
			task.Task{ID: "a", Title: "Old", Description: "keep", Status: task.StatusPending})

		title := "Renamed"
		if err := s.Update(ctx, "a", task.Update{Title: &title}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := s.Get("a")
		if got.Title != "Renamed" || got.Description != "keep" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown id fails before any network call", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Status: task.StatusPending})

		title := "x"
		err := s.Update(ctx, "missing", task.Update{Title: &title})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
		if gw.CallCount("UpdateTask") != 0 {
			t.Error("network call was made for a missing task")
		}
	})

	t.Run("failure leaves the task unchanged", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Title: "Old", Status: task.StatusPending})

		gw.UpdateFunc = func(ctx context.Context, id string, u task.Update) (task.Task, error) {
			return task.Task{}, errors.New("update rejected")
		}
		title := "Renamed"
		if err := s.Update(ctx, "a", task.Update{Title: &title}); err == nil {
			t.Fatal("expected error")
		}

		got, _ := s.Get("a")
		if got.Title != "Old" {
			t.Errorf("task mutated on failure: %+v", got)
		}
	})

	t.Run("reconciles against the latest state, not a call-time snapshot", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil,
			task.Task{ID: "a", Status: task.StatusPending},
			task.Task{ID: "b", Title: "Old", Status: task.StatusPending})

		// While the update on b is in flight, a toggle on a settles.
		gw.UpdateFunc = func(ctx context.Context, id string, u task.Update) (task.Task, error) {
			if err := s.ToggleCompletion(ctx, "a"); err != nil {
				t.Fatalf("nested toggle failed: %v", err)
			}
			return task.Task{}, nil
		}

		title := "Renamed"
		if err := s.Update(ctx, "b", task.Update{Title: &title}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		a, _ := s.Get("a")
		b, _ := s.Get("b")
		if a.Status != task.StatusCompleted {
			t.Error("first mutation was lost")
		}
		if b.Title != "Renamed" {
			t.Error("second mutation was lost")
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes locally on success only", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil,
			task.Task{ID: "a", Status: task.StatusPending},
			task.Task{ID: "b", Status: task.StatusPending})

		if err := s.Delete(ctx, "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := s.Tasks()
		if len(got) != 1 || got[0].ID != "b" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("failure keeps the task", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Status: task.StatusPending})

		gw.DeleteFunc = func(ctx context.Context, id string) error {
			return errors.New("delete rejected")
		}
		if err := s.Delete(ctx, "a"); err == nil {
			t.Fatal("expected error")
		}
		if len(s.Tasks()) != 1 {
			t.Error("task removed despite failure")
		}
	})

	t.Run("unknown id short-circuits", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil)

		if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
		if gw.CallCount("DeleteTask") != 0 {
			t.Error("network call was made for a missing task")
		}
	})
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip restores the original status", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Status: task.StatusPending})

		if err := s.ToggleCompletion(ctx, "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := s.Get("a")
		if got.Status != task.StatusCompleted || !got.Completed() {
			t.Errorf("after first toggle: %+v", got)
		}

		if err := s.ToggleCompletion(ctx, "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ = s.Get("a")
		if got.Status != task.StatusPending || got.Completed() {
			t.Errorf("after second toggle: %+v", got)
		}
	})

	t.Run("sends the opposite status to the service", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Status: task.StatusCompleted})

		var sent task.Status
		gw.UpdateStatusFunc = func(ctx context.Context, id string, status task.Status) (task.Task, error) {
			sent = status
			return task.Task{}, nil
		}
		if err := s.ToggleCompletion(ctx, "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != task.StatusPending {
			t.Errorf("sent %q, want pending", sent)
		}
	})

	t.Run("unknown id fails without a network call", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		notify := &testutil.NotifierRecorder{}
		s := seededStore(t, gw, notify)

		if err := s.ToggleCompletion(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
		if gw.CallCount("UpdateTaskStatus") != 0 {
			t.Error("network call was made for a missing task")
		}
		if notify.LastError() == "" {
			t.Error("no error notification")
		}
	})

	t.Run("failure leaves the status alone", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Status: task.StatusPending})

		gw.UpdateStatusFunc = func(ctx context.Context, id string, status task.Status) (task.Task, error) {
			return task.Task{}, errors.New("toggle rejected")
		}
		if err := s.ToggleCompletion(ctx, "a"); err == nil {
			t.Fatal("expected error")
		}
		got, _ := s.Get("a")
		if got.Status != task.StatusPending {
			t.Errorf("status changed despite failure: %+v", got)
		}
	})
}

func TestProcessPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("appends generated tasks, never replaces", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "existing", Status: task.StatusPending})

		gw.PromptFunc = func(ctx context.Context, text string) ([]task.Task, *task.Stats, error) {
			return []task.Task{
				{ID: "g1", Status: task.StatusPending},
				{ID: "g2", Status: task.StatusPending},
			}, nil, nil
		}
		generated, err := s.ProcessPrompt(ctx, "plan my week")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(generated) != 2 {
			t.Fatalf("got %d generated, want 2", len(generated))
		}

		got := s.Tasks()
		if len(got) != 3 || got[0].ID != "existing" {
			t.Errorf("got %v, want existing task preserved plus two new", got)
		}
	})

	t.Run("adopts server metadata when present", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := NewTaskStore(gw, nil)

		gw.PromptFunc = func(ctx context.Context, text string) ([]task.Task, *task.Stats, error) {
			return []task.Task{{ID: "g1", Status: task.StatusPending}},
				&task.Stats{Total: 7, EstimatedTime: "7 hours", EstimatedHours: 7}, nil
		}
		if _, err := s.ProcessPrompt(ctx, "x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Stats().Total != 7 {
			t.Errorf("metadata not adopted: %+v", s.Stats())
		}
	})

	t.Run("failure leaves the list untouched", func(t *testing.T) {
		gw := &testutil.GatewayStub{}
		s := seededStore(t, gw, nil, task.Task{ID: "a", Status: task.StatusPending})
		before := s.Tasks()

		gw.PromptFunc = func(ctx context.Context, text string) ([]task.Task, *task.Stats, error) {
			return nil, nil, errors.New("ai unavailable")
		}
		if _, err := s.ProcessPrompt(ctx, "x"); err == nil {
			t.Fatal("expected error")
		}
		if !reflect.DeepEqual(s.Tasks(), before) {
			t.Error("local state mutated on failed prompt")
		}
	})
}

func TestStatusInvariantAfterEveryOperation(t *testing.T) {
	ctx := context.Background()
	gw := &testutil.GatewayStub{}
	s := seededStore(t, gw, nil,
		task.Task{ID: "a", Status: task.StatusPending},
		task.Task{ID: "b", Status: task.StatusCompleted})

	check := func(t *testing.T) {
		t.Helper()
		for _, tk := range s.Tasks() {
			want := tk.Status == task.StatusCompleted
			if tk.Completed() != want {
				t.Errorf("task %s: Completed()=%v disagrees with status %q", tk.ID, tk.Completed(), tk.Status)
			}
		}
	}

	gw.CreateFunc = func(ctx context.Context, d task.Draft) (task.Task, error) {
		return task.Task{ID: "c", Status: task.StatusPending}, nil
	}
	s.Create(ctx, task.Draft{Title: "c"})
	check(t)

	boolTrue := true
	s.Update(ctx, "a", task.Update{Completed: &boolTrue})
	check(t)

	s.ToggleCompletion(ctx, "b")
	check(t)

	s.Delete(ctx, "c")
	check(t)
}

func TestStatsUseStoreClock(t *testing.T) {
	gw := &testutil.GatewayStub{}
	s := NewTaskStore(gw, nil)

	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	s.Now = func() time.Time { return fixed }

	due := fixed.Add(2 * time.Hour)
	gw.FetchFunc = func(ctx context.Context) ([]task.Task, *task.Stats, error) {
		return []task.Task{{ID: "a", Status: task.StatusPending, DueDate: &due}}, nil, nil
	}
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Stats().DueToday != 1 {
		t.Errorf("due today: got %d, want 1", s.Stats().DueToday)
	}
}
