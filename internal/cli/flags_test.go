package cli

import (
	"testing"
	"time"

	"github.com/natvega/tasktique/internal/task"
)

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"low", "medium", "high"} {
		if _, err := parsePriority(valid); err != nil {
			t.Errorf("parsePriority(%q): unexpected error %v", valid, err)
		}
	}
	if _, err := parsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestParseDue(t *testing.T) {
	t.Run("date only is local midnight", func(t *testing.T) {
		got, err := parseDue("2026-09-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		if _, err := parseDue("2026-09-15T10:30:00Z"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := parseDue("next tuesday"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		in       string
		wantUnit task.EstimationUnit
		wantVal  float64
	}{
		{"30m", task.UnitMinutes, 30},
		{"2h", task.UnitHours, 2},
		{"1.5d", task.UnitDays, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseEstimate(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Unit != tt.wantUnit {
				t.Errorf("unit: got %q, want %q", got.Unit, tt.wantUnit)
			}
			if got.Value == nil || *got.Value != tt.wantVal {
				t.Errorf("value: got %v, want %v", got.Value, tt.wantVal)
			}
		})
	}

	for _, bad := range []string{"", "h", "2w", "abch"} {
		if _, err := parseEstimate(bad); err == nil {
			t.Errorf("parseEstimate(%q): expected error", bad)
		}
	}
}

func TestParseFilterAndSort(t *testing.T) {
	for _, valid := range []string{"all", "active", "completed", "today", "overdue"} {
		if _, err := parseFilter(valid); err != nil {
			t.Errorf("parseFilter(%q): unexpected error %v", valid, err)
		}
	}
	if _, err := parseFilter("done"); err == nil {
		t.Error("expected error for unknown filter")
	}

	for _, valid := range []string{"dueDate", "priority", "title", "createdAt"} {
		if _, err := parseSort(valid); err != nil {
			t.Errorf("parseSort(%q): unexpected error %v", valid, err)
		}
	}
	if _, err := parseSort("due"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}
