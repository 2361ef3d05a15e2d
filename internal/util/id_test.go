package util

import (
	"regexp"
	"testing"
)

func TestGenerateShortID(t *testing.T) {
	t.Run("length is always 6", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			id, err := GenerateShortID()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(id) != 6 {
				t.Errorf("expected length 6, got %d for id %q", len(id), id)
			}
		}
	})

	t.Run("contains only alphanumeric characters", func(t *testing.T) {
		pattern := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
		for i := 0; i < 100; i++ {
			id, err := GenerateShortID()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !pattern.MatchString(id) {
				t.Errorf("id %q contains non-alphanumeric characters", id)
			}
		}
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id, err := GenerateShortID()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[id] {
				t.Errorf("duplicate id generated: %q", id)
			}
			seen[id] = true
		}
	})
}
