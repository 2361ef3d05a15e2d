package theme

import (
	"path/filepath"
	"testing"

	"github.com/natvega/tasktique/internal/kv"
)

func TestLoadDefaultsToSystem(t *testing.T) {
	kvs, err := kv.Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got := Load(kvs); got != System {
		t.Errorf("got %q, want system", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	kvs, err := kv.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Save(kvs, Dark); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reopened, err := kv.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := Load(reopened); got != Dark {
		t.Errorf("got %q, want dark", got)
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	kvs, err := kv.Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	kvs.Set("theme", "neon")
	if got := Load(kvs); got != System {
		t.Errorf("got %q, want system fallback", got)
	}
}

func TestParse(t *testing.T) {
	for _, valid := range []string{"light", "dark", "system"} {
		if _, err := Parse(valid); err != nil {
			t.Errorf("Parse(%q): unexpected error %v", valid, err)
		}
	}
	if _, err := Parse("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
