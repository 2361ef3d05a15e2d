// Package theme persists the appearance preference in the local kv slot.
package theme

import (
	"fmt"

	"github.com/natvega/tasktique/internal/kv"
)

// Theme is the appearance preference.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// themeKey is the kv slot the preference lives under.
const themeKey = "theme"

// Parse validates a theme name.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark, System:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q (want light, dark or system)", s)
}

// Load reads the stored preference, defaulting to System when the slot
// is empty or holds an unknown value.
func Load(kvs *kv.Store) Theme {
	raw, ok := kvs.Get(themeKey)
	if !ok {
		return System
	}
	th, err := Parse(raw)
	if err != nil {
		return System
	}
	return th
}

// Save writes the preference to the kv slot.
func Save(kvs *kv.Store, th Theme) error {
	return kvs.Set(themeKey, string(th))
}
