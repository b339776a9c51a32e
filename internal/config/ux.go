package config

import (
	"fmt"
	"time"
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is "dark" (default, matching the classic chart) or "light".
	Theme string `yaml:"theme" env:"SQ9_THEME"`

	// CellWidth is the rendered width of one grid cell, in columns.
	CellWidth int `yaml:"cell_width"`

	// AltScreen runs the TUI in the terminal's alternate screen.
	AltScreen bool `yaml:"alt_screen"`

	// WatchDebounce is the quiet period after a data file change before
	// `sq9 --watch` reloads it.
	WatchDebounce time.Duration `yaml:"watch_debounce" env:"SQ9_WATCH_DEBOUNCE"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:         "dark",
		CellWidth:     6,
		AltScreen:     true,
		WatchDebounce: 250 * time.Millisecond,
	}
}

func (u UIConfig) validate() error {
	switch u.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme: %s (valid: dark, light)", u.Theme)
	}
	// widest label is "MOON" plus one column of padding each side
	if u.CellWidth < 5 {
		return fmt.Errorf("invalid cell_width %d: must be >= 5", u.CellWidth)
	}
	if u.WatchDebounce <= 0 {
		return fmt.Errorf("invalid watch_debounce %s: must be positive", u.WatchDebounce)
	}
	return nil
}
