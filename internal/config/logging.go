package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"SQ9_LOG_LEVEL"` // debug, info, warn, error
	Format     string          `yaml:"format"`                    // json, text
	File       string          `yaml:"file" env:"SQ9_LOG_FILE"`   // required for the TUI
	Categories map[string]bool `yaml:"categories,omitempty"`      // Per-category toggles
}

// JSON reports whether structured JSON output was requested.
func (c *LoggingConfig) JSON() bool {
	return c.Format == "json"
}
