// Package logging provides categorized zap loggers for sq9.
// Until Initialize is called every category logs to a no-op core, so library
// code can log unconditionally.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot  Category = "boot"  // Startup, config resolution
	CategoryData  Category = "data"  // Ephemeris CSV parsing, table construction
	CategoryStore Category = "store" // SQLite cache import/export
	CategoryWatch Category = "watch" // Data file watcher and reloads
	CategoryUI    Category = "ui"    // TUI events
	CategoryCLI   Category = "cli"   // One-shot subcommands
)

// Options controls how Initialize builds the root logger.
type Options struct {
	Level string // debug, info, warn, error
	// File receives log output instead of stderr. Required for the TUI so
	// log lines never land on the alt-screen.
	File string
	// JSON selects the production JSON encoder; console otherwise.
	JSON bool
	// Categories disables individual categories when set to false.
	// Missing entries are enabled.
	Categories map[string]bool
}

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	opts    Options
	closeFn func() error
	loggers = make(map[Category]*zap.Logger)
)

// ParseLevel converts a config level string into a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize builds the root logger. It may be called again to reconfigure;
// previously handed out category loggers keep the old core.
func Initialize(o Options) error {
	cfg := zap.NewProductionConfig()
	if !o.JSON {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(o.Level))
	cfg.DisableStacktrace = true

	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		cfg.OutputPaths = []string{o.File}
		cfg.ErrorOutputPaths = []string{o.File}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	Set(l, o)
	return nil
}

// Set installs an already built logger as root. Tests use it with zaptest
// or observer cores.
func Set(l *zap.Logger, o Options) {
	mu.Lock()
	defer mu.Unlock()
	if closeFn != nil {
		_ = closeFn()
	}
	root = l
	opts = o
	closeFn = l.Sync
	loggers = make(map[Category]*zap.Logger)
}

func categoryEnabled(category Category) bool {
	if opts.Categories == nil {
		return true
	}
	enabled, ok := opts.Categories[string(category)]
	return !ok || enabled
}

// Get returns the named logger for a category. Disabled categories get a
// no-op logger.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l := zap.NewNop()
	if categoryEnabled(category) {
		l = root.Named(string(category))
	}
	loggers[category] = l
	return l
}

// Sync flushes the root logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Convenience printf-style helpers, one pair per category.

func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Sugar().Infof(format, args...)
}

func BootDebug(format string, args ...interface{}) {
	Get(CategoryBoot).Sugar().Debugf(format, args...)
}

func Data(format string, args ...interface{}) {
	Get(CategoryData).Sugar().Infof(format, args...)
}

func DataDebug(format string, args ...interface{}) {
	Get(CategoryData).Sugar().Debugf(format, args...)
}

func Store(format string, args ...interface{}) {
	Get(CategoryStore).Sugar().Infof(format, args...)
}

func Watch(format string, args ...interface{}) {
	Get(CategoryWatch).Sugar().Infof(format, args...)
}

func UIDebug(format string, args ...interface{}) {
	Get(CategoryUI).Sugar().Debugf(format, args...)
}
