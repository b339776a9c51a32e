package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"sq9/internal/ephemeris"

	"github.com/cockroachdb/errors"
)

// IsDatabase reports whether path names a SQLite cache rather than a CSV.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// LoadSource loads an ephemeris table from a CSV file or a SQLite cache,
// chosen by extension.
func LoadSource(ctx context.Context, path string) (*ephemeris.Table, error) {
	if !IsDatabase(path) {
		return ephemeris.LoadFile(path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "open ephemeris %s", path)
	}
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Load(ctx)
}

// Loader adapts LoadSource to ephemeris.Loader for the file watcher.
func Loader(ctx context.Context) ephemeris.Loader {
	return func(path string) (*ephemeris.Table, error) {
		return LoadSource(ctx, path)
	}
}
