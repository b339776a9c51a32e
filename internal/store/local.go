// Package store persists ephemeris tables in SQLite so a large CSV only has to
// be parsed once (`sq9 import`). The pure-Go modernc driver keeps the binary
// cgo-free.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sq9/internal/ephemeris"
	"sq9/internal/logging"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// SchemaVersion is written to the meta table on every save.
const SchemaVersion = 1

// ErrSchemaVersion is returned when a database was written by an
// incompatible version.
var ErrSchemaVersion = errors.New("store: unsupported schema version")

// EphemerisStore is a SQLite-backed ephemeris cache.
type EphemerisStore struct {
	db     *sql.DB
	dbPath string
}

// bodyColumns are the SQL column names, in body order.
var bodyColumns = func() []string {
	cols := make([]string, ephemeris.NumBodies)
	for _, b := range ephemeris.AllBodies() {
		cols[b] = strings.ReplaceAll(strings.ToLower(b.Name()), " ", "_")
	}
	return cols
}()

// Open opens or creates the database at path.
func Open(path string) (*EphemerisStore, error) {
	logging.Store("opening ephemeris store at %s", path)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "create store directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	db.SetMaxOpenConns(1)

	s := &EphemerisStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *EphemerisStore) initialize() error {
	defs := make([]string, len(bodyColumns))
	for i, c := range bodyColumns {
		defs[i] = c + " REAL NOT NULL"
	}
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS positions (
		day TEXT PRIMARY KEY,
		%s
	);
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`, strings.Join(defs, ",\n\t\t"))

	if _, err := s.db.Exec(schema); err != nil {
		return errors.Wrap(err, "create schema")
	}
	return nil
}

// Path returns the database file path.
func (s *EphemerisStore) Path() string { return s.dbPath }

// Close closes the database.
func (s *EphemerisStore) Close() error { return s.db.Close() }

// Save replaces the stored table with t in one transaction. source is recorded
// in the meta table for `sq9 range`.
func (s *EphemerisStore) Save(ctx context.Context, t *ephemeris.Table, source string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM positions"); err != nil {
		return errors.Wrap(err, "clear positions")
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(bodyColumns)+1), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO positions (day, %s) VALUES (%s)",
		strings.Join(bodyColumns, ", "), placeholders))
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	args := make([]any, len(bodyColumns)+1)
	var insertErr error
	t.Each(func(day time.Time, p ephemeris.Positions) bool {
		args[0] = day.Format(ephemeris.DateLayout)
		for i, v := range p {
			args[i+1] = v
		}
		_, insertErr = stmt.ExecContext(ctx, args...)
		return insertErr == nil
	})
	if insertErr != nil {
		return errors.Wrap(insertErr, "insert position")
	}

	meta := map[string]string{
		"schema_version": fmt.Sprint(SchemaVersion),
		"source":         source,
		"imported_at":    time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", k, v); err != nil {
			return errors.Wrapf(err, "write meta %s", k)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	logging.Store("saved %d days to %s", t.Len(), s.dbPath)
	return nil
}

// Load reads the stored table. Rows with an unparseable day are skipped, as
// in the CSV loader.
func (s *EphemerisStore) Load(ctx context.Context) (*ephemeris.Table, error) {
	if v, ok, err := s.Meta(ctx, "schema_version"); err != nil {
		return nil, err
	} else if ok && v != fmt.Sprint(SchemaVersion) {
		return nil, errors.WithHintf(errors.Wrapf(ErrSchemaVersion, "found %s", v),
			"re-run `sq9 import` to rebuild %s", s.dbPath)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT day, %s FROM positions ORDER BY day", strings.Join(bodyColumns, ", ")))
	if err != nil {
		return nil, errors.Wrap(err, "query positions")
	}
	defer rows.Close()

	out := make(map[time.Time]ephemeris.Positions)
	var (
		dayText string
		pos     ephemeris.Positions
	)
	dest := make([]any, len(bodyColumns)+1)
	dest[0] = &dayText
	for i := range pos {
		dest[i+1] = &pos[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "scan position")
		}
		day, err := time.Parse(ephemeris.DateLayout, dayText)
		if err != nil {
			logging.Get(logging.CategoryStore).Sugar().Debugf("skipping row with bad day %q", dayText)
			continue
		}
		out[day] = pos
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate positions")
	}

	return ephemeris.NewTable(out)
}

// Meta returns a value from the meta table.
func (s *EphemerisStore) Meta(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "read meta %s", key)
	}
	return v, true, nil
}
