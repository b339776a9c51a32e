package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sq9/internal/ephemeris"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Date,Sun,Moon,Mercury,Venus,Mars,Jupiter,Saturn,Uranus,Neptune,Pluto,True Node
1999-12-31,279.5,210.1,270.2,240.3,330.4,25.5,40.6,314.7,303.8,250.9,124.1
2000-01-01,280.5,223.3,271.8,241.5,331.2,25.4,40.55,314.75,303.82,250.93,124.05
2000-01-02,281.5,236.6,273.4,242.7,332.0,25.3,40.5,314.8,303.84,250.96,124.0
`

func loadTestTable(t *testing.T) *ephemeris.Table {
	t.Helper()
	tbl, err := ephemeris.Load(strings.NewReader(testCSV))
	require.NoError(t, err)
	return tbl
}

func TestEphemerisStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "eph.db")
	tbl := loadTestTable(t)

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, tbl, "test.csv"))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, tbl.Len(), got.Len())
	assert.Equal(t, tbl.Min(), got.Min())
	assert.Equal(t, tbl.Max(), got.Max())
	for _, d := range tbl.Dates() {
		want, _ := tbl.Lookup(d)
		have, ok := got.Lookup(d)
		require.True(t, ok, d)
		assert.Equal(t, want, have)
	}

	src, ok, err := s2.Meta(ctx, "source")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "test.csv", src)

	_, ok, err = s2.Meta(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEphemerisStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "eph.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, loadTestTable(t), "a"))

	small, err := ephemeris.NewTable(map[time.Time]ephemeris.Positions{
		time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC): {},
	})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, small, "b"))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}

func TestEphemerisStore_EmptyLoad(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "eph.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, ephemeris.ErrEmptyTable)
}

func TestEphemerisStore_SchemaMismatch(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "eph.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, loadTestTable(t), "a"))
	_, err = s.db.Exec("UPDATE meta SET value = '99' WHERE key = 'schema_version'")
	require.NoError(t, err)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrSchemaVersion)
}

func TestLoadSource(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "eph.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0644))

	fromCSV, err := LoadSource(ctx, csvPath)
	require.NoError(t, err)
	assert.Equal(t, 3, fromCSV.Len())

	dbPath := filepath.Join(dir, "eph.sqlite")
	s, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, fromCSV, csvPath))
	require.NoError(t, s.Close())

	fromDB, err := Loader(ctx)(dbPath)
	require.NoError(t, err)
	assert.Equal(t, 3, fromDB.Len())

	_, err = LoadSource(ctx, filepath.Join(dir, "missing.db"))
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "missing.db"))
	assert.True(t, os.IsNotExist(statErr), "missing database must not be created")
}

func TestIsDatabase(t *testing.T) {
	assert.True(t, IsDatabase("x.db"))
	assert.True(t, IsDatabase("X.SQLITE"))
	assert.False(t, IsDatabase("x.csv"))
	assert.False(t, IsDatabase("db"))
}
