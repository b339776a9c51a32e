package ephemeris

import (
	"sort"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrEmptyTable is returned when a table would have no rows and therefore no
// date range.
var ErrEmptyTable = errors.New("ephemeris: table has no rows")

// Positions holds one ecliptic longitude in degrees per body, indexed by Body.
type Positions [NumBodies]float64

// Of returns the longitude of b.
func (p Positions) Of(b Body) float64 { return p[b] }

// Table maps calendar days to positions. It is never modified after
// construction; reloads build a new Table.
type Table struct {
	rows map[time.Time]Positions
	days []time.Time // sorted ascending
}

// Day normalizes t to midnight UTC of its calendar day (in t's own location).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewTable builds a table from day-keyed rows. Keys are normalized with Day.
func NewTable(rows map[time.Time]Positions) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		rows: make(map[time.Time]Positions, len(rows)),
		days: make([]time.Time, 0, len(rows)),
	}
	for day, pos := range rows {
		day = Day(day)
		if _, dup := t.rows[day]; !dup {
			t.days = append(t.days, day)
		}
		t.rows[day] = pos
	}
	sort.Slice(t.days, func(i, j int) bool { return t.days[i].Before(t.days[j]) })

	return t, nil
}

// Len returns the number of days in the table.
func (t *Table) Len() int { return len(t.days) }

// Min returns the first day.
func (t *Table) Min() time.Time { return t.days[0] }

// Max returns the last day.
func (t *Table) Max() time.Time { return t.days[len(t.days)-1] }

// Dates returns a copy of all days, ascending.
func (t *Table) Dates() []time.Time {
	return append([]time.Time(nil), t.days...)
}

// Contains reports whether day is within [Min, Max]. The table may still have
// gaps inside that range.
func (t *Table) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(t.Min()) && !day.After(t.Max())
}

// Lookup returns the positions recorded for day.
func (t *Table) Lookup(day time.Time) (Positions, bool) {
	p, ok := t.rows[Day(day)]
	return p, ok
}

// Previous returns the positions for the calendar day before day.
func (t *Table) Previous(day time.Time) (Positions, bool) {
	return t.Lookup(Day(day).AddDate(0, 0, -1))
}

// Clamp bounds day to [Min, Max].
func (t *Table) Clamp(day time.Time) time.Time {
	day = Day(day)
	if day.Before(t.Min()) {
		return t.Min()
	}
	if day.After(t.Max()) {
		return t.Max()
	}
	return day
}

// Each calls fn for every day in ascending order until fn returns false.
func (t *Table) Each(fn func(day time.Time, p Positions) bool) {
	for _, d := range t.days {
		if !fn(d, t.rows[d]) {
			return
		}
	}
}
