package ephemeris

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"sq9/internal/logging"

	"github.com/cockroachdb/errors"
)

const (
	// DateColumn is the CSV header of the date column.
	DateColumn = "Date"
	// DateLayout is the CSV date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
)

// LoadFile reads a CSV ephemeris from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open ephemeris %s", path)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load ephemeris %s", path)
	}
	return t, nil
}

// Load parses a CSV ephemeris. The header must name the Date column and one
// column per body (see Columns); extra columns are ignored. Rows with an
// unparseable date or longitude are skipped.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyTable
		}
		return nil, errors.Wrap(err, "read csv header")
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		idx[h] = i
	}

	dateCol, ok := idx[DateColumn]
	if !ok {
		return nil, errors.WithHintf(errors.Newf("missing %q column", DateColumn),
			"expected columns: %s, %s", DateColumn, strings.Join(Columns(), ", "))
	}
	var cols [NumBodies]int
	for _, b := range AllBodies() {
		i, ok := idx[b.Column()]
		if !ok {
			return nil, errors.WithHintf(errors.Newf("missing %q column for %s", b.Column(), b.Name()),
				"expected columns: %s, %s", DateColumn, strings.Join(Columns(), ", "))
		}
		cols[b] = i
	}

	rows := make(map[time.Time]Positions)
	line := 1
	skipped := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			skipped++
			logging.DataDebug("line %d: unreadable record: %v", line, err)
			continue
		}

		day, pos, ok := parseRecord(rec, dateCol, cols)
		if !ok {
			skipped++
			logging.DataDebug("line %d: skipped malformed row", line)
			continue
		}
		rows[day] = pos
	}

	logging.Data("parsed %d days (%d rows skipped)", len(rows), skipped)
	return NewTable(rows)
}

func parseRecord(rec []string, dateCol int, cols [NumBodies]int) (time.Time, Positions, bool) {
	var pos Positions
	if dateCol >= len(rec) {
		return time.Time{}, pos, false
	}
	day, err := time.Parse(DateLayout, strings.TrimSpace(rec[dateCol]))
	if err != nil {
		return time.Time{}, pos, false
	}
	for b, c := range cols {
		if c >= len(rec) {
			return time.Time{}, pos, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
		if err != nil {
			return time.Time{}, pos, false
		}
		pos[b] = v
	}
	return day, pos, true
}

// WriteCSV writes t in the format Load reads.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{DateColumn}, Columns()...)); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	var werr error
	rec := make([]string, NumBodies+1)
	t.Each(func(day time.Time, p Positions) bool {
		rec[0] = day.Format(DateLayout)
		for b, v := range p {
			rec[b+1] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		werr = cw.Write(rec)
		return werr == nil
	})
	if werr != nil {
		return errors.Wrap(werr, "write csv row")
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
