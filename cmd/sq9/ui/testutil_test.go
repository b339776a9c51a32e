package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
)

// Three days of positions. Mercury and Neptune share cell 300 on every day,
// Mercury turns retrograde on the 3rd and Saturn is stationary on the 3rd.
const sampleCSV = `Date,Sun,Moon,Mercury,Venus,Mars,Jupiter,Saturn,Uranus,Neptune,Pluto,True Node
2000-01-01,280.0,10.0,300.0,250.0,330.0,25.0,40.0,315.0,300.4,251.0,125.0
2000-01-02,281.0,23.0,300.5,251.2,330.7,25.1,40.01,315.01,300.41,251.01,124.95
2000-01-03,282.0,36.0,299.0,252.4,331.4,25.2,40.02,315.02,300.42,251.02,124.9
`

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleTable(t *testing.T) *ephemeris.Table {
	t.Helper()
	tbl, err := ephemeris.Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	return tbl
}

func sampleState(t *testing.T, d time.Time) *chart.State {
	t.Helper()
	return chart.New(sampleTable(t), chart.WithDate(d))
}

// NewTestModel returns a model on 2000-01-02 with a fixed clock.
func NewTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(sampleState(t, day(2000, 1, 2)), Options{
		Styles: NewStyles(DarkTheme()),
		Now:    func() time.Time { return day(2000, 1, 3) },
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
