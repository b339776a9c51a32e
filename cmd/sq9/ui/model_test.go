package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
	"sq9/internal/logging"
)

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	nm, cmd := m.Update(msg)
	return nm.(Model), cmd
}

func TestModel_StepNavigation(t *testing.T) {
	m := NewTestModel(t)
	s := m.state

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, day(2000, 1, 3), s.Date())

	// clamped at the last row
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, day(2000, 1, 3), s.Date())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, day(2000, 1, 2), s.Date())

	m, _ = update(m, keyRunes("u"))
	assert.Equal(t, chart.StepWeek, s.Unit())
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, day(2000, 1, 1), s.Date())

	_, _ = update(m, keyRunes("t"))
	assert.Equal(t, day(2000, 1, 3), s.Date())
}

func TestModel_BodyToggles(t *testing.T) {
	m := NewTestModel(t)
	s := m.state

	m, _ = update(m, keyRunes("n"))
	assert.True(t, s.Visible(ephemeris.NorthNode))
	m, _ = update(m, keyRunes("1"))
	assert.False(t, s.Visible(ephemeris.Sun))
	m, _ = update(m, keyRunes("0"))
	assert.False(t, s.Visible(ephemeris.Pluto))

	m, _ = update(m, keyRunes("A"))
	assert.Equal(t, "All On", s.AllOffLabel())
	for _, b := range ephemeris.AllBodies() {
		assert.False(t, s.Visible(b))
	}
	m, _ = update(m, keyRunes("A"))
	for _, b := range ephemeris.AllBodies() {
		assert.True(t, s.Visible(b))
	}

	m, _ = update(m, keyRunes("O"))
	assert.True(t, s.Visible(ephemeris.Jupiter))
	assert.False(t, s.Visible(ephemeris.Sun))

	_, _ = update(m, keyRunes("I"))
	assert.True(t, s.Visible(ephemeris.Sun))
	assert.False(t, s.Visible(ephemeris.Jupiter))
	assert.False(t, s.Visible(ephemeris.NorthNode))
}

func TestModel_DateInput(t *testing.T) {
	m := NewTestModel(t)
	s := m.state

	m, _ = update(m, keyRunes("d"))
	require.Equal(t, FocusDate, m.focus)
	assert.Equal(t, "01/02/2000", m.dateInput.Value())

	m.dateInput.SetValue("")
	m, _ = update(m, keyRunes("01/01/2000"))
	assert.Equal(t, "01/01/2000", m.dateInput.Value())
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FocusGrid, m.focus)
	assert.Equal(t, day(2000, 1, 1), s.Date())

	// out of range dates clamp
	m, _ = update(m, keyRunes("d"))
	m.dateInput.SetValue("06/15/2079")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, day(2000, 1, 3), s.Date())

	// malformed input is a no-op
	m, _ = update(m, keyRunes("d"))
	m.dateInput.SetValue("13/45/20xx")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, day(2000, 1, 3), s.Date())
	assert.Contains(t, m.status, "invalid date")

	// esc discards the edit
	m, _ = update(m, keyRunes("d"))
	m.dateInput.SetValue("01/01/2000")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FocusGrid, m.focus)
	assert.Equal(t, day(2000, 1, 3), s.Date())
}

func TestModel_CustomStep(t *testing.T) {
	m := NewModel(sampleState(t, day(2000, 1, 1)), Options{Styles: NewStyles(DarkTheme())})
	s := m.state

	// increment does nothing without a custom count
	m, _ = update(m, keyRunes("i"))
	assert.Equal(t, day(2000, 1, 1), s.Date())

	m, _ = update(m, keyRunes("c"))
	require.Equal(t, FocusCustom, m.focus)
	m, _ = update(m, keyRunes("2"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, s.Custom())

	m, _ = update(m, keyRunes("i"))
	assert.Equal(t, day(2000, 1, 3), s.Date())

	// custom overrides the unit when stepping
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, day(2000, 1, 1), s.Date())

	m, _ = update(m, keyRunes("r"))
	assert.Equal(t, 0, s.Custom())

	m, _ = update(m, keyRunes("c"))
	m.customInput.SetValue("abc")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, s.Custom())
	assert.NotEmpty(t, m.status)
}

func TestModel_FocusCycle(t *testing.T) {
	m := NewTestModel(t)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusDate, m.focus)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusCustom, m.focus)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusGrid, m.focus)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := NewTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 50})

	m, _ = update(m, keyRunes("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "esc to close")

	// keys go to the overlay, not the chart
	m, _ = update(m, keyRunes("n"))
	assert.False(t, m.state.Visible(ephemeris.NorthNode))

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestModel_Quit(t *testing.T) {
	m := NewTestModel(t)

	_, cmd := update(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_TableReloaded(t *testing.T) {
	m := NewTestModel(t)

	tbl, err := ephemeris.Load(strings.NewReader(strings.Join(strings.Split(sampleCSV, "\n")[:2], "\n")))
	require.NoError(t, err)

	m, _ = update(m, TableReloadedMsg{Table: tbl})
	assert.Same(t, tbl, m.state.Table())
	assert.Equal(t, day(2000, 1, 1), m.state.Date())
	assert.Equal(t, "reloaded 1 rows", m.status)

	// a nil table is ignored
	m, _ = update(m, TableReloadedMsg{})
	assert.Same(t, tbl, m.state.Table())
}

func TestModel_View(t *testing.T) {
	m := NewTestModel(t)

	for _, size := range []tea.WindowSizeMsg{{Width: 0, Height: 0}, {Width: 60, Height: 20}, {Width: 200, Height: 60}} {
		m, _ = update(m, size)
		view := m.View()
		assert.Contains(t, view, "Square of 9")
		assert.Contains(t, view, "01/02/2000")
		assert.Contains(t, view, "Step: Day")
	}
}

func TestModel_UnitButtonActive(t *testing.T) {
	m := NewTestModel(t)
	assert.True(t, UnitActive(m.state))

	m, _ = update(m, keyRunes("c"))
	m, _ = update(m, keyRunes("5"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, UnitActive(m.state))

	_, _ = update(m, keyRunes("r"))
	assert.True(t, UnitActive(m.state))
}

func TestModel_ViewHasDivider(t *testing.T) {
	m := NewTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 200, Height: 60})
	assert.Contains(t, m.View(), strings.Repeat("─", 19*DefaultCellWidth))
}

func TestModel_LogsKeys(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.Set(zap.New(core), logging.Options{})
	t.Cleanup(func() { logging.Set(zap.NewNop(), logging.Options{}) })

	m := NewTestModel(t)
	_, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})

	entries := logs.FilterLoggerName("ui").All()
	require.Len(t, entries, 1)
	assert.Equal(t, `key "right" on 01/02/2000`, entries[0].Message)
}
