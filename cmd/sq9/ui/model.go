package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
	"sq9/internal/logging"
)

// Focus identifies which control receives key input.
type Focus int

const (
	FocusGrid Focus = iota
	FocusDate
	FocusCustom
	numFocus
)

// TableReloadedMsg carries a freshly loaded ephemeris table into the model.
type TableReloadedMsg struct {
	Table *ephemeris.Table
}

// Options configures a Model.
type Options struct {
	Styles    Styles
	CellWidth int
	// Now is the clock used by the Today binding; time.Now when nil.
	Now func() time.Time
}

// Model is the interactive chart.
type Model struct {
	state  *chart.State
	styles Styles
	keys   KeyMap
	help   help.Model
	now    func() time.Time
	logger *zap.Logger

	dateInput   textinput.Model
	customInput textinput.Model
	focus       Focus

	helpView viewport.Model
	showHelp bool

	status    string
	statusErr bool
	cellWidth int
	width     int
	height    int
}

// NewModel creates a chart model over state.
func NewModel(state *chart.State, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.Styles.Theme.Background == "" {
		opts.Styles = DefaultStyles("")
	}

	di := textinput.New()
	di.Placeholder = "MM/DD/YYYY"
	di.CharLimit = 10
	di.Width = 10
	di.Prompt = ""

	ci := textinput.New()
	ci.Placeholder = "days"
	ci.CharLimit = 6
	ci.Width = 6
	ci.Prompt = ""

	h := help.New()
	h.Styles.ShortKey = opts.Styles.Label
	h.Styles.ShortDesc = opts.Styles.Muted

	return Model{
		state:       state,
		styles:      opts.Styles,
		keys:        DefaultKeyMap(),
		help:        h,
		now:         opts.Now,
		logger:      logging.Get(logging.CategoryUI),
		dateInput:   di,
		customInput: ci,
		helpView:    viewport.New(80, 20),
		cellWidth:   opts.CellWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if msg.Width > 4 && msg.Height > 4 {
			m.helpView.Width = msg.Width - 4
			m.helpView.Height = msg.Height - HeaderHeight - FooterHeight - 2
		}
		if m.showHelp {
			m.helpView.SetContent(m.renderHelp())
		}
		return m, nil

	case TableReloadedMsg:
		if msg.Table == nil {
			return m, nil
		}
		m.state.SetTable(msg.Table)
		m.setStatus(fmt.Sprintf("reloaded %d rows", msg.Table.Len()), false)
		m.logger.Info("table reloaded", zap.Int("rows", msg.Table.Len()))
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			return m.updateHelp(msg)
		}
		switch m.focus {
		case FocusDate:
			return m.updateDateInput(msg)
		case FocusCustom:
			return m.updateCustomInput(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.showHelp = false
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	s := m.state
	logging.UIDebug("key %q on %s", msg.String(), s.DateText())
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		s.Step(-1)
	case key.Matches(msg, m.keys.Forward):
		s.Step(1)
	case key.Matches(msg, m.keys.Unit):
		s.CycleUnit()
	case key.Matches(msg, m.keys.Increment):
		s.IncrementCustom()
	case key.Matches(msg, m.keys.Reset):
		s.Reset()
	case key.Matches(msg, m.keys.Today):
		s.Today(m.now())
	case key.Matches(msg, m.keys.Toggle):
		if b, ok := bodyForKey(msg.String()); ok {
			s.Toggle(b)
		}
	case key.Matches(msg, m.keys.Inner):
		s.ShowInner()
	case key.Matches(msg, m.keys.Outer):
		s.ShowOuter()
	case key.Matches(msg, m.keys.AllOff):
		s.ToggleAllOff()
	case key.Matches(msg, m.keys.EditDate):
		return m.setFocus(FocusDate)
	case key.Matches(msg, m.keys.EditStep):
		return m.setFocus(FocusCustom)
	case key.Matches(msg, m.keys.Focus):
		return m.setFocus((m.focus + 1) % numFocus)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpView.SetContent(m.renderHelp())
		m.helpView.GotoTop()
	}
	return m, nil
}

func (m Model) updateDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		if !m.state.SetDateText(m.dateInput.Value()) {
			m.setStatus("invalid date, use MM/DD/YYYY", true)
		}
		return m.setFocus(FocusGrid)
	case key.Matches(msg, m.keys.Cancel):
		return m.setFocus(FocusGrid)
	case key.Matches(msg, m.keys.Focus):
		return m.setFocus(FocusCustom)
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m Model) updateCustomInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		if strings.TrimSpace(m.customInput.Value()) == "" {
			m.state.Reset()
		} else if !m.state.SetCustomText(m.customInput.Value()) {
			m.setStatus("custom step must be a whole number", true)
		}
		return m.setFocus(FocusGrid)
	case key.Matches(msg, m.keys.Cancel):
		return m.setFocus(FocusGrid)
	case key.Matches(msg, m.keys.Focus):
		return m.setFocus(FocusGrid)
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.customInput, cmd = m.customInput.Update(msg)
	return m, cmd
}

// setFocus moves key input to f. Inputs are refilled from the state when
// they gain focus so a cancelled edit leaves no trace.
func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.dateInput.Blur()
	m.customInput.Blur()
	switch f {
	case FocusDate:
		m.dateInput.SetValue(m.state.DateText())
		m.dateInput.CursorEnd()
		return m, m.dateInput.Focus()
	case FocusCustom:
		m.customInput.SetValue(customText(m.state.Custom()))
		m.customInput.CursorEnd()
		return m, m.customInput.Focus()
	}
	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// UnitActive reports whether the step unit drives navigation, that is no
// positive custom count overrides it.
func UnitActive(s *chart.State) bool {
	return s.Custom() <= 0
}

func customText(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

func bodyForKey(k string) (ephemeris.Body, bool) {
	for _, b := range ephemeris.AllBodies() {
		if ToggleKey(b) == k {
			return b, true
		}
	}
	return 0, false
}

func (m Model) renderHelp() string {
	md := HelpMarkdown(m.keys)
	out, err := RenderMarkdown(md, m.styles.Theme, m.helpView.Width)
	if err != nil {
		m.logger.Debug("help render failed", zap.Error(err))
		return md
	}
	return out
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.helpView.View(),
			m.styles.Footer.Render("? or esc to close"),
		)
	}

	frame := m.state.Frame()
	layout := NewLayoutConfig(m.width, m.height, m.state.Grid().Size(), m.cellWidth)

	content := RenderGrid(frame, m.styles, m.cellWidth)
	if layout.ShowSidebar() {
		content = lipgloss.JoinHorizontal(lipgloss.Top, RenderSidebar(m.state, frame, m.styles), content)
	}

	footer := m.renderFooter()
	if !layout.Fits() {
		footer = m.styles.Muted.Render("enlarge the terminal to see the whole grid") + "\n" + footer
	}
	width := layout.GridWidth()
	if layout.ShowSidebar() && m.width > 0 {
		width += SidebarWidth
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderControls(),
		m.styles.RenderDivider(width),
		content,
		footer,
	))
}

func (m Model) renderHeader() string {
	return m.styles.Header.Render("Square of 9 – " + m.state.Date().Format("Mon Jan 2, 2006"))
}

func (m Model) renderControls() string {
	date := m.styles.Input.Render(m.state.DateText())
	if m.focus == FocusDate {
		date = m.styles.InputFocused.Render(m.dateInput.View())
	}
	custom := m.styles.Input.Render(padRight(customText(m.state.Custom()), 6))
	if m.focus == FocusCustom {
		custom = m.styles.InputFocused.Render(m.customInput.View())
	}
	unitStyle := m.styles.Button
	if UnitActive(m.state) {
		unitStyle = m.styles.ButtonActive
	}
	unit := unitStyle.Render("Step: " + m.state.Unit().String())

	parts := []string{
		m.styles.Label.Render("Date "), date, "  ",
		unit, "  ",
		m.styles.Label.Render("Custom "), custom,
	}
	if m.status != "" {
		st := m.styles.Muted
		if m.statusErr {
			st = m.styles.Error
		}
		parts = append(parts, "  ", st.Render(m.status))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderFooter() string {
	return m.styles.Footer.Render(m.help.View(m.keys))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
