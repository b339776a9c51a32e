// Package chart holds the view state of the Square of 9 viewer: the date
// cursor, navigation steps, per-body visibility and the group presets, and
// turns that state into a Frame for the renderers. It does no I/O; every bad
// input is a no-op.
package chart

import (
	"strconv"
	"strings"
	"time"

	"sq9/internal/ephemeris"
	"sq9/internal/spiral"
)

// DateLayout is the format of the date entry box (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// State is the mutable browsing state. It is not safe for concurrent use;
// the TUI owns it from its update loop.
type State struct {
	table      *ephemeris.Table
	grid       *spiral.Grid
	classifier ephemeris.Classifier

	date    time.Time
	unit    StepUnit
	custom  int
	visible [ephemeris.NumBodies]bool
	allOff  bool
}

// Option configures a new State.
type Option func(*State)

// WithGrid uses g instead of the default 19x19 spiral.
func WithGrid(g *spiral.Grid) Option {
	return func(s *State) { s.grid = g }
}

// WithClassifier overrides the stationary threshold.
func WithClassifier(c ephemeris.Classifier) Option {
	return func(s *State) { s.classifier = c }
}

// WithHidden hides the given bodies initially, replacing the default (NN).
func WithHidden(bodies ...ephemeris.Body) Option {
	return func(s *State) {
		for i := range s.visible {
			s.visible[i] = true
		}
		for _, b := range bodies {
			if b.Valid() {
				s.visible[b] = false
			}
		}
	}
}

// WithStepUnit sets the initial step unit.
func WithStepUnit(u StepUnit) Option {
	return func(s *State) { s.unit = u }
}

// WithDate sets the initial date (clamped) instead of today.
func WithDate(d time.Time) Option {
	return func(s *State) { s.date = d }
}

// New creates a State positioned on today (clamped to the table range) with
// every body visible except the North Node.
func New(table *ephemeris.Table, opts ...Option) *State {
	s := &State{
		table:      table,
		grid:       spiral.MustBuild(spiral.DefaultSize),
		classifier: ephemeris.DefaultClassifier,
		date:       time.Now(),
		unit:       StepDay,
	}
	for i := range s.visible {
		s.visible[i] = true
	}
	s.visible[ephemeris.NorthNode] = false

	for _, opt := range opts {
		opt(s)
	}
	s.date = table.Clamp(s.date)
	return s
}

// Table returns the active ephemeris table.
func (s *State) Table() *ephemeris.Table { return s.table }

// Grid returns the spiral.
func (s *State) Grid() *spiral.Grid { return s.grid }

// Date returns the current day.
func (s *State) Date() time.Time { return s.date }

// DateText returns the current day as MM/DD/YYYY.
func (s *State) DateText() string { return s.date.Format(DateLayout) }

// Unit returns the step unit.
func (s *State) Unit() StepUnit { return s.unit }

// SetUnit sets the step unit.
func (s *State) SetUnit(u StepUnit) { s.unit = u }

// CycleUnit advances to the next step unit.
func (s *State) CycleUnit() { s.unit = s.unit.Next() }

// Custom returns the custom day count (0 when unset).
func (s *State) Custom() int { return s.custom }

// SetTable swaps in a reloaded table and re-clamps the date.
func (s *State) SetTable(t *ephemeris.Table) {
	if t == nil {
		return
	}
	s.table = t
	s.date = t.Clamp(s.date)
}

// SetDate moves the cursor, clamped to the table range.
func (s *State) SetDate(d time.Time) {
	s.date = s.table.Clamp(d)
}

// SetDateText parses MM/DD/YYYY and moves the cursor there, clamped.
// Malformed input leaves the state untouched and returns false.
func (s *State) SetDateText(text string) bool {
	d, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return false
	}
	s.SetDate(d)
	return true
}

// Today jumps to now, clamped.
func (s *State) Today(now time.Time) {
	s.SetDate(now)
}

// SetCustomText parses the custom day count. Non-numeric input is ignored
// and returns false. Zero or negative values are stored but never step.
func (s *State) SetCustomText(text string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	s.custom = n
	return true
}

// Reset clears the custom day count.
func (s *State) Reset() { s.custom = 0 }

// StepDays returns the day count Step will move by: the custom count when
// positive, the unit length otherwise.
func (s *State) StepDays() int {
	if s.custom > 0 {
		return s.custom
	}
	return s.unit.Days()
}

// Step moves back (direction < 0) or forward (direction > 0) by StepDays,
// clamped to the table range.
func (s *State) Step(direction int) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return
	}
	s.SetDate(s.date.AddDate(0, 0, direction*s.StepDays()))
}

// IncrementCustom moves forward by the custom count. It is a no-op unless the
// count is positive.
func (s *State) IncrementCustom() bool {
	if s.custom <= 0 {
		return false
	}
	s.SetDate(s.date.AddDate(0, 0, s.custom))
	return true
}

// Visible reports whether b is shown.
func (s *State) Visible(b ephemeris.Body) bool {
	return b.Valid() && s.visible[b]
}

// SetVisible shows or hides b.
func (s *State) SetVisible(b ephemeris.Body, on bool) {
	if b.Valid() {
		s.visible[b] = on
	}
}

// Toggle flips the visibility of b.
func (s *State) Toggle(b ephemeris.Body) {
	s.SetVisible(b, !s.Visible(b))
}

func (s *State) showOnly(group []ephemeris.Body) {
	for i := range s.visible {
		s.visible[i] = false
	}
	for _, b := range group {
		s.visible[b] = true
	}
}

// ShowInner shows exactly the inner bodies.
func (s *State) ShowInner() { s.showOnly(ephemeris.InnerBodies) }

// ShowOuter shows exactly the outer bodies.
func (s *State) ShowOuter() { s.showOnly(ephemeris.OuterBodies) }

// ToggleAllOff hides every body, or on the following call shows every body.
// The toggle tracks its own state and ignores individual toggles in between.
func (s *State) ToggleAllOff() {
	on := s.allOff
	for i := range s.visible {
		s.visible[i] = on
	}
	s.allOff = !s.allOff
}

// AllOffLabel is the caption of the all-off button: "All Off", or "All On"
// once everything has been switched off.
func (s *State) AllOffLabel() string {
	if s.allOff {
		return "All On"
	}
	return "All Off"
}
