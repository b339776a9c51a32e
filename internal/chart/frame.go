package chart

import (
	"time"

	"sq9/internal/ephemeris"
	"sq9/internal/spiral"
)

// BodyStatus is what the sidebar shows for one body.
type BodyStatus struct {
	Body      ephemeris.Body
	Visible   bool
	HasData   bool // the current date has a row
	Longitude float64
	Cell      int // 1..360, 0 without data
	Motion    ephemeris.Motion
}

// Frame is an immutable paint model of the chart for one date.
type Frame struct {
	Date   time.Time
	Grid   *spiral.Grid
	HasRow bool
	Bodies [ephemeris.NumBodies]BodyStatus

	occupants map[int][]ephemeris.Body
}

// Occupants returns the visible bodies on cell, in body order.
func (f *Frame) Occupants(cell int) []ephemeris.Body {
	return f.occupants[cell]
}

// Painter returns the body whose color fills cell: the last visible occupant.
func (f *Frame) Painter(cell int) (ephemeris.Body, bool) {
	occ := f.occupants[cell]
	if len(occ) == 0 {
		return 0, false
	}
	return occ[len(occ)-1], true
}

// Frame computes the paint model for the current state. Hidden bodies are
// left off the grid but keep their status so the sidebar can show OFF. When
// the date has no row only the base grid is painted.
func (s *State) Frame() *Frame {
	f := &Frame{
		Date:      s.date,
		Grid:      s.grid,
		occupants: make(map[int][]ephemeris.Body),
	}
	for _, b := range ephemeris.AllBodies() {
		f.Bodies[b] = BodyStatus{Body: b, Visible: s.visible[b]}
	}

	today, ok := s.table.Lookup(s.date)
	if !ok {
		return f
	}
	f.HasRow = true
	motions, _ := s.classifier.MotionAt(s.table, s.date)

	for _, b := range ephemeris.AllBodies() {
		st := &f.Bodies[b]
		st.HasData = true
		st.Longitude = today.Of(b)
		st.Cell = spiral.DegreeToCell(st.Longitude)
		st.Motion = motions[b]
		if st.Visible {
			f.occupants[st.Cell] = append(f.occupants[st.Cell], b)
		}
	}
	return f
}
