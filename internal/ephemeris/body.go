// Package ephemeris holds the pre-computed planetary longitude table: the
// tracked bodies, the date-keyed Table, its CSV loader, the day-over-day
// motion classifier and a file watcher that reloads the table on change.
package ephemeris

import "strings"

// Body identifies one of the tracked bodies. The zero value is the Sun and the
// order of the constants is the display order everywhere.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	NorthNode

	// NumBodies is the number of tracked bodies.
	NumBodies = int(NorthNode) + 1
)

type bodyInfo struct {
	abbr      string
	name      string
	column    string // CSV header
	color     string // chart fill
	lightText bool   // fill is dark enough to need light text
}

var bodies = [NumBodies]bodyInfo{
	Sun:       {"SUN", "Sun", "Sun", "#FFD700", false},
	Moon:      {"MOON", "Moon", "Moon", "#FFFFFF", false},
	Mercury:   {"MER", "Mercury", "Mercury", "#9370DB", true},
	Venus:     {"VEN", "Venus", "Venus", "#87CEFA", false},
	Mars:      {"MARS", "Mars", "Mars", "#FF0000", true},
	Jupiter:   {"JUP", "Jupiter", "Jupiter", "#D8BFD8", false},
	Saturn:    {"SAT", "Saturn", "Saturn", "#000000", true},
	Uranus:    {"URA", "Uranus", "Uranus", "#00FF7F", false},
	Neptune:   {"NEP", "Neptune", "Neptune", "#00008B", true},
	Pluto:     {"PLU", "Pluto", "Pluto", "#8B4513", true},
	NorthNode: {"NN", "North Node", "True Node", "#FF4500", true},
}

// Groups used by the chart presets. The North Node belongs to neither.
var (
	InnerBodies = []Body{Sun, Moon, Mercury, Venus, Mars}
	OuterBodies = []Body{Jupiter, Saturn, Uranus, Neptune, Pluto}
)

// AllBodies returns every body in display order.
func AllBodies() []Body {
	out := make([]Body, NumBodies)
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

// Valid reports whether b is one of the tracked bodies.
func (b Body) Valid() bool { return b >= 0 && int(b) < NumBodies }

func (b Body) info() bodyInfo {
	if !b.Valid() {
		return bodyInfo{abbr: "?", name: "Unknown", color: "#808080"}
	}
	return bodies[b]
}

// Abbr returns the short chart label, e.g. "MER".
func (b Body) Abbr() string { return b.info().abbr }

// Name returns the display name, e.g. "Mercury".
func (b Body) Name() string { return b.info().name }

// Column returns the CSV header carrying this body's longitude.
func (b Body) Column() string { return b.info().column }

// Color returns the hex fill color used on the chart.
func (b Body) Color() string { return b.info().color }

// LightText reports whether labels on this body's fill should be light.
func (b Body) LightText() bool { return b.info().lightText }

func (b Body) String() string { return b.Abbr() }

// ParseBody resolves an abbreviation, display name or CSV column name,
// ignoring case and surrounding space.
func ParseBody(s string) (Body, bool) {
	s = strings.TrimSpace(s)
	for i, info := range bodies {
		if strings.EqualFold(s, info.abbr) || strings.EqualFold(s, info.name) || strings.EqualFold(s, info.column) {
			return Body(i), true
		}
	}
	return 0, false
}

// Columns returns the CSV headers of every body, in body order.
func Columns() []string {
	out := make([]string, NumBodies)
	for i, info := range bodies {
		out[i] = info.column
	}
	return out
}
