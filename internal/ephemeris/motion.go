package ephemeris

import (
	"math"
	"time"
)

// DefaultStationaryThreshold is the absolute daily motion, in degrees, under
// which a body is reported stationary.
const DefaultStationaryThreshold = 0.05

// Motion is the apparent day-over-day direction of a body.
type Motion int

const (
	MotionUnknown Motion = iota // no previous day to compare with
	Direct
	Retrograde
	Stationary
)

// Symbol returns the one-letter chart code.
func (m Motion) Symbol() string {
	switch m {
	case Direct:
		return "D"
	case Retrograde:
		return "R"
	case Stationary:
		return "S"
	default:
		return "?"
	}
}

func (m Motion) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Retrograde:
		return "Retrograde"
	case Stationary:
		return "Stationary"
	default:
		return "Unknown"
	}
}

// Delta returns the shortest signed angular change from yesterday to today,
// in (-180, 180] for inputs within one turn of each other.
func Delta(today, yesterday float64) float64 {
	d := today - yesterday
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d
}

// Classifier classifies motion with a configurable stationary threshold.
type Classifier struct {
	Threshold float64
}

// DefaultClassifier uses DefaultStationaryThreshold.
var DefaultClassifier = Classifier{Threshold: DefaultStationaryThreshold}

// Classify returns Stationary when |delta| is under the threshold, otherwise
// Direct for positive and Retrograde for negative deltas.
func (c Classifier) Classify(today, yesterday float64) Motion {
	d := Delta(today, yesterday)
	switch {
	case math.Abs(d) < c.Threshold:
		return Stationary
	case d > 0:
		return Direct
	default:
		return Retrograde
	}
}

// Classify uses DefaultClassifier.
func Classify(today, yesterday float64) Motion {
	return DefaultClassifier.Classify(today, yesterday)
}

// MotionAt classifies every body on day against the calendar day before.
// It returns false, with all bodies MotionUnknown, when either day is missing.
func (c Classifier) MotionAt(t *Table, day time.Time) ([NumBodies]Motion, bool) {
	var out [NumBodies]Motion
	today, ok := t.Lookup(day)
	if !ok {
		return out, false
	}
	prev, ok := t.Previous(day)
	if !ok {
		return out, false
	}
	for b := range out {
		out[b] = c.Classify(today[b], prev[b])
	}
	return out, true
}
