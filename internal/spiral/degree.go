package spiral

import "math"

// DegreesPerCircle is the number of one-degree buckets on the chart.
const DegreesPerCircle = 360

// DegreeToCell maps a longitude to its 1-indexed degree bucket in [1, 360].
// The value is reduced modulo 360 (negatives wrap upward) and truncated, and a
// bucket of 0 is reported as 360.
func DegreeToCell(deg float64) int {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return DegreesPerCircle
	}
	d := math.Mod(deg, DegreesPerCircle)
	if d < 0 {
		d += DegreesPerCircle
	}
	cell := int(d)
	// -1e-15 + 360 rounds to 360.0 in float64
	if cell == 0 || cell >= DegreesPerCircle {
		return DegreesPerCircle
	}
	return cell
}
