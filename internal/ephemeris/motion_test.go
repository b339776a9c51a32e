package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelta_Wraps(t *testing.T) {
	assert.InDelta(t, -160, Delta(200, 0), 1e-9)
	assert.InDelta(t, 160, Delta(0, 200), 1e-9)
	assert.InDelta(t, 2, Delta(1, 359), 1e-9)
	assert.InDelta(t, -2, Delta(359, 1), 1e-9)
	assert.InDelta(t, 180, Delta(180, 0), 1e-9)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		today, yesterday float64
		want            Motion
	}{
		{"delta 200 wraps to -160", 200, 0, Retrograde},
		{"delta -200 wraps to +160", 0, 200, Direct},
		{"tiny delta", 10.02, 10, Stationary},
		{"tiny negative delta", 10, 10.04, Stationary},
		{"at threshold is moving", 10.05 + 1e-9, 10, Direct},
		{"direct across 0", 0.5, 359.5, Direct},
		{"retrograde across 0", 359.5, 0.5, Retrograde},
		{"plain retrograde", 100, 101, Retrograde},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.today, tt.yesterday))
		})
	}
}

func TestClassifier_Threshold(t *testing.T) {
	c := Classifier{Threshold: 0.5}
	assert.Equal(t, Stationary, c.Classify(10.3, 10))
	assert.Equal(t, Direct, c.Classify(10.6, 10))
}

func TestMotion_Symbols(t *testing.T) {
	assert.Equal(t, "D", Direct.Symbol())
	assert.Equal(t, "R", Retrograde.Symbol())
	assert.Equal(t, "S", Stationary.Symbol())
	assert.Equal(t, "?", MotionUnknown.Symbol())
	assert.Equal(t, "Retrograde", Retrograde.String())
}

func TestMotionAt(t *testing.T) {
	tbl := mustLoad(t, sampleCSV)

	_, ok := DefaultClassifier.MotionAt(tbl, tbl.Min())
	assert.False(t, ok, "first day has no previous row")

	m, ok := DefaultClassifier.MotionAt(tbl, mustDay(t, "2024-03-02"))
	require.True(t, ok)
	assert.Equal(t, Direct, m[Sun])
	assert.Equal(t, Stationary, m[Saturn])
	assert.Equal(t, Stationary, m[NorthNode])
}
