package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
)

func TestMotionText(t *testing.T) {
	tests := []struct {
		name string
		st   chart.BodyStatus
		want string
	}{
		{"hidden", chart.BodyStatus{Visible: false, HasData: true, Motion: ephemeris.Direct}, "OFF"},
		{"no row", chart.BodyStatus{Visible: true}, "?"},
		{"unknown", chart.BodyStatus{Visible: true, HasData: true}, "?"},
		{"direct", chart.BodyStatus{Visible: true, HasData: true, Motion: ephemeris.Direct}, "D"},
		{"retrograde", chart.BodyStatus{Visible: true, HasData: true, Motion: ephemeris.Retrograde}, "R"},
		{"stationary", chart.BodyStatus{Visible: true, HasData: true, Motion: ephemeris.Stationary}, "S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MotionText(tt.st))
		})
	}
}

func TestRenderMotion(t *testing.T) {
	styles := NewStyles(DarkTheme())

	out := RenderMotion(sampleState(t, day(2000, 1, 3)).Frame(), styles)
	assert.Contains(t, out, "Planet Motion")
	assert.Contains(t, out, "NN   – OFF")
	assert.Contains(t, out, "SUN  – D")
	assert.Contains(t, out, "R")
	assert.Contains(t, out, "S")

	// first day has nothing to compare with
	first := RenderMotion(sampleState(t, day(2000, 1, 1)).Frame(), styles)
	assert.Contains(t, first, "SUN  – ?")
}

func TestRenderLegend(t *testing.T) {
	out := RenderLegend(sampleState(t, day(2000, 1, 1)).Frame(), NewStyles(DarkTheme()))

	assert.Contains(t, out, "Legend")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	for _, b := range ephemeris.AllBodies() {
		assert.Contains(t, out, b.Name())
	}
}

func TestRenderGroups_FollowsAllOff(t *testing.T) {
	s := sampleState(t, day(2000, 1, 1))
	styles := NewStyles(DarkTheme())

	assert.Contains(t, RenderGroups(s, styles), "All Off")
	s.ToggleAllOff()
	assert.Contains(t, RenderGroups(s, styles), "All On")
}

func TestRenderSidebar(t *testing.T) {
	s := sampleState(t, day(2000, 1, 2))
	out := RenderSidebar(s, s.Frame(), NewStyles(DarkTheme()))

	assert.Contains(t, out, "Legend")
	assert.Contains(t, out, "Inner")
	assert.Contains(t, out, "Planet Motion")
}
