package chart

import (
	"testing"
	"time"

	"sq9/internal/ephemeris"
	"sq9/internal/spiral"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_PaintsVisibleBodies(t *testing.T) {
	s := New(testTable(t), WithDate(day(2000, 1, 11)))
	f := s.Frame()

	require.True(t, f.HasRow)
	sun := f.Bodies[ephemeris.Sun]
	assert.True(t, sun.HasData)
	assert.InDelta(t, 10, sun.Longitude, 1e-9)
	assert.Equal(t, 10, sun.Cell)
	assert.Equal(t, ephemeris.Direct, sun.Motion)

	assert.Contains(t, f.Occupants(10), ephemeris.Sun)

	// NN is hidden by default: status is kept, cell is not painted
	nn := f.Bodies[ephemeris.NorthNode]
	assert.False(t, nn.Visible)
	assert.Equal(t, 360, nn.Cell)
	assert.NotContains(t, f.Occupants(360), ephemeris.NorthNode)
}

func TestFrame_Motion(t *testing.T) {
	s := New(testTable(t), WithDate(day(2000, 5, 1)))
	f := s.Frame()

	assert.Equal(t, ephemeris.Retrograde, f.Bodies[ephemeris.Mercury].Motion)
	assert.Equal(t, ephemeris.Stationary, f.Bodies[ephemeris.Venus].Motion)
}

func TestFrame_FirstDayUnknownMotion(t *testing.T) {
	s := New(testTable(t), WithDate(day(2000, 1, 1)))
	f := s.Frame()

	require.True(t, f.HasRow)
	assert.Equal(t, ephemeris.MotionUnknown, f.Bodies[ephemeris.Sun].Motion)
	assert.Equal(t, 360, f.Bodies[ephemeris.Sun].Cell, "0 degrees lands on cell 360")
}

func TestFrame_SharedCell(t *testing.T) {
	// Moon and Venus both fall in the 1 degree bucket
	tbl, err := ephemeris.NewTable(map[time.Time]ephemeris.Positions{
		day(2000, 1, 1): {5, 1.5, 100, 1.2, 50, 60, 70, 80, 90, 110, 120},
	})
	require.NoError(t, err)

	s := New(tbl)
	f := s.Frame()
	assert.Equal(t, []ephemeris.Body{ephemeris.Moon, ephemeris.Venus}, f.Occupants(1))
	painter, ok := f.Painter(1)
	require.True(t, ok)
	assert.Equal(t, ephemeris.Venus, painter)

	_, ok = f.Painter(2)
	assert.False(t, ok)
}

func TestFrame_NoRowForDate(t *testing.T) {
	tbl, err := ephemeris.NewTable(map[time.Time]ephemeris.Positions{
		day(2000, 1, 1): {},
		day(2000, 1, 5): {},
	})
	require.NoError(t, err)

	s := New(tbl, WithDate(day(2000, 1, 3)))
	f := s.Frame()
	assert.False(t, f.HasRow)
	assert.False(t, f.Bodies[ephemeris.Sun].HasData)
	assert.Empty(t, f.Occupants(360))
}

func TestFrame_CustomGrid(t *testing.T) {
	s := New(testTable(t), WithGrid(spiral.MustBuild(21)))
	assert.Equal(t, 21, s.Frame().Grid.Size())
}

func TestStepUnit(t *testing.T) {
	u, ok := ParseStepUnit("month")
	assert.True(t, ok)
	assert.Equal(t, StepMonth, u)
	assert.Equal(t, 30, u.Days())
	assert.Equal(t, StepDay, StepYear.Next())
	assert.Equal(t, "Week", StepWeek.String())

	_, ok = ParseStepUnit("decade")
	assert.False(t, ok)
}
