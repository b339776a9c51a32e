package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"sq9/internal/ephemeris"
)

func TestToggleKey_RoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range ephemeris.AllBodies() {
		k := ToggleKey(b)
		assert.NotEmpty(t, k, b.Abbr())
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true

		got, ok := bodyForKey(k)
		assert.True(t, ok)
		assert.Equal(t, b, got)
	}
	assert.Equal(t, "1", ToggleKey(ephemeris.Sun))
	assert.Equal(t, "0", ToggleKey(ephemeris.Pluto))
	assert.Equal(t, "n", ToggleKey(ephemeris.NorthNode))

	_, ok := bodyForKey("x")
	assert.False(t, ok)
}

func TestKeyMap_HelpCoversBindings(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())

	all := k.AllBindings()
	assert.Contains(t, all, k.Back)
	assert.Contains(t, all, k.AllOff)
	for _, b := range all {
		assert.NotEmpty(t, b.Help().Key)
	}
	assert.Equal(t, "forward by custom", k.Increment.Help().Desc)
	assert.True(t, key.Matches(keyRunes("i"), k.Increment))
	assert.True(t, key.Matches(keyRunes("A"), k.AllOff))
	assert.False(t, key.Matches(keyRunes("a"), k.AllOff))
}
