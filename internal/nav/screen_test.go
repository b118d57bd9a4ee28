package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenIDString(t *testing.T) {
	assert.Equal(t, "landing", Landing.String())
	assert.Equal(t, "analytics", Analytics.String())
	assert.Equal(t, "unknown", ScreenID(99).String())
	assert.Equal(t, "unknown", ScreenID(-1).String())
}

func TestParse(t *testing.T) {
	for _, id := range All() {
		got, ok := Parse(id.String())
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}

	got, ok := Parse("  Settings ")
	assert.True(t, ok)
	assert.Equal(t, Settings, got)

	got, ok = Parse("billing")
	assert.False(t, ok)
	assert.Equal(t, Landing, got)
}

func TestDetails(t *testing.T) {
	for _, id := range Details() {
		assert.True(t, id.IsDetail())
	}
	assert.False(t, Landing.IsDetail())
	assert.False(t, Menu.IsDetail())
	assert.Len(t, All(), 6)
}
