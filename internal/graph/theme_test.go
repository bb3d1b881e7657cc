package graph

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFallsBackToDefault(t *testing.T) {
	def := Lookup(DefaultTheme)

	assert.Equal(t, def, Lookup(""))
	assert.Equal(t, def, Lookup("no-such-theme"))
	assert.Equal(t, def, Lookup("DEFAULT")) // selectors are case-sensitive
}

func TestThemePalettes(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	for _, name := range []string{"default", "gitlab", "blue", "purple", "orange", "red", "pink"} {
		theme := Lookup(name)
		require.Equal(t, name, theme.Name)
		for level, c := range theme.Levels {
			assert.Regexp(t, hex, c, "%s level %d", name, level)
		}
	}
}

func TestThemeColorClampsLevel(t *testing.T) {
	theme := Lookup(DefaultTheme)
	assert.Equal(t, theme.Levels[0], theme.Color(-1))
	assert.Equal(t, theme.Levels[4], theme.Color(9))
}
