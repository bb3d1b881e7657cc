package graph

// Theme is a named palette of five intensity colors, level 0 (no activity)
// through level 4 (highest). The table is static and safe for concurrent
// reads from any number of render calls.
type Theme struct {
	Name   string
	Levels [5]string
}

// Color returns the hex color for an intensity level, clamping out-of-range
// levels to the nearest end of the ramp.
func (t Theme) Color(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 4 {
		level = 4
	}
	return t.Levels[level]
}

// DefaultTheme is the palette used when the selector is absent or unknown.
const DefaultTheme = "default"

var themes = map[string]Theme{
	"default": {
		Name:   "default",
		Levels: [5]string{"#151b23", "#033A16", "#196c2e", "#2ea043", "#56d364"},
	},
	"gitlab": {
		Name:   "gitlab",
		Levels: [5]string{"#28272d", "#303470", "#4e65cd", "#7992f5", "#d2dcff"},
	},
	"blue": {
		Name:   "blue",
		Levels: [5]string{"#151b23", "#0a3069", "#0969da", "#54aeff", "#b6e3ff"},
	},
	"purple": {
		Name:   "purple",
		Levels: [5]string{"#151b23", "#3c1e70", "#6639ba", "#986ee2", "#d8b9ff"},
	},
	"orange": {
		Name:   "orange",
		Levels: [5]string{"#151b23", "#8b3515", "#cc5522", "#ff6b35", "#ff6347"},
	},
	"red": {
		Name:   "red",
		Levels: [5]string{"#151b23", "#5a0f0f", "#8b1a1a", "#cc2d2d", "#ff4444"},
	},
	"pink": {
		Name:   "pink",
		Levels: [5]string{"#151b23", "#5a1f3d", "#8b2d5a", "#cc4d7a", "#ff6bb5"},
	},
}

// Lookup returns the theme for a selector, falling back to the default
// palette for any unknown or empty name. An unlisted variant is never an
// error.
func Lookup(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}
