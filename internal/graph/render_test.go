package graph

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"testing"
	"time"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contribgraph/pkg/models"
)

func newTestGenerator(now time.Time) *Generator {
	gen := NewGenerator(LoadFace(nil))
	gen.Now = func() time.Time { return now }
	return gen
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func hexColor(t *testing.T, s string) color.RGBA {
	t.Helper()
	require.Len(t, s, 7)
	r, err := strconv.ParseUint(s[1:3], 16, 8)
	require.NoError(t, err)
	g, err := strconv.ParseUint(s[3:5], 16, 8)
	require.NoError(t, err)
	b, err := strconv.ParseUint(s[5:7], 16, 8)
	require.NoError(t, err)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func pixelAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestGenerateEmptyInputs(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	gen := newTestGenerator(now)

	out, err := gen.Generate(nil, nil, "default")
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, canvasWidth, img.Bounds().Dx())
	assert.Equal(t, canvasHeight, img.Bounds().Dy())
}

func TestGenerateUnknownThemeMatchesDefault(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	records := []models.DayRecord{{Date: "2024-03-01", Count: 4}}

	gen := newTestGenerator(now)
	unknown, err := gen.Generate(records, nil, "mauve")
	require.NoError(t, err)
	explicit, err := gen.Generate(records, nil, "default")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(unknown, explicit))
}

func TestGenerateScenario(t *testing.T) {
	// providerA and providerB both report 2024-01-01; merged count 5 falls in
	// the 2-5 bucket. "today" (2024-01-02) must not be drawn.
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, Reference)
	a := []models.DayRecord{{Date: "2024-01-01", Count: 3}}
	b := []models.DayRecord{{Date: "2024-01-01", Count: 2}}

	gen := newTestGenerator(now)
	out, err := gen.Generate(a, b, "default")
	require.NoError(t, err)
	img := decodePNG(t, out)

	// The window opens 2023-01-02 (a Monday), so 2024-01-01 sits in column
	// 52, row 1, and today in column 52, row 2.
	cellX := padding + labelGutter + 52*(squareSize+squareGap)
	cellY := padding + 1*(squareSize+squareGap)
	level2 := hexColor(t, Lookup("default").Levels[2])
	assert.Equal(t, level2, pixelAt(img, cellX+squareSize/2, cellY+squareSize/2))

	todayY := padding + 2*(squareSize+squareGap)
	background := hexColor(t, backgroundColor)
	assert.Equal(t, background, pixelAt(img, cellX+squareSize/2, todayY+squareSize/2))
}

func TestDrawCellsTotalExcludesFuture(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, Reference)
	a := []models.DayRecord{
		{Date: "2024-01-01", Count: 3},
		{Date: "2024-01-02", Count: 9}, // today: drawn nowhere, counted nowhere
	}
	b := []models.DayRecord{{Date: "2024-01-01", Count: 2}}

	days := Merge(a, b, now)
	weeks := Weeks(days)

	dc := gg.NewContext(canvasWidth, canvasHeight)
	total := drawCells(dc, weeks, Lookup(DefaultTheme), Today(now))
	assert.Equal(t, 5, total)
}

func TestFormatCount(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		42:      "42",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
	}
	for n, want := range cases {
		assert.Equal(t, want, formatCount(n))
	}
}
