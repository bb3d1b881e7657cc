package graph

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"contribgraph/pkg/models"
)

// Canvas geometry. The canvas is the same size for every render regardless of
// the data span: all MaxWeeks columns are provisioned and unused trailing
// columns stay blank.
const (
	squareSize = 11
	squareGap  = 2
	padding    = 20
	cellRadius = 2

	// left margin for weekday labels, bottom margin for legend and total
	labelGutter = 50

	canvasWidth  = MaxWeeks*(squareSize+squareGap) + padding*2 + labelGutter
	canvasHeight = DaysPerWeek*(squareSize+squareGap) + padding*2 + labelGutter

	backgroundColor = "#0d1117"
	labelColor      = "#8b949e"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Generator renders contribution graphs. It holds only the font face loaded
// at startup and an injectable clock, so concurrent Generate calls need no
// coordination.
type Generator struct {
	Face font.Face
	Now  func() time.Time
}

func NewGenerator(face font.Face) *Generator {
	return &Generator{Face: face, Now: time.Now}
}

// Generate merges both providers' records into the trailing 366-day timeline
// and rasterizes it under the named theme. Unknown theme names fall back to
// the default palette. Given well-typed input it always produces a valid PNG:
// two empty record lists yield a flat zero-activity graph, not an error.
func (g *Generator) Generate(githubRecords, gitlabRecords []models.DayRecord, themeName string) ([]byte, error) {
	now := g.Now()
	theme := Lookup(themeName)
	days := Merge(githubRecords, gitlabRecords, now)
	weeks := Weeks(days)

	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetHexColor(backgroundColor)
	dc.Clear()
	if g.Face != nil {
		dc.SetFontFace(g.Face)
	}

	drawWeekdayLabels(dc)

	// Cells dated today or later are not drawn: a day only shows up once it
	// is strictly in the past, so a half-finished "today" never misleads.
	cutoff := Today(now)
	total := drawCells(dc, weeks, theme, cutoff)

	drawMonthLabels(dc, weeks)
	drawLegend(dc, theme)
	drawTotal(dc, total)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawWeekdayLabels writes the row labels left of the grid. Only Mon/Wed/Fri
// are labeled; all seven rows would be too dense to read at this cell size.
func drawWeekdayLabels(dc *gg.Context) {
	labels := [DaysPerWeek]string{"S", "M", "T", "W", "T", "F", "S"}
	dc.SetHexColor(labelColor)
	x := float64(padding + 35)
	for row := 0; row < DaysPerWeek; row++ {
		if row != 1 && row != 3 && row != 5 {
			continue
		}
		y := float64(padding + row*(squareSize+squareGap) + squareSize/2 + 4)
		dc.DrawString(labels[row], x, y)
	}
}

// drawCells fills one rounded square per day, skipping empty slots entirely
// and skipping days at or past the cutoff. It returns the summed count of the
// cells actually drawn, which is what the total caption must report.
func drawCells(dc *gg.Context, weeks [][]*models.ContributionDay, theme Theme, cutoff time.Time) int {
	total := 0
	for week := 0; week < len(weeks) && week < MaxWeeks; week++ {
		for row := 0; row < DaysPerWeek; row++ {
			day := weeks[week][row]
			if day == nil {
				continue
			}
			if !day.Date.Before(cutoff) {
				continue
			}

			x := float64(padding + labelGutter + week*(squareSize+squareGap))
			y := float64(padding + row*(squareSize+squareGap))

			dc.SetHexColor(theme.Color(Level(day.Count)))
			dc.DrawRoundedRectangle(x, y, squareSize, squareSize, cellRadius)
			dc.Fill()

			total += day.Count
		}
	}
	return total
}

// drawMonthLabels puts a month name above each column whose first real day
// starts a new month. The first column is always labeled as a baseline
// anchor.
func drawMonthLabels(dc *gg.Context, weeks [][]*models.ContributionDay) {
	dc.SetHexColor(labelColor)
	y := float64(padding - 5)

	lastMonth := time.Month(0)
	for week := 0; week < len(weeks) && week < MaxWeeks; week++ {
		var first *models.ContributionDay
		for _, day := range weeks[week] {
			if day != nil {
				first = day
				break
			}
		}
		if first == nil {
			continue
		}

		month := first.Date.In(Reference).Month()
		if month != lastMonth || week == 0 {
			x := float64(padding + labelGutter + week*(squareSize+squareGap))
			dc.DrawString(monthNames[month-1], x, y)
			lastMonth = month
		}
	}
}

// drawLegend renders the five theme swatches in ascending intensity,
// bracketed by Less/More captions.
func drawLegend(dc *gg.Context, theme Theme) {
	y := float64(canvasHeight - 20)
	x := float64(canvasWidth - 150)

	dc.SetHexColor(labelColor)
	dc.DrawString("Less", x, y)
	dc.DrawString("More", x+100, y)

	const swatchRadius = 3
	for level := 0; level < 5; level++ {
		dc.SetHexColor(theme.Color(level))
		sx := x + 30 + float64(level*(squareSize+squareGap))
		dc.DrawRoundedRectangle(sx, y-10, squareSize, squareSize, swatchRadius)
		dc.Fill()
	}
}

func drawTotal(dc *gg.Context, total int) {
	dc.SetHexColor(labelColor)
	text := fmt.Sprintf("%s contributions in the last year", formatCount(total))
	dc.DrawString(text, padding, float64(canvasHeight-20+10))
}

// formatCount renders an integer with thousands separators ("1,234,567").
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
