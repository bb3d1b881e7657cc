package graph

import (
	"time"

	"contribgraph/pkg/models"
)

// WindowDays is the size of the rendered window: the trailing 365 days plus
// today.
const WindowDays = 366

const dateLayout = "2006-01-02"

// Reference is the fixed calendar reference (UTC+9) used to decide which
// calendar day a timestamp belongs to. Merging, week layout and the future
// cutoff all use it, so the three always agree on day boundaries.
var Reference = time.FixedZone("UTC+9", 9*60*60)

// Today returns midnight of now's calendar day in the Reference zone.
func Today(now time.Time) time.Time {
	y, m, d := now.In(Reference).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Reference)
}

// Merge folds two provider record lists into one gap-free timeline of exactly
// WindowDays entries covering today-365 .. today, in ascending order, with
// counts summed per calendar date. Records dated outside the window have no
// destination slot and are dropped. Two empty inputs produce a valid all-zero
// timeline.
func Merge(a, b []models.DayRecord, now time.Time) []models.ContributionDay {
	am := recordMap(a)
	bm := recordMap(b)

	end := Today(now)
	start := end.AddDate(0, 0, -(WindowDays - 1))

	days := make([]models.ContributionDay, 0, WindowDays)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		days = append(days, models.ContributionDay{
			Date:  d,
			Count: am[key] + bm[key],
		})
	}
	return days
}

// recordMap indexes a provider's records by date string. A duplicate date
// within one provider is last-write-wins; providers are not expected to emit
// duplicates.
func recordMap(records []models.DayRecord) map[string]int {
	m := make(map[string]int, len(records))
	for _, r := range records {
		m[r.Date] = r.Count
	}
	return m
}
