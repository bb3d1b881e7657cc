package graph

import "contribgraph/pkg/models"

const (
	// DaysPerWeek is the number of day rows in the grid, index 0 = Sunday.
	DaysPerWeek = 7
	// MaxWeeks is the column budget: ceil((366+6)/7), enough for a leap year
	// plus first-week padding.
	MaxWeeks = 53
)

// Weeks partitions an ordered timeline into week columns of DaysPerWeek
// slots, nil meaning "no day". The first column is left-padded so the first
// day lands on its weekday row (computed in the Reference zone), the last
// column is right-padded to full length. Reading the non-nil slots back in
// column-then-row order reproduces the input exactly.
func Weeks(days []models.ContributionDay) [][]*models.ContributionDay {
	if len(days) == 0 {
		return nil
	}

	firstWeekday := int(days[0].Date.In(Reference).Weekday())

	week := make([]*models.ContributionDay, 0, DaysPerWeek)
	for i := 0; i < firstWeekday; i++ {
		week = append(week, nil)
	}

	var weeks [][]*models.ContributionDay
	for i := range days {
		week = append(week, &days[i])
		if len(week) == DaysPerWeek {
			weeks = append(weeks, week)
			week = make([]*models.ContributionDay, 0, DaysPerWeek)
		}
	}

	if len(week) > 0 {
		for len(week) < DaysPerWeek {
			week = append(week, nil)
		}
		weeks = append(weeks, week)
	}

	return weeks
}
