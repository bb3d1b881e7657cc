package models

import "time"

// DayRecord is one day of activity as reported by a single provider.
// Date is a calendar-date string in "2006-01-02" form. Providers guarantee
// neither ordering nor uniqueness nor that every date falls inside the
// trailing year; the graph engine normalizes all of that.
type DayRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ContributionDay is the canonical per-day entry after merging both
// providers: exactly one exists per calendar date in the 366-day window,
// with the date pinned to the UTC+9 calendar reference and the count summed
// across providers.
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}
