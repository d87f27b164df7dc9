package store

import "time"

// Stats period tokens.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// PeriodWindow returns the [start, end] range for a stats period token:
// week is the trailing seven days, month runs from the first calendar
// day of the current month, year from January 1. Unknown tokens fall
// back to the month window. end is always now.
func PeriodWindow(period string, now time.Time) (start, end time.Time) {
	end = now
	switch period {
	case PeriodWeek:
		start = now.Add(-7 * 24 * time.Hour)
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default: // month
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return start, end
}
