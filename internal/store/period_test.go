package store

import (
	"testing"
	"time"
)

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 30, 0, 0, time.UTC)

	start, end := PeriodWindow(PeriodWeek, now)
	if !end.Equal(now) {
		t.Errorf("week end = %v, want now", end)
	}
	if want := now.Add(-7 * 24 * time.Hour); !start.Equal(want) {
		t.Errorf("week start = %v, want %v", start, want)
	}

	start, _ = PeriodWindow(PeriodMonth, now)
	if want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("month start = %v, want %v", start, want)
	}

	start, _ = PeriodWindow(PeriodYear, now)
	if want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("year start = %v, want %v", start, want)
	}
}

func TestPeriodWindow_UnknownFallsBackToMonth(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 30, 0, 0, time.UTC)

	start, _ := PeriodWindow("decade", now)
	if want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("fallback start = %v, want month start %v", start, want)
	}
}
