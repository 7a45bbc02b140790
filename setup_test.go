package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var locNewYork = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return loc
}

func utcAt(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func newYorkAt(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, locNewYork)
}

func mustInterval(t *testing.T, start, end time.Time) Interval {
	t.Helper()

	interval, err := NewInterval(start, end)
	require.NoError(t, err)

	return interval
}

func weekdayRule(start, end TimeOfDay, weekdays ...time.Weekday) WeeklyRule {
	return WeeklyRule{
		Weekdays: weekdays,
		Start:    start,
		End:      end,
	}
}

var (
	nineToFive = []TimeOfDay{
		{Hour: 9},
		{Hour: 17},
	}

	weekdaysMonToFri = []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
	}
)
