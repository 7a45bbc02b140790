package availability

import "time"

const _DateLayout = "2006-01-02"

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

// dateKey identifies the calendar date of t as seen in loc.
func dateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(_DateLayout)
}

// localMidnight returns the start of the calendar date of t as seen in loc.
func localMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)

	return time.Date(
		local.Year(),
		local.Month(),
		local.Day(),
		0,
		0,
		0,
		0,
		loc,
	)
}
