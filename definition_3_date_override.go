package availability

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/google/uuid"
)

// TimeOfDayRange is one wall-clock window within a single date.
type TimeOfDayRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (r *TimeOfDayRange) IsValid() error {
	if errStart := r.Start.IsValid(); errStart != nil {
		return errStart
	}

	if errEnd := r.End.IsValid(); errEnd != nil {
		return errEnd
	}

	if r.Start.minuteOfDay() >= r.End.minuteOfDay() {
		return goerrors.ErrValidation{
			Caller: "IsValid - TimeOfDayRange",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "End",
				InputValue: r.End,
			},
		}
	}

	return nil
}

// DateOverride pins the availability of one calendar date, replacing whatever
// the weekly rules would have produced for it. No Windows means the date is
// fully blocked. Only the year, month and day of Date are significant.
type DateOverride struct {
	ID      uuid.UUID
	Date    time.Time
	Windows []TimeOfDayRange
}

func (o *DateOverride) IsValid() error {
	if o.Date.IsZero() {
		return goerrors.ErrValidation{
			Caller: "IsValid - DateOverride",
			Issue: goerrors.ErrNilInput{
				InputName: "Date",
			},
		}
	}

	for _, window := range o.Windows {
		if errWindow := window.IsValid(); errWindow != nil {
			return errWindow
		}
	}

	return nil
}

// resolveOverrides maps every override date falling inside the query window
// to its concrete intervals in loc. A present key with an empty value marks a
// blocked date; dates absent from the map have no override. The last override
// for a date wins.
func resolveOverrides(overrides []DateOverride, loc *time.Location, window Interval) map[string][]Interval {
	firstKey := dateKey(window.Start, loc)

	lastDay := localMidnight(window.End, loc)
	if window.End.In(loc).Equal(lastDay) {
		lastDay = lastDay.AddDate(0, 0, -1)
	}
	lastKey := lastDay.Format(_DateLayout)

	resolved := make(map[string][]Interval)

	for _, override := range overrides {
		key := override.Date.Format(_DateLayout)
		if key < firstKey || key > lastKey {
			continue
		}

		day := time.Date(
			override.Date.Year(),
			override.Date.Month(),
			override.Date.Day(),
			0,
			0,
			0,
			0,
			loc,
		)

		intervals := make([]Interval, 0, len(override.Windows))

		for _, slot := range override.Windows {
			start := slot.Start.onDate(day, loc)
			end := slot.End.onDate(day, loc)

			if !end.After(start) {
				continue
			}

			intervals = append(
				intervals,
				Interval{
					Start: start.UTC(),
					End:   end.UTC(),
				},
			)
		}

		resolved[key] = intervals
	}

	return resolved
}
