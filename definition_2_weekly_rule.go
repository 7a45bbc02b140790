package availability

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/teambition/rrule-go"
)

// TimeOfDay is a wall-clock moment without a date or a zone. It only gains
// meaning once attached to a calendar date in a concrete location.
type TimeOfDay struct {
	Hour   uint8
	Minute uint8
}

func (t TimeOfDay) minuteOfDay() int {
	return int(t.Hour)*60 + int(t.Minute)
}

func (t TimeOfDay) IsValid() error {
	if t.Hour > 23 {
		return goerrors.ErrInvalidInput{
			Caller:     "IsValid - TimeOfDay",
			InputName:  "Hour",
			InputValue: t.Hour,
		}
	}

	if t.Minute > 59 {
		return goerrors.ErrInvalidInput{
			Caller:     "IsValid - TimeOfDay",
			InputName:  "Minute",
			InputValue: t.Minute,
		}
	}

	return nil
}

// onDate resolves the wall-clock time on the calendar date of day in loc,
// using whatever UTC offset is in effect there that day.
func (t TimeOfDay) onDate(day time.Time, loc *time.Location) time.Time {
	return time.Date(
		day.Year(),
		day.Month(),
		day.Day(),
		int(t.Hour),
		int(t.Minute),
		0,
		0,
		loc,
	)
}

// WeeklyRule declares recurring working hours: on each listed weekday the
// owner is available between Start and End local time. Several rules may
// target the same weekday (split shifts); each expands independently.
type WeeklyRule struct {
	Weekdays []time.Weekday
	Start    TimeOfDay
	End      TimeOfDay
}

func (rule *WeeklyRule) IsValid() error {
	if len(rule.Weekdays) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - WeeklyRule",
			Issue: goerrors.ErrNilInput{
				InputName: "Weekdays",
			},
		}
	}

	for _, weekday := range rule.Weekdays {
		if weekday < time.Sunday || weekday > time.Saturday {
			return goerrors.ErrValidation{
				Caller: "IsValid - WeeklyRule",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "Weekdays",
					InputValue: weekday,
				},
			}
		}
	}

	if errStart := rule.Start.IsValid(); errStart != nil {
		return errStart
	}

	if errEnd := rule.End.IsValid(); errEnd != nil {
		return errEnd
	}

	if rule.Start.minuteOfDay() >= rule.End.minuteOfDay() {
		return goerrors.ErrValidation{
			Caller: "IsValid - WeeklyRule",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "End",
				InputValue: rule.End,
			},
		}
	}

	return nil
}

var _RRuleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// expandRules turns weekly rules into concrete intervals for every calendar
// date of the query window, as seen in loc. The recurrence is anchored at the
// local midnight of the window start so each occurrence lands on a local
// date; rule times are then resolved per date, which keeps wall-clock
// semantics across DST transitions. Results are in expansion order, one
// interval per (date, rule) pair, and are not merged here.
func expandRules(rules []WeeklyRule, loc *time.Location, window Interval) ([]Interval, error) {
	firstDay := localMidnight(window.Start, loc)

	lastDay := localMidnight(window.End, loc)
	if window.End.In(loc).Equal(lastDay) {
		// window ends exactly at local midnight, the closing date is excluded
		lastDay = lastDay.AddDate(0, 0, -1)
	}

	if lastDay.Before(firstDay) {
		return nil, nil
	}

	var expanded []Interval

	for _, rule := range rules {
		weekdays := make([]rrule.Weekday, 0, len(rule.Weekdays))

		for _, weekday := range rule.Weekdays {
			weekdays = append(weekdays, _RRuleWeekdays[weekday])
		}

		recurrence, errRule := rrule.NewRRule(
			rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: weekdays,
				Dtstart:   firstDay,
			},
		)
		if errRule != nil {
			return nil,
				goerrors.ErrValidation{
					Caller: "expandRules",
					Issue:  errRule,
				}
		}

		for _, occurrence := range recurrence.Between(firstDay, lastDay, true) {
			day := occurrence.In(loc)

			start := rule.Start.onDate(day, loc)
			end := rule.End.onDate(day, loc)

			if !end.After(start) {
				// the whole window fell into a skipped DST hour
				continue
			}

			expanded = append(
				expanded,
				Interval{
					Start: start.UTC(),
					End:   end.UTC(),
				},
			)
		}
	}

	return expanded, nil
}
