package availability

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Schedule is one organizer's availability configuration: weekly working
// hours plus per-date overrides, interpreted in the organizer's timezone.
// The engine only reads it; edits happen upstream.
type Schedule struct {
	TimeZone  string
	Rules     []WeeklyRule
	Overrides []DateOverride

	location *time.Location
}

type ParamsNewSchedule struct {
	TimeZone string `valid:"required"`

	Rules     []WeeklyRule
	Overrides []DateOverride
}

func NewSchedule(params *ParamsNewSchedule) (*Schedule, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Availability",
				Caller:      "NewSchedule",
				Issue:       errValidation,
			}
	}

	location, errLocation := time.LoadLocation(params.TimeZone)
	if errLocation != nil {
		return nil,
			ErrInvalidTimeZone{
				TimeZone: params.TimeZone,
				Issue:    errLocation,
			}
	}

	for _, rule := range params.Rules {
		if errRule := rule.IsValid(); errRule != nil {
			return nil, errRule
		}
	}

	for _, override := range params.Overrides {
		if errOverride := override.IsValid(); errOverride != nil {
			return nil, errOverride
		}
	}

	return &Schedule{
			TimeZone:  params.TimeZone,
			Rules:     params.Rules,
			Overrides: params.Overrides,

			location: location,
		},
		nil
}

func (s *Schedule) Location() *time.Location {
	return s.location
}

type ParamsGetRanges struct {
	From time.Time
	To   time.Time
}

type ResponseRanges struct {
	// PerDate holds the open intervals of every local calendar date that has
	// any configuration, keyed "2006-01-02". A key mapped to an empty slice
	// is a date blocked by an override.
	PerDate map[string][]Interval

	// Flat is the sorted, non-overlapping union of PerDate. Intervals never
	// span a date boundary because merging happens within a date only.
	Flat []Interval
}

// GetRanges expands the weekly rules over the query window, then applies the
// date overrides: a date present in the override set keeps only the override
// intervals, working hours for it are discarded entirely.
func (s *Schedule) GetRanges(params *ParamsGetRanges) (*ResponseRanges, error) {
	if !params.To.After(params.From) {
		return nil,
			ErrInvalidWindow{
				From: params.From,
				To:   params.To,
			}
	}

	window := Interval{
		Start: params.From,
		End:   params.To,
	}

	expanded, errExpand := expandRules(s.Rules, s.location, window)
	if errExpand != nil {
		return nil, errExpand
	}

	perDate := make(map[string][]Interval)

	for _, interval := range expanded {
		key := dateKey(interval.Start, s.location)

		perDate[key] = append(perDate[key], interval)
	}

	for key, intervals := range resolveOverrides(s.Overrides, s.location, window) {
		perDate[key] = intervals
	}

	for key, intervals := range perDate {
		perDate[key] = MergeIntervals(intervals)
	}

	var flat []Interval

	for _, intervals := range perDate {
		flat = append(flat, intervals...)
	}

	return &ResponseRanges{
			PerDate: perDate,
			Flat:    sortIntervals(flat),
		},
		nil
}
