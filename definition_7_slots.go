package availability

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// SlotSpec describes how free ranges are cut into offerable slots. Increment
// defaults to the duration when zero, giving back-to-back slots. WindowStart
// and WindowEnd, when set, clip candidates to the bookable window.
type SlotSpec struct {
	DurationMinutes  uint16
	IncrementMinutes uint16

	WindowStart time.Time
	WindowEnd   time.Time
}

func (s *SlotSpec) IsValid() error {
	if s.DurationMinutes == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - SlotSpec",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "DurationMinutes",
				InputValue: s.DurationMinutes,
			},
		}
	}

	return nil
}

func (s *SlotSpec) duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

func (s *SlotSpec) increment() time.Duration {
	minutes := ternary(
		s.IncrementMinutes == 0,

		s.DurationMinutes,
		s.IncrementMinutes,
	)

	return time.Duration(minutes) * time.Minute
}

// ParamsSliceSlots carries everything the slicer needs; nothing ambient is
// consulted, Now included.
type ParamsSliceSlots struct {
	FreeRanges []Interval
	Spec       *SlotSpec
	Policy     *BufferPolicy

	// Location aligns slot starts with the organizer's wall clock so they
	// land on human-friendly boundaries.
	Location *time.Location

	Now time.Time
}

// SliceSlots walks the free ranges and emits bookable slot start instants:
// each range start is rounded up to the increment grid of the organizer's
// local day, then candidates advance by the increment while the full slot
// duration still fits the range. Candidates before Now plus the minimum
// notice, or outside the spec's bookable window, are dropped. Output is
// ascending and deduplicated, in UTC.
func SliceSlots(params *ParamsSliceSlots) ([]time.Time, error) {
	if params.Spec == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "SliceSlots",
				Issue: goerrors.ErrNilInput{
					InputName: "Spec",
				},
			}
	}

	if errSpec := params.Spec.IsValid(); errSpec != nil {
		return nil, errSpec
	}

	location := params.Location
	if location == nil {
		location = time.UTC
	}

	duration := params.Spec.duration()
	increment := params.Spec.increment()

	earliest := params.Now
	if params.Policy != nil {
		earliest = params.Now.Add(params.Policy.notice())
	}

	var slots []time.Time

	for _, freeRange := range sortIntervals(params.FreeRanges) {
		candidate := roundUpToIncrement(freeRange.Start, increment, location)

		for !candidate.Add(duration).After(freeRange.End) {
			if keepCandidate(candidate, duration, earliest, params.Spec) {
				if len(slots) == 0 || candidate.After(slots[len(slots)-1]) {
					slots = append(slots, candidate.UTC())
				}
			}

			candidate = candidate.Add(increment)
		}
	}

	return slots, nil
}

func keepCandidate(candidate time.Time, duration time.Duration, earliest time.Time, spec *SlotSpec) bool {
	if candidate.Before(earliest) {
		return false
	}

	if !spec.WindowStart.IsZero() && candidate.Before(spec.WindowStart) {
		return false
	}

	if !spec.WindowEnd.IsZero() && candidate.Add(duration).After(spec.WindowEnd) {
		return false
	}

	return true
}

// roundUpToIncrement aligns t with the next wall-clock multiple of increment
// counted from the local midnight of its date in loc. A range starting at
// 09:10 local with a 30 minute increment yields 09:30.
func roundUpToIncrement(t time.Time, increment time.Duration, loc *time.Location) time.Time {
	local := t.In(loc)

	minuteOfDay := local.Hour()*60 + local.Minute()
	incrementMinutes := int(increment / time.Minute)

	remainder := minuteOfDay % incrementMinutes
	if remainder == 0 && local.Second() == 0 && local.Nanosecond() == 0 {
		return t
	}

	rounded := time.Date(
		local.Year(),
		local.Month(),
		local.Day(),
		0,
		minuteOfDay-remainder+incrementMinutes,
		0,
		0,
		loc,
	)

	if rounded.Before(t) {
		// a DST jump swallowed the rounded wall time, step past it
		rounded = rounded.Add(increment)
	}

	return rounded
}

// GroupSlotsByDate buckets slot instants by their local calendar date in
// loc, keyed "2006-01-02". Order within a bucket follows the input.
func GroupSlotsByDate(slots []time.Time, loc *time.Location) map[string][]time.Time {
	grouped := make(map[string][]time.Time)

	for _, slot := range slots {
		key := dateKey(slot, loc)

		grouped[key] = append(grouped[key], slot)
	}

	return grouped
}
