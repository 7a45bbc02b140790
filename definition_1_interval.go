package availability

import (
	"sort"
	"time"
)

// Interval is a half-open time range [Start, End), always compared on the
// absolute instants regardless of the wall clock they came from.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{},
			ErrInvalidInterval{
				Start: start,
				End:   end,
			}
	}

	return Interval{
			Start: start,
			End:   end,
		},
		nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether other lies entirely within i.
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Subtract carves other out of i and returns the surviving fragments:
// zero when other covers i, one when other clips an edge or misses
// entirely, two when other sits strictly inside i.
func (i Interval) Subtract(other Interval) []Interval {
	if !i.Overlaps(other) {
		return []Interval{i}
	}

	var fragments []Interval

	if i.Start.Before(other.Start) {
		fragments = append(
			fragments,
			Interval{
				Start: i.Start,
				End:   other.Start,
			},
		)
	}

	if other.End.Before(i.End) {
		fragments = append(
			fragments,
			Interval{
				Start: other.End,
				End:   i.End,
			},
		)
	}

	return fragments
}

// MergeIntervals sorts the intervals by start and coalesces touching or
// overlapping neighbours. The input is not mutated.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := sortIntervals(intervals)

	merged := []Interval{sorted[0]}

	for _, current := range sorted[1:] {
		last := &merged[len(merged)-1]

		if !current.Start.After(last.End) {
			last.End = maxTime(last.End, current.End)

			continue
		}

		merged = append(merged, current)
	}

	return merged
}

// sortIntervals returns a copy ordered by start, then by end.
func sortIntervals(intervals []Interval) []Interval {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)

	sort.Slice(
		sorted,
		func(i, j int) bool {
			if sorted[i].Start.Equal(sorted[j].Start) {
				return sorted[i].End.Before(sorted[j].End)
			}

			return sorted[i].Start.Before(sorted[j].Start)
		},
	)

	return sorted
}
