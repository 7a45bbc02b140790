package availability

import (
	"sort"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/google/uuid"
)

// BusyInterval is time that must not be offered: a confirmed booking or a
// busy block reported by a connected calendar. The engine never creates
// these; adapters normalize provider payloads into this shape upstream.
type BusyInterval struct {
	Interval

	// Source labels where the block came from, e.g. "bookings" or a
	// calendar adapter name. Informational only.
	Source string

	// ID correlates the block back to the originating booking or feed row.
	ID uuid.UUID
}

// BufferPolicy pads busy time and enforces a booking lead time, per event
// type. Zero values disable the respective padding.
type BufferPolicy struct {
	BeforeEventBufferMinutes uint16
	AfterEventBufferMinutes  uint16
	MinimumNoticeMinutes     uint32
}

func (p *BufferPolicy) before() time.Duration {
	return time.Duration(p.BeforeEventBufferMinutes) * time.Minute
}

func (p *BufferPolicy) after() time.Duration {
	return time.Duration(p.AfterEventBufferMinutes) * time.Minute
}

func (p *BufferPolicy) notice() time.Duration {
	return time.Duration(p.MinimumNoticeMinutes) * time.Minute
}

// expand pads the busy interval symmetrically: the before-event buffer moves
// the start earlier, the after-event buffer moves the end later.
func (p *BufferPolicy) expand(busy Interval) Interval {
	return Interval{
		Start: busy.Start.Add(-p.before()),
		End:   busy.End.Add(p.after()),
	}
}

// SubtractBusy removes every busy interval, padded by the buffer policy,
// from the free ranges. Each padded block is re-applied to all fragments
// surviving the previous blocks, so overlapping cuts compound correctly.
// A nil policy means no padding.
func SubtractBusy(free []Interval, busy []BusyInterval, policy *BufferPolicy) []Interval {
	if len(free) == 0 {
		return nil
	}

	fragments := make([]Interval, len(free))
	copy(fragments, free)

	for _, block := range busy {
		expanded := block.Interval
		if policy != nil {
			expanded = policy.expand(block.Interval)
		}

		var surviving []Interval

		for _, fragment := range fragments {
			surviving = append(
				surviving,
				fragment.Subtract(expanded)...,
			)
		}

		fragments = surviving

		if len(fragments) == 0 {
			break
		}
	}

	return fragments
}

func sortBusyIntervals(busy []BusyInterval) {
	sort.Slice(
		busy,
		func(i, j int) bool {
			if busy[i].Start.Equal(busy[j].Start) {
				return busy[i].End.Before(busy[j].End)
			}

			return busy[i].Start.Before(busy[j].Start)
		},
	)
}

// NewBusyInterval validates and builds one busy block.
func NewBusyInterval(start, end time.Time, source string) (BusyInterval, error) {
	interval, errInterval := NewInterval(start, end)
	if errInterval != nil {
		return BusyInterval{}, errInterval
	}

	if len(source) == 0 {
		return BusyInterval{},
			goerrors.ErrValidation{
				Caller: "NewBusyInterval",
				Issue: goerrors.ErrNilInput{
					InputName: "source",
				},
			}
	}

	return BusyInterval{
			Interval: interval,
			Source:   source,
			ID:       uuid.New(),
		},
		nil
}
