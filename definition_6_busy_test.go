package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubtractBusy(t *testing.T) {
	free := []Interval{
		mustInterval(t,
			utcAt(2024, time.June, 11, 13, 0), // 09:00 New York
			utcAt(2024, time.June, 11, 21, 0), // 17:00
		),
	}

	lunch := BusyInterval{
		Interval: mustInterval(t,
			utcAt(2024, time.June, 11, 16, 0), // 12:00
			utcAt(2024, time.June, 11, 17, 0), // 13:00
		),
		Source: "bookings",
	}

	t.Run(
		"1. no policy cuts exactly the busy block",
		func(t *testing.T) {
			remaining := SubtractBusy(free, []BusyInterval{lunch}, nil)
			require.Len(t, remaining, 2)

			require.Equal(t, utcAt(2024, time.June, 11, 16, 0), remaining[0].End)
			require.Equal(t, utcAt(2024, time.June, 11, 17, 0), remaining[1].Start)
		},
	)

	t.Run(
		"2. buffers pad the block on both sides",
		func(t *testing.T) {
			remaining := SubtractBusy(
				free,
				[]BusyInterval{lunch},
				&BufferPolicy{
					BeforeEventBufferMinutes: 15,
					AfterEventBufferMinutes:  30,
				},
			)
			require.Len(t, remaining, 2)

			require.Equal(t, utcAt(2024, time.June, 11, 15, 45), remaining[0].End)
			require.Equal(t, utcAt(2024, time.June, 11, 17, 30), remaining[1].Start)
		},
	)

	t.Run(
		"3. several blocks compound on surviving fragments",
		func(t *testing.T) {
			late := BusyInterval{
				Interval: mustInterval(t,
					utcAt(2024, time.June, 11, 19, 0), // 15:00
					utcAt(2024, time.June, 11, 20, 0), // 16:00
				),
				Source: "google-calendar",
			}

			remaining := SubtractBusy(free, []BusyInterval{lunch, late}, nil)
			require.Len(t, remaining, 3)

			var total time.Duration
			for _, fragment := range remaining {
				total += fragment.Duration()
			}
			require.Equal(t, 6*time.Hour, total)
		},
	)

	t.Run(
		"4. block order does not change the outcome",
		func(t *testing.T) {
			late := BusyInterval{
				Interval: mustInterval(t,
					utcAt(2024, time.June, 11, 19, 0),
					utcAt(2024, time.June, 11, 20, 0),
				),
				Source: "google-calendar",
			}

			forward := SubtractBusy(free, []BusyInterval{lunch, late}, nil)
			backward := SubtractBusy(free, []BusyInterval{late, lunch}, nil)

			require.Equal(t, forward, backward)
		},
	)

	t.Run(
		"5. block covering everything empties the range",
		func(t *testing.T) {
			allDay := BusyInterval{
				Interval: mustInterval(t,
					utcAt(2024, time.June, 11, 0, 0),
					utcAt(2024, time.June, 12, 0, 0),
				),
				Source: "office365",
			}

			require.Empty(t, SubtractBusy(free, []BusyInterval{allDay}, nil))
		},
	)

	t.Run(
		"6. disjoint busy time leaves ranges untouched",
		func(t *testing.T) {
			evening := BusyInterval{
				Interval: mustInterval(t,
					utcAt(2024, time.June, 11, 22, 0),
					utcAt(2024, time.June, 11, 23, 0),
				),
				Source: "caldav",
			}

			require.Equal(t, free, SubtractBusy(free, []BusyInterval{evening}, nil))
		},
	)
}

func TestNewBusyInterval(t *testing.T) {
	busy, errCr := NewBusyInterval(
		utcAt(2024, time.June, 11, 16, 0),
		utcAt(2024, time.June, 11, 17, 0),
		"bookings",
	)
	require.NoError(t, errCr)
	require.Equal(t, "bookings", busy.Source)
	require.NotEqual(t, busy.ID.String(), "00000000-0000-0000-0000-000000000000")

	_, errInverted := NewBusyInterval(
		utcAt(2024, time.June, 11, 17, 0),
		utcAt(2024, time.June, 11, 16, 0),
		"bookings",
	)
	require.Error(t, errInverted)

	_, errNoSource := NewBusyInterval(
		utcAt(2024, time.June, 11, 16, 0),
		utcAt(2024, time.June, 11, 17, 0),
		"",
	)
	require.Error(t, errNoSource)
}
