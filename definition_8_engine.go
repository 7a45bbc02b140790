package availability

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// ParamsAvailableSlots is one availability query: who has to be free, what
// is already taken, and how the remaining time should be offered. Busy data
// is expected pre-fetched; the engine performs no I/O.
type ParamsAvailableSlots struct {
	Schedules []*Schedule `valid:"required"`

	Busy   []BusyInterval
	Policy *BufferPolicy
	Spec   *SlotSpec

	From time.Time
	To   time.Time
	Now  time.Time
}

type ResponseAvailableSlots struct {
	// Slots are the offerable start instants, ascending, in UTC.
	Slots []time.Time

	// SlotsByDate groups Slots by the first schedule's local calendar date.
	SlotsByDate map[string][]time.Time

	// FreeRanges is what remained after intersection and busy subtraction,
	// before slicing. Round-robin assignment picks organizers from it.
	FreeRanges []Interval

	// RangesPerParticipant preserves each schedule's own merged open ranges
	// over the window, in Schedules order.
	RangesPerParticipant [][]Interval
}

// GetAvailableSlots runs the whole pipeline in one pass: expand and override
// every schedule, intersect the participants, subtract buffered busy time,
// slice slots. An empty slot list is a normal outcome; errors are raised
// only for malformed configuration or input.
func GetAvailableSlots(params *ParamsAvailableSlots) (*ResponseAvailableSlots, error) {
	if len(params.Schedules) == 0 {
		return nil,
			ErrEmptyParticipantSet{
				Caller: "GetAvailableSlots",
			}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Availability",
				Caller:      "GetAvailableSlots",
				Issue:       errValidation,
			}
	}

	if !params.To.After(params.From) {
		return nil,
			ErrInvalidWindow{
				From: params.From,
				To:   params.To,
			}
	}

	if params.Spec == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "GetAvailableSlots",
				Issue: goerrors.ErrNilInput{
					InputName: "Spec",
				},
			}
	}

	perParticipant := make([][]Interval, 0, len(params.Schedules))

	for _, schedule := range params.Schedules {
		if schedule == nil {
			return nil,
				goerrors.ErrValidation{
					Caller: "GetAvailableSlots",
					Issue: goerrors.ErrNilInput{
						InputName: "Schedules",
					},
				}
		}

		ranges, errRanges := schedule.GetRanges(
			&ParamsGetRanges{
				From: params.From,
				To:   params.To,
			},
		)
		if errRanges != nil {
			return nil, errRanges
		}

		perParticipant = append(perParticipant, ranges.Flat)
	}

	intersected := IntersectRanges(perParticipant...)

	freeRanges := SubtractBusy(intersected, params.Busy, params.Policy)

	spec := *params.Spec
	if spec.WindowStart.IsZero() {
		spec.WindowStart = params.From
	}
	if spec.WindowEnd.IsZero() {
		spec.WindowEnd = params.To
	}

	organizerLocation := params.Schedules[0].Location()

	slots, errSlots := SliceSlots(
		&ParamsSliceSlots{
			FreeRanges: freeRanges,
			Spec:       &spec,
			Policy:     params.Policy,
			Location:   organizerLocation,
			Now:        params.Now,
		},
	)
	if errSlots != nil {
		return nil, errSlots
	}

	return &ResponseAvailableSlots{
			Slots:       slots,
			SlotsByDate: GroupSlotsByDate(slots, organizerLocation),
			FreeRanges:  freeRanges,

			RangesPerParticipant: perParticipant,
		},
		nil
}
