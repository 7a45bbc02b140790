package availability

import (
	"fmt"
	"time"
)

// ErrInvalidInterval reports an interval whose start is not strictly before its end.
type ErrInvalidInterval struct {
	Start time.Time
	End   time.Time
}

func (e ErrInvalidInterval) Error() string {
	return fmt.Sprintf(
		"invalid interval: start %s is not before end %s",

		e.Start.Format(time.RFC3339),
		e.End.Format(time.RFC3339),
	)
}

// ErrInvalidWindow reports a query window with from not strictly before to.
type ErrInvalidWindow struct {
	From time.Time
	To   time.Time
}

func (e ErrInvalidWindow) Error() string {
	return fmt.Sprintf(
		"invalid query window: from %s is not before to %s",

		e.From.Format(time.RFC3339),
		e.To.Format(time.RFC3339),
	)
}

// ErrInvalidTimeZone reports an unrecognized IANA timezone identifier.
type ErrInvalidTimeZone struct {
	TimeZone string
	Issue    error
}

func (e ErrInvalidTimeZone) Error() string {
	return fmt.Sprintf(
		"invalid timezone %q: %v",

		e.TimeZone,
		e.Issue,
	)
}

func (e ErrInvalidTimeZone) Unwrap() error {
	return e.Issue
}

// ErrEmptyParticipantSet reports an operation that needs at least one
// participant schedule but was given none.
type ErrEmptyParticipantSet struct {
	Caller string
}

func (e ErrEmptyParticipantSet) Error() string {
	return fmt.Sprintf(
		"%s: at least one participant schedule is required",

		e.Caller,
	)
}
