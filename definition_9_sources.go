package availability

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BusySource is the adapter boundary: each connected calendar or booking
// store normalizes its own payloads into BusyInterval values so the engine
// never branches on provider shapes.
type BusySource interface {
	Name() string
	BusyIntervals(ctx context.Context, window Interval) ([]BusyInterval, error)
}

// BusySourceFunc adapts a plain fetch function into a BusySource.
type BusySourceFunc struct {
	SourceName string
	Fetch      func(ctx context.Context, window Interval) ([]BusyInterval, error)
}

func (s BusySourceFunc) Name() string {
	return s.SourceName
}

func (s BusySourceFunc) BusyIntervals(ctx context.Context, window Interval) ([]BusyInterval, error) {
	return s.Fetch(ctx, window)
}

// GatherBusyIntervals fans out to all sources in parallel and waits for every
// result before returning the combined, sorted busy set. The first source
// error cancels the remaining fetches and fails the gather; deciding whether
// to retry or proceed with partial data is the caller's policy, not done
// here.
func GatherBusyIntervals(ctx context.Context, window Interval, sources ...BusySource) ([]BusyInterval, error) {
	results := make([][]BusyInterval, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)

	for ix, source := range sources {
		group.Go(
			func() error {
				intervals, errFetch := source.BusyIntervals(groupCtx, window)
				if errFetch != nil {
					return errFetch
				}

				for jx := range intervals {
					if len(intervals[jx].Source) == 0 {
						intervals[jx].Source = source.Name()
					}
				}

				results[ix] = intervals

				return nil
			},
		)
	}

	if errWait := group.Wait(); errWait != nil {
		return nil, errWait
	}

	var gathered []BusyInterval

	for _, intervals := range results {
		gathered = append(gathered, intervals...)
	}

	sortBusyIntervals(gathered)

	return gathered, nil
}
