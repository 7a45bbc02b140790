package availability

// IntersectRanges reduces the participants' open ranges to the ranges where
// every participant is simultaneously free, by folding pairwise overlaps:
// each accumulated range against each next-participant range keeps
// [max(starts), min(ends)) when that is non-empty.
//
// Zero participants yield nil; one participant yields its ranges unchanged.
// The result is sorted and deduplicated.
func IntersectRanges(participants ...[]Interval) []Interval {
	if len(participants) == 0 {
		return nil
	}

	accumulated := make([]Interval, len(participants[0]))
	copy(accumulated, participants[0])

	if len(participants) == 1 {
		return accumulated
	}

	for _, ranges := range participants[1:] {
		var overlaps []Interval

		for _, left := range accumulated {
			for _, right := range ranges {
				start := maxTime(left.Start, right.Start)
				end := minTime(left.End, right.End)

				if start.Before(end) {
					overlaps = append(
						overlaps,
						Interval{
							Start: start,
							End:   end,
						},
					)
				}
			}
		}

		accumulated = dedupeIntervals(overlaps)
	}

	return accumulated
}

// dedupeIntervals sorts and drops exact duplicates without coalescing
// distinct overlapping ranges.
func dedupeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := sortIntervals(intervals)

	deduped := sorted[:1]

	for _, current := range sorted[1:] {
		last := deduped[len(deduped)-1]

		if current.Start.Equal(last.Start) && current.End.Equal(last.End) {
			continue
		}

		deduped = append(deduped, current)
	}

	return deduped
}
