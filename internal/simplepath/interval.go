package simplepath

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// Interval is a closed integer range [Start, End].
type Interval struct {
	Start int
	End   int
}

// MarshalJSON encodes the interval as a two-element array.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{iv.Start, iv.End})
}

// UnmarshalJSON decodes a two-element array.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("simplepath: interval must be [start, end]: %w", err)
	}
	*iv = Interval{Start: pair[0], End: pair[1]}
	return nil
}

// MergeIntervals sorts intervals by start and joins those that are exactly
// adjacent (next.Start == prev.End+1). An interval ending where the previous
// one ends and starting no earlier is dropped as redundant; one starting
// past the previous end is kept separately. Any other configuration, such
// as a partial overlap, fails with ErrUnmergeableSegments.
//
// The input slice is left untouched.
func MergeIntervals(intervals []Interval) ([]Interval, error) {
	if len(intervals) == 0 {
		return nil, nil
	}

	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(x, y Interval) int {
		return cmp.Compare(x.Start, y.Start)
	})

	out := []Interval{sorted[0]}
	for _, next := range sorted[1:] {
		prev := &out[len(out)-1]
		switch {
		case next.Start == prev.End+1:
			if next.End <= prev.End {
				return nil, fmt.Errorf("adjacent %v does not extend %v: %w", next, *prev, ErrUnmergeableSegments)
			}
			prev.End = next.End
		case prev.End == next.End && prev.Start <= next.Start:
			// contained or identical
		case next.Start > prev.End:
			out = append(out, next)
		default:
			return nil, fmt.Errorf("%v and %v: %w", *prev, next, ErrUnmergeableSegments)
		}
	}
	return out, nil
}

// String renders the interval as "[start,end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Start, iv.End)
}
