package simplepath

import "errors"

// Sentinel errors. Operations wrap these with detail; match with errors.Is.
var (
	// ErrIncompatiblePaths is returned by Merge when the two paths do not
	// share a gap-free overlap anchored at either path's start.
	ErrIncompatiblePaths = errors.New("simplepath: paths are not overlap-compatible")

	// ErrMergeLogic means Merge could not re-locate an anchor that the
	// compatibility check had already found. It indicates a bug, not bad input.
	ErrMergeLogic = errors.New("simplepath: merge anchor not found after compatibility check")

	// ErrUnmergeableSegments is returned by MergeIntervals for an interval
	// configuration it has no rule for, such as a partial overlap.
	ErrUnmergeableSegments = errors.New("simplepath: cannot merge segments")

	// ErrUnknownIdentifier is returned by a CoordLookup for an unregistered node.
	ErrUnknownIdentifier = errors.New("simplepath: unknown node identifier")

	// ErrInconsistentCoordinates is returned when one node carries different
	// coordinates in the two paths being merged.
	ErrInconsistentCoordinates = errors.New("simplepath: inconsistent node coordinates")

	// ErrSpacerPlacement is returned when a spacer has no concrete node on
	// one of its sides (first or last entry, or next to another spacer).
	ErrSpacerPlacement = errors.New("simplepath: spacer must sit between two nodes")
)
