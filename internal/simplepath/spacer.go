package simplepath

import (
	"cmp"
	"fmt"
	"slices"
)

// Span is a 1-based, inclusive coordinate pair with Left <= Right.
type Span struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// CoordLookup resolves a node identifier to its coordinates. Implementations
// return an error wrapping ErrUnknownIdentifier for unregistered nodes.
type CoordLookup interface {
	Coords(id NodeID) (Span, error)
}

// LookupFunc adapts a function to CoordLookup.
type LookupFunc func(id NodeID) (Span, error)

// Coords calls f(id).
func (f LookupFunc) Coords(id NodeID) (Span, error) { return f(id) }

// Spans is an in-memory CoordLookup.
type Spans map[NodeID]Span

// Coords returns the span registered for id.
func (s Spans) Coords(id NodeID) (Span, error) {
	span, ok := s[id]
	if !ok {
		return Span{}, fmt.Errorf("%q: %w", id, ErrUnknownIdentifier)
	}
	return span, nil
}

// AnnotatedEntry is a path entry with resolved coordinates. For a spacer
// the span is the gap between its neighbors.
type AnnotatedEntry struct {
	Entry Entry `json:"id"`
	Span
}

func (a AnnotatedEntry) String() string {
	return fmt.Sprintf("(%s,%d,%d)", a.Entry, a.Left, a.Right)
}

// Annotate resolves coordinates for every entry of p. A spacer gets the gap
// between its neighbors: one past the preceding node's right end up to one
// before the following node's left end.
func Annotate(lookup CoordLookup, p Path) ([]AnnotatedEntry, error) {
	out := make([]AnnotatedEntry, len(p))
	for i, e := range p {
		out[i].Entry = e
		if e.IsSpacer() {
			if i == 0 || i == len(p)-1 || p[i-1].IsSpacer() || p[i+1].IsSpacer() {
				return nil, fmt.Errorf("annotate %s at %d: %w", p, i, ErrSpacerPlacement)
			}
			continue
		}
		span, err := lookup.Coords(e.ID())
		if err != nil {
			return nil, fmt.Errorf("annotate %s: %w", p, err)
		}
		out[i].Span = span
	}

	for i := range out {
		if out[i].Entry.IsSpacer() {
			out[i].Span = Span{Left: out[i-1].Right + 1, Right: out[i+1].Left - 1}
		}
	}
	return out, nil
}

// SplitSpacers replaces each spacer (Spacer, l, r) with the two boundary
// points (Spacer, l, l) and (Spacer, r, r). Nodes pass through unchanged.
func SplitSpacers(entries []AnnotatedEntry) []AnnotatedEntry {
	out := make([]AnnotatedEntry, 0, len(entries))
	for _, a := range entries {
		if !a.Entry.IsSpacer() {
			out = append(out, a)
			continue
		}
		out = append(out,
			AnnotatedEntry{Entry: a.Entry, Span: Span{Left: a.Left, Right: a.Left}},
			AnnotatedEntry{Entry: a.Entry, Span: Span{Left: a.Right, Right: a.Right}},
		)
	}
	return out
}

// MergeWithSpacers merges two paths that may contain spacers into one
// coordinate-ordered list. Both paths are annotated and their spacers split
// into boundary points; the union is sorted by (Left, Right) and then
// coalesced: repeated nodes collapse to one entry, and a run of spacer
// points collapses to one spacer spanning from the first point to the
// furthest right end.
//
// A node carrying different coordinates in the two paths fails with
// ErrInconsistentCoordinates.
func MergeWithSpacers(lookup CoordLookup, a, b Path) ([]AnnotatedEntry, error) {
	annA, err := Annotate(lookup, a)
	if err != nil {
		return nil, err
	}
	annB, err := Annotate(lookup, b)
	if err != nil {
		return nil, err
	}

	all := append(SplitSpacers(annA), SplitSpacers(annB)...)
	if len(all) == 0 {
		return nil, nil
	}
	slices.SortStableFunc(all, func(x, y AnnotatedEntry) int {
		if c := cmp.Compare(x.Left, y.Left); c != 0 {
			return c
		}
		return cmp.Compare(x.Right, y.Right)
	})

	out := []AnnotatedEntry{all[0]}
	for _, cur := range all[1:] {
		prev := &out[len(out)-1]
		if prev.Entry != cur.Entry {
			out = append(out, cur)
			continue
		}
		if cur.Entry.IsSpacer() {
			prev.Right = max(prev.Right, cur.Right)
			continue
		}
		if prev.Span != cur.Span {
			return nil, fmt.Errorf("node %s at %d-%d and %d-%d: %w",
				cur.Entry, prev.Left, prev.Right, cur.Left, cur.Right, ErrInconsistentCoordinates)
		}
	}
	return out, nil
}
