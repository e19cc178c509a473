package simplepath

import (
	"slices"
	"strings"
)

// Path is a simple path: an ordered walk through the splice graph.
// Node identifiers are assumed not to repeat within one path.
type Path []Entry

// NewPath builds a Path of concrete nodes.
func NewPath(ids ...NodeID) Path {
	p := make(Path, len(ids))
	for i, id := range ids {
		p[i] = Node(id)
	}
	return p
}

// FromNullable converts the wire form of a path, where nil marks a spacer.
func FromNullable(raw []*string) Path {
	p := make(Path, len(raw))
	for i, s := range raw {
		if s == nil {
			p[i] = Spacer()
			continue
		}
		p[i] = Node(NodeID(*s))
	}
	return p
}

// Nullable is the inverse of FromNullable.
func (p Path) Nullable() []*string {
	out := make([]*string, len(p))
	for i, e := range p {
		if e.IsSpacer() {
			continue
		}
		s := string(e.ID())
		out[i] = &s
	}
	return out
}

// Clone returns a copy of p that shares no storage with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Equal reports whether p and q hold the same entries in the same order.
func (p Path) Equal(q Path) bool {
	return slices.Equal(p, q)
}

// Index returns the first position of e in p, or -1.
func (p Path) Index(e Entry) int {
	return slices.Index(p, e)
}

// HasSpacer reports whether any entry of p is a spacer.
func (p Path) HasSpacer() bool {
	return slices.ContainsFunc(p, Entry.IsSpacer)
}

// NodeIDs returns the identifiers of the concrete nodes in p, in order.
func (p Path) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(p))
	for _, e := range p {
		if !e.IsSpacer() {
			ids = append(ids, e.ID())
		}
	}
	return ids
}

// String renders p as "[n1 n2 ??? n3]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
