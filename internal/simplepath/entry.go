// Package simplepath decides structural relationships between simple paths
// through a splice graph and merges them.
//
// A simple path is an ordered list of entries. Each entry is either a node
// identifier or a spacer, a placeholder for an unannotated stretch between two
// nodes. All functions are pure: inputs are never mutated and every result is
// a freshly allocated slice.
package simplepath

import (
	"encoding/json"
	"fmt"
)

// NodeID names a node (exon-like feature) in the splice graph.
type NodeID string

// Entry is one position in a Path: either a node or a spacer.
// Entries are comparable; two spacers are equal to each other and never
// equal to any node.
type Entry struct {
	id     NodeID
	spacer bool
}

// Node returns the entry for the node id.
func Node(id NodeID) Entry {
	return Entry{id: id}
}

// Spacer returns the spacer entry.
func Spacer() Entry {
	return Entry{spacer: true}
}

// IsSpacer reports whether e is a spacer.
func (e Entry) IsSpacer() bool { return e.spacer }

// ID returns the node identifier. It is empty for a spacer.
func (e Entry) ID() NodeID { return e.id }

// String renders a spacer as "???" and a node as its identifier.
func (e Entry) String() string {
	if e.spacer {
		return "???"
	}
	return string(e.id)
}

// MarshalJSON encodes a node as a JSON string and a spacer as null.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.spacer {
		return []byte("null"), nil
	}
	return json.Marshal(string(e.id))
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = Spacer()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("simplepath: entry must be a string or null: %w", err)
	}
	*e = Node(NodeID(s))
	return nil
}
