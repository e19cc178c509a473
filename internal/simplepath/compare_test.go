package simplepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// p builds a Path from tokens; "-" stands for a spacer.
func p(tokens ...string) Path {
	out := make(Path, len(tokens))
	for i, tok := range tokens {
		if tok == "-" {
			out[i] = Spacer()
			continue
		}
		out[i] = Node(NodeID(tok))
	}
	return out
}

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		a, b Path
		want bool
	}{
		{"single inner node", p("n1", "n2", "n3"), p("n2"), true},
		{"identical", p("n1", "n2", "n3"), p("n1", "n2", "n3"), true},
		{"b longer by one", p("n1", "n2", "n3"), p("n1", "n2", "n3", "n4"), false},
		{"b extends both ends", p("n1", "n2", "n3"), p("n0", "n1", "n2", "n3", "n4"), false},
		{"b runs past a's end", p("n1", "n2", "n3"), p("n3", "n4"), false},
		{"anchor absent", p("n1", "n2", "n3"), p("n7"), false},
		{"mismatch after anchor", p("n1", "n2", "n3", "n4"), p("n2", "n4"), false},
		{"suffix", p("n1", "n2", "n3", "n4"), p("n3", "n4"), true},
		{"spacers compare equal", p("n1", "-", "n3"), p("n1", "-"), true},
		{"spacer vs node", p("n1", "n2", "n3"), p("n1", "-"), false},
		{"empty b", p("n1"), p(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.a, tt.b))
		})
	}
}

func TestContains_OnlyFirstOccurrenceTried(t *testing.T) {
	// n1 repeats; the run starting at its second occurrence is never tried.
	a := p("n1", "n9", "n1", "n2")
	assert.False(t, Contains(a, p("n1", "n2")))
}

func TestContains_EverySubrun(t *testing.T) {
	a := p("n0", "n1", "n2", "n3", "n4", "n5")
	for i := range a {
		for j := i + 1; j <= len(a); j++ {
			assert.True(t, Contains(a, a[i:j]), "run %d:%d", i, j)
		}
	}
}

func TestOverlapCompatible_True(t *testing.T) {
	tests := []struct {
		name string
		a, b Path
	}{
		{"b starts inside a", p("n0", "n1", "n2", "n3", "n4", "n5", "n6"), p("n2", "n3", "n4", "n5", "n6", "n7", "n8")},
		{"b inside a", p("n0", "n1", "n2", "n3", "n4", "n5", "n6"), p("n2", "n3", "n4", "n5")},
		{"a inside b", p("n2", "n3", "n4", "n5"), p("n0", "n1", "n2", "n3", "n4", "n5", "n6")},
		{"a starts inside b", p("n2", "n3", "n4", "n5", "n6", "n7", "n8"), p("n0", "n1", "n2", "n3", "n4", "n5", "n6")},
		{"identical", p("n1", "n2"), p("n1", "n2")},
		{"spacer before anchor in a", p("-", "n2", "n3"), p("n2", "n3", "n4")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, OverlapCompatible(tt.a, tt.b))
		})
	}
}

func TestOverlapCompatible_False(t *testing.T) {
	tests := []struct {
		name string
		a, b Path
	}{
		{"diverging node", p("n2", "n10", "n4", "n5", "n6", "n7", "n8"), p("n0", "n1", "n2", "n3", "n4", "n5", "n6")},
		{"diverging unknown node", p("n2", "X10", "n4", "n5", "n6", "n7", "n8"), p("n0", "n1", "n2", "n3", "n4", "n5", "n6")},
		{"nothing shared", p("n2", "n10"), p("n3", "n4", "n5", "n6")},
		{"unmatched prefixes on both", p("n0", "n2", "n3"), p("n1", "n2", "n3")},
		{"spacer in overlap", p("n1", "-", "n3"), p("n1", "n2", "n3")},
		{"only spacers shared", p("-"), p("n1", "-", "n2")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, OverlapCompatible(tt.a, tt.b))
		})
	}
}

func TestRemoveContained(t *testing.T) {
	in := []Path{
		p("n2", "n3"),
		p("n1", "n2", "n3", "n4"),
		p("n5", "n6"),
		p("n5", "n6"),
		p("n3", "n4"),
	}

	got := RemoveContained(in)
	assert.Equal(t, []Path{p("n1", "n2", "n3", "n4"), p("n5", "n6")}, got)
	assert.Len(t, in, 5, "input untouched")
}

func TestRemoveContained_Empty(t *testing.T) {
	assert.Empty(t, RemoveContained(nil))
}
