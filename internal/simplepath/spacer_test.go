package simplepath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exonSpans() Spans {
	return Spans{
		"E:1": {Left: 100, Right: 200},
		"E:2": {Left: 300, Right: 400},
		"E:3": {Left: 500, Right: 600},
		"E:4": {Left: 700, Right: 800},
		"E:5": {Left: 900, Right: 1000},
	}
}

func ann(tok string, left, right int) AnnotatedEntry {
	return AnnotatedEntry{Entry: p(tok)[0], Span: Span{Left: left, Right: right}}
}

func TestAnnotate(t *testing.T) {
	got, err := Annotate(exonSpans(), p("E:1", "-", "E:3"))
	require.NoError(t, err)
	assert.Equal(t, []AnnotatedEntry{
		ann("E:1", 100, 200),
		ann("-", 201, 499),
		ann("E:3", 500, 600),
	}, got)
}

func TestAnnotate_UnknownNode(t *testing.T) {
	_, err := Annotate(exonSpans(), p("E:1", "E:9"))
	require.ErrorIs(t, err, ErrUnknownIdentifier)
	assert.Contains(t, err.Error(), "E:9")
}

func TestAnnotate_SpacerPlacement(t *testing.T) {
	for _, path := range []Path{
		p("-", "E:1"),
		p("E:1", "-"),
		p("E:1", "-", "-", "E:3"),
		p("-"),
	} {
		_, err := Annotate(exonSpans(), path)
		assert.ErrorIs(t, err, ErrSpacerPlacement, "path %s", path)
	}
}

func TestSplitSpacers(t *testing.T) {
	in := []AnnotatedEntry{
		ann("E:1", 100, 200),
		ann("-", 201, 299),
		ann("E:2", 300, 400),
	}
	got := SplitSpacers(in)
	assert.Equal(t, []AnnotatedEntry{
		ann("E:1", 100, 200),
		ann("-", 201, 201),
		ann("-", 299, 299),
		ann("E:2", 300, 400),
	}, got)
	assert.Len(t, in, 3)
	assert.Equal(t, ann("-", 201, 299), in[1])
}

func TestMergeWithSpacers(t *testing.T) {
	a := p("E:1", "E:2", "-", "E:3")
	b := p("E:1", "-", "E:2", "-", "E:3", "-", "E:5")

	got, err := MergeWithSpacers(exonSpans(), a, b)
	require.NoError(t, err)
	assert.Equal(t, []AnnotatedEntry{
		ann("E:1", 100, 200),
		ann("-", 201, 299),
		ann("E:2", 300, 400),
		ann("-", 401, 499),
		ann("E:3", 500, 600),
		ann("-", 601, 899),
		ann("E:5", 900, 1000),
	}, got)
}

func TestMergeWithSpacers_NoSpacers(t *testing.T) {
	got, err := MergeWithSpacers(exonSpans(), p("E:1", "E:2"), p("E:2", "E:3"))
	require.NoError(t, err)
	assert.Equal(t, []AnnotatedEntry{
		ann("E:1", 100, 200),
		ann("E:2", 300, 400),
		ann("E:3", 500, 600),
	}, got)
}

func TestMergeWithSpacers_InconsistentCoordinates(t *testing.T) {
	// The lookup answers differently for E:2 on its second call.
	calls := 0
	lookup := LookupFunc(func(id NodeID) (Span, error) {
		if id == "E:2" {
			calls++
			if calls > 1 {
				return Span{Left: 300, Right: 450}, nil
			}
		}
		return exonSpans().Coords(id)
	})

	_, err := MergeWithSpacers(lookup, p("E:1", "E:2"), p("E:2", "E:3"))
	require.ErrorIs(t, err, ErrInconsistentCoordinates)
}

func TestMergeWithSpacers_PropagatesLookupError(t *testing.T) {
	_, err := MergeWithSpacers(exonSpans(), p("E:1"), p("E:7"))
	require.ErrorIs(t, err, ErrUnknownIdentifier)
}

func TestAnnotatedEntry_JSON(t *testing.T) {
	out, err := json.Marshal([]AnnotatedEntry{ann("E:1", 100, 200), ann("-", 201, 299)})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"E:1","left":100,"right":200},{"id":null,"left":201,"right":299}]`, string(out))

	var back []AnnotatedEntry
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, []AnnotatedEntry{ann("E:1", 100, 200), ann("-", 201, 299)}, back)
}
