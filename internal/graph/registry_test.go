package graph

import (
	"context"
	"testing"

	"github.com/dusk-indust/splicepath/internal/simplepath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	store := setupStore(t, testNodes, nil)
	lookup := Lookup(context.Background(), store)

	span, err := lookup.Coords("E:3")
	require.NoError(t, err)
	assert.Equal(t, simplepath.Span{Left: 500, Right: 600}, span)

	_, err = lookup.Coords("E:42")
	require.ErrorIs(t, err, simplepath.ErrUnknownIdentifier)
}

func TestSnapshot(t *testing.T) {
	store := setupStore(t, testNodes, nil)
	spans, err := Snapshot(context.Background(), store)
	require.NoError(t, err)
	assert.Len(t, spans, 5)
	assert.Equal(t, simplepath.Span{Left: 900, Right: 1000}, spans["E:5"])
}

func TestLookup_DrivesSpacerMerge(t *testing.T) {
	store := setupStore(t, testNodes, testEdges)
	lookup := Lookup(context.Background(), store)

	a := simplepath.Path{simplepath.Node("E:1"), simplepath.Node("E:2"), simplepath.Spacer(), simplepath.Node("E:3")}
	b := simplepath.Path{
		simplepath.Node("E:1"), simplepath.Spacer(), simplepath.Node("E:2"), simplepath.Spacer(),
		simplepath.Node("E:3"), simplepath.Spacer(), simplepath.Node("E:5"),
	}
	got, err := simplepath.MergeWithSpacers(lookup, a, b)
	require.NoError(t, err)
	require.Len(t, got, 7)
	assert.Equal(t, simplepath.Span{Left: 601, Right: 899}, got[5].Span)
}

func TestValidatePath(t *testing.T) {
	store := setupStore(t, testNodes, testEdges)
	ctx := context.Background()

	tests := []struct {
		name    string
		path    simplepath.Path
		wantErr error
	}{
		{"connected", simplepath.NewPath("E:1", "E:2", "E:3", "E:5"), nil},
		{"adjacent edge", simplepath.NewPath("E:3", "E:4"), nil},
		{"spacer bridges gap", simplepath.Path{simplepath.Node("E:1"), simplepath.Spacer(), simplepath.Node("E:3")}, nil},
		{"missing edge", simplepath.NewPath("E:1", "E:3"), ErrMissingEdge},
		{"reversed edge", simplepath.NewPath("E:2", "E:1"), ErrMissingEdge},
		{"unknown node", simplepath.NewPath("E:1", "E:9"), ErrNodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(ctx, store, tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
