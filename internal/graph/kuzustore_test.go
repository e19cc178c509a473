//go:build cgo

package graph

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dusk-indust/splicepath/internal/simplepath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a fresh in-memory KuzuStore with an initialized schema.
// It registers a cleanup function to close the store when the test finishes.
func newTestStore(t *testing.T) *KuzuStore {
	t.Helper()
	s, err := NewKuzuStore()
	require.NoError(t, err, "NewKuzuStore should not fail")
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.InitSchema(ctx), "InitSchema should not fail")
	return s
}

func populate(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	for _, n := range testNodes {
		require.NoError(t, s.AddNode(ctx, n))
	}
	for _, e := range testEdges {
		require.NoError(t, s.AddEdge(ctx, e))
	}
}

func TestKuzuStore_InitSchema(t *testing.T) {
	s, err := NewKuzuStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()

	// First call creates the tables.
	require.NoError(t, s.InitSchema(ctx))

	// Second call should be idempotent (IF NOT EXISTS).
	require.NoError(t, s.InitSchema(ctx))
}

func TestKuzuStore_NodeRoundTrip(t *testing.T) {
	s := newTestStore(t)
	populate(t, s)
	ctx := context.Background()

	got, err := s.GetNode(ctx, "E:4")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testNodes[3], *got)

	missing, err := s.GetNode(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := s.Nodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, testNodes, all)

	assert.ErrorIs(t, s.AddNode(ctx, testNodes[0]), ErrDuplicateNode)
}

func TestKuzuStore_SuccessorsAndStats(t *testing.T) {
	s := newTestStore(t)
	populate(t, s)
	ctx := context.Background()

	succ, err := s.Successors(ctx, "E:3")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"E:4", "E:5"}, succ)

	// Duplicate edge is ignored.
	require.NoError(t, s.AddEdge(ctx, testEdges[0]))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &GraphStats{NodeCount: 5, EdgeCount: 4, ContigCount: 1}, stats)

	assert.ErrorIs(t, s.AddEdge(ctx, Edge{SourceID: "E:1", TargetID: "E:9"}), ErrNodeNotFound)
}

func TestKuzuStore_StatsWithoutRelTables(t *testing.T) {
	s, err := NewKuzuStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// Only the node table exists, so counting edges must fail.
	res, err := s.conn.Query(ddlStatements[0])
	require.NoError(t, err)
	res.Close()

	_, err = s.Stats(context.Background())
	require.Error(t, err)
}

func TestKuzuStore_UnknownEdgeKind(t *testing.T) {
	s := newTestStore(t)
	populate(t, s)

	err := s.AddEdge(context.Background(), Edge{SourceID: "E:1", TargetID: "E:5", Kind: "INTRON"})
	require.ErrorIs(t, err, ErrUnknownEdgeKind)
}

func TestKuzuStore_LookupAndValidate(t *testing.T) {
	s := newTestStore(t)
	populate(t, s)
	ctx := context.Background()

	lookup := Lookup(ctx, s)
	span, err := lookup.Coords("E:2")
	require.NoError(t, err)
	assert.Equal(t, 300, span.Left)

	require.NoError(t, ValidatePath(ctx, s, simplepath.NewPath("E:1", "E:2", "E:3", "E:4")))
	assert.ErrorIs(t, ValidatePath(ctx, s, simplepath.NewPath("E:1", "E:3")), ErrMissingEdge)
}

func TestKuzuFileStore_Persists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "graph", "db")
	ctx := context.Background()

	s, err := NewKuzuFileStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.InitSchema(ctx))
	populate(t, s)
	require.NoError(t, s.Close())

	reopened, err := Open(BackendKuzu, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	stats, err := reopened.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.NodeCount)
	assert.Equal(t, 4, stats.EdgeCount)
}
