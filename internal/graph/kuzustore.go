//go:build cgo

package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"
)

// KuzuStore implements the Store interface using KuzuDB as the graph backend.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	return openKuzu(":memory:")
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at the
// given directory path. KuzuDB creates the directory itself for new databases.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	// Ensure parent directory exists (KuzuDB creates the leaf directory).
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	return openKuzu(dbPath)
}

// openKuzuBackend opens a file store at dbPath, or an in-memory one when
// dbPath is empty.
func openKuzuBackend(dbPath string) (Store, error) {
	var (
		s   *KuzuStore
		err error
	)
	if dbPath == "" {
		s, err = NewKuzuStore()
	} else {
		s, err = NewKuzuFileStore(dbPath)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openKuzu(dbPath string) (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(dbPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS Exon(
		id STRING,
		contig STRING,
		lend INT64,
		rend INT64,
		strand STRING,
		PRIMARY KEY(id)
	)`,
	`CREATE REL TABLE IF NOT EXISTS SPLICE(FROM Exon TO Exon)`,
	`CREATE REL TABLE IF NOT EXISTS ADJACENT(FROM Exon TO Exon)`,
}

// relTables lists every relationship table, used for counting and traversal.
var relTables = []EdgeKind{EdgeKindSplice, EdgeKindAdjacent}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// AddNode inserts an Exon node.
func (s *KuzuStore) AddNode(ctx context.Context, node ExonNode) error {
	if err := validateNode(node); err != nil {
		return err
	}
	existing, err := s.GetNode(ctx, node.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%s: %w", node.ID, ErrDuplicateNode)
	}
	return s.exec(
		"CREATE (e:Exon {id: $id, contig: $contig, lend: $lend, rend: $rend, strand: $strand})",
		map[string]any{
			"id":     node.ID,
			"contig": node.Contig,
			"lend":   int64(node.Lend),
			"rend":   int64(node.Rend),
			"strand": string(node.Strand),
		},
	)
}

// AddEdge inserts a relationship between two existing Exon nodes. The table
// is chosen by the edge kind; an empty kind means SPLICE.
func (s *KuzuStore) AddEdge(ctx context.Context, edge Edge) error {
	kind, err := edgeKind(edge)
	if err != nil {
		return err
	}
	for _, id := range []string{edge.SourceID, edge.TargetID} {
		n, err := s.GetNode(ctx, id)
		if err != nil {
			return err
		}
		if n == nil {
			return fmt.Errorf("edge %s->%s: %s: %w", edge.SourceID, edge.TargetID, id, ErrNodeNotFound)
		}
	}
	succ, err := s.Successors(ctx, edge.SourceID)
	if err != nil {
		return err
	}
	for _, id := range succ {
		if id == edge.TargetID {
			return nil
		}
	}
	// Table name comes from the fixed EdgeKind set above, not user input.
	cypher := fmt.Sprintf(`MATCH (a:Exon {id: $src}), (b:Exon {id: $dst})
		CREATE (a)-[:%s]->(b)`, kind)
	return s.exec(cypher, map[string]any{
		"src": edge.SourceID,
		"dst": edge.TargetID,
	})
}

// ---------- Read operations ----------

// GetNode retrieves a single Exon node by id, or returns nil if not found.
func (s *KuzuStore) GetNode(_ context.Context, id string) (*ExonNode, error) {
	rows, err := s.query(
		"MATCH (e:Exon {id: $id}) RETURN e.id, e.contig, e.lend, e.rend, e.strand",
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	n := rowToNode(rows[0])
	return &n, nil
}

// Nodes returns all Exon nodes ordered by contig and left coordinate.
func (s *KuzuStore) Nodes(_ context.Context) ([]ExonNode, error) {
	rows, err := s.query(
		"MATCH (e:Exon) RETURN e.id, e.contig, e.lend, e.rend, e.strand ORDER BY e.contig, e.lend, e.rend, e.id",
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]ExonNode, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowToNode(r))
	}
	return out, nil
}

// Successors returns the ids of nodes reachable from id in one edge of any kind.
func (s *KuzuStore) Successors(_ context.Context, id string) ([]string, error) {
	var out []string
	for _, t := range relTables {
		cypher := fmt.Sprintf("MATCH (a:Exon {id: $id})-[:%s]->(b:Exon) RETURN b.id", t)
		rows, err := s.query(cypher, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, toString(r[0]))
		}
	}
	return out, nil
}

// Stats returns node, edge and contig counts.
func (s *KuzuStore) Stats(_ context.Context) (*GraphStats, error) {
	nodes, err := s.scalar("MATCH (e:Exon) RETURN count(e)")
	if err != nil {
		return nil, err
	}
	contigs, err := s.scalar("MATCH (e:Exon) RETURN count(DISTINCT e.contig)")
	if err != nil {
		return nil, err
	}
	edges := 0
	for _, t := range relTables {
		n, err := s.scalar(fmt.Sprintf("MATCH ()-[r:%s]->() RETURN count(r)", t))
		if err != nil {
			return nil, err
		}
		edges += n
	}
	return &GraphStats{NodeCount: nodes, EdgeCount: edges, ContigCount: contigs}, nil
}

// ---------- Query helpers ----------

// exec runs a parameterized Cypher statement that returns no rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// scalar runs a single-value query and returns it as an int.
func (s *KuzuStore) scalar(cypher string) (int, error) {
	rows, err := s.query(cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// rowToNode converts a 5-column result row into an ExonNode.
// Column order: id, contig, lend, rend, strand.
func rowToNode(r []any) ExonNode {
	return ExonNode{
		ID:     toString(r[0]),
		Contig: toString(r[1]),
		Lend:   toInt(r[2]),
		Rend:   toInt(r[3]),
		Strand: Strand(toString(r[4])),
	}
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, float64, bool, string).

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
