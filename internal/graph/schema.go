package graph

// --- Enums ---

// NodeKind classifies nodes in the splice graph.
type NodeKind string

const (
	NodeKindExon NodeKind = "exon"
)

// EdgeKind classifies connections between exon nodes.
type EdgeKind string

const (
	EdgeKindSplice   EdgeKind = "SPLICE"   // intron junction between two exons
	EdgeKindAdjacent EdgeKind = "ADJACENT" // exons abutting with no intron
)

// Strand is the transcribed strand of a feature.
type Strand string

const (
	StrandPlus    Strand = "+"
	StrandMinus   Strand = "-"
	StrandUnknown Strand = "."
)

// --- Models ---

// ExonNode is an exon-like feature with 1-based inclusive coordinates.
type ExonNode struct {
	ID     string `json:"id" yaml:"id"`
	Contig string `json:"contig" yaml:"contig"`
	Lend   int    `json:"lend" yaml:"lend"`
	Rend   int    `json:"rend" yaml:"rend"`
	Strand Strand `json:"strand,omitempty" yaml:"strand,omitempty"`
}

// Edge connects two exon nodes in transcription order.
type Edge struct {
	SourceID string   `json:"from" yaml:"from"`
	TargetID string   `json:"to" yaml:"to"`
	Kind     EdgeKind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// GraphStats summarizes a splice graph.
type GraphStats struct {
	NodeCount   int `json:"nodeCount"`
	EdgeCount   int `json:"edgeCount"`
	ContigCount int `json:"contigCount"`
}
