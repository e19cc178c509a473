package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dusk-indust/splicepath/internal/batch"
	"github.com/dusk-indust/splicepath/internal/graph"
	"github.com/google/uuid"
)

// Report is the top-level JSON export of a batch run.
type Report struct {
	RunID      string            `json:"runId"`
	ExportedAt string            `json:"exportedAt"`
	Graph      *graph.GraphStats `json:"graph,omitempty"`
	Jobs       int               `json:"jobs"`
	Failed     int               `json:"failed"`
	Results    []batch.Result    `json:"results"`
}

// NewReport builds a Report for results. stats may be nil when no graph
// was loaded.
func NewReport(results []batch.Result, stats *graph.GraphStats) *Report {
	r := &Report{
		RunID:      uuid.NewString(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Graph:      stats,
		Jobs:       len(results),
		Results:    results,
	}
	for _, res := range results {
		if res.Err != nil || res.Error != "" {
			r.Failed++
		}
	}
	if r.Results == nil {
		r.Results = []batch.Result{}
	}
	return r
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
