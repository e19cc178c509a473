package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/dusk-indust/splicepath/internal/simplepath"
	"gopkg.in/yaml.v3"
)

// Op names the comparison or merge a Job performs.
type Op string

const (
	OpContains     Op = "contains"      // is b a contiguous run of a?
	OpOverlap      Op = "overlap"       // are a and b overlap-compatible?
	OpMerge        Op = "merge"         // merge two compatible paths
	OpMergeSpacers Op = "merge-spacers" // coordinate merge of paths with spacers
)

// Job is one operation over a pair of paths. In job files a path is a list
// of node ids where null marks a spacer.
type Job struct {
	ID string    `json:"id,omitempty" yaml:"id,omitempty"`
	Op Op        `json:"op" yaml:"op"`
	A  []*string `json:"a" yaml:"a"`
	B  []*string `json:"b" yaml:"b"`
}

// Paths converts the wire form of both paths.
func (j Job) Paths() (a, b simplepath.Path) {
	return simplepath.FromNullable(j.A), simplepath.FromNullable(j.B)
}

// jobFile is the top-level layout of a job file.
type jobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs decodes a YAML or JSON job file.
func LoadJobs(r io.Reader) ([]Job, error) {
	var f jobFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("batch: decode jobs: %w", err)
	}
	for i, j := range f.Jobs {
		switch j.Op {
		case OpContains, OpOverlap, OpMerge, OpMergeSpacers:
		default:
			return nil, fmt.Errorf("batch: job %d: unknown op %q", i, j.Op)
		}
	}
	return f.Jobs, nil
}

// LoadJobsFile is LoadJobs for a file path.
func LoadJobsFile(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	defer f.Close()
	return LoadJobs(f)
}
