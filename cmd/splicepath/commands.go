package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dusk-indust/splicepath/internal/batch"
	"github.com/dusk-indust/splicepath/internal/export"
	"github.com/dusk-indust/splicepath/internal/graph"
	"github.com/dusk-indust/splicepath/internal/mcptools"
	"github.com/dusk-indust/splicepath/internal/simplepath"
	"gopkg.in/yaml.v3"
)

// runJobs evaluates a job file and writes the report to stdout.
func (a *app) runJobs(ctx context.Context, jobsPath string) error {
	jobs, err := batch.LoadJobsFile(jobsPath)
	if err != nil {
		return err
	}

	store, stats, err := a.openGraph(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	lookup, err := graph.Snapshot(ctx, store)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(lookup, batch.WithWorkers(a.cfg.Workers), batch.WithLogger(a.logger))
	results, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}

	switch a.format {
	case "", "json":
		return export.WriteJSON(a.stdout, export.NewReport(results, stats))
	case "mermaid":
		_, err := fmt.Fprint(a.stdout, export.GenerateMermaid(results))
		return err
	default:
		return fmt.Errorf("unknown format %q", a.format)
	}
}

// runIntervals reads a YAML or JSON list of [start, end] pairs and prints
// the merged list as JSON.
func (a *app) runIntervals(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var pairs [][2]int
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("decode intervals: %w", err)
	}

	in := make([]simplepath.Interval, len(pairs))
	for i, pr := range pairs {
		in[i] = simplepath.Interval{Start: pr[0], End: pr[1]}
	}
	merged, err := simplepath.MergeIntervals(in)
	if err != nil {
		return err
	}
	if merged == nil {
		merged = []simplepath.Interval{}
	}
	return export.WriteJSON(a.stdout, merged)
}

// runStats prints statistics of the configured graph.
func (a *app) runStats(ctx context.Context) error {
	store, stats, err := a.openGraph(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	return export.WriteJSON(a.stdout, stats)
}

// serve runs the MCP server until ctx is cancelled.
func (a *app) serve(ctx context.Context, stdio bool) error {
	store, _, err := a.openGraph(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := mcptools.NewPathService(store, a.logger)
	if stdio {
		a.logger.Info("serving MCP", "transport", "stdio")
		return mcptools.RunMCPServerStdio(ctx, svc)
	}
	return mcptools.RunMCPServer(ctx, svc, a.cfg.MCPAddr)
}
