package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dusk-indust/splicepath/internal/config"
	"github.com/dusk-indust/splicepath/internal/graph"
	"github.com/dusk-indust/splicepath/internal/logging"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Graph     string
	Store     string
	KuzuPath  string
	Workers   int
	Format    string
	LogLevel  string
	LogFormat string
	ServeMCP  bool
	Stdio     bool
	Addr      string
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

const usage = `usage: splicepath [flags] <command> [args]

commands:
  run <jobs-file>        evaluate path jobs and print a report
  intervals <file>       merge adjacent [start, end] intervals
  stats                  print splice graph statistics

flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every command needs once flags and config are resolved.
type app struct {
	cfg    config.ProjectConfig
	format string
	logger *slog.Logger
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("splicepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory holding splicepath.yml")
	fs.StringVar(&flags.Graph, "graph", "", "splice graph description (YAML or JSON)")
	fs.StringVar(&flags.Store, "store", "", "graph store backend: memory or kuzu")
	fs.StringVar(&flags.KuzuPath, "kuzu-path", "", "kuzu database directory (empty: in-memory)")
	fs.IntVar(&flags.Workers, "workers", 0, "parallel jobs (0: number of CPUs)")
	fs.StringVar(&flags.Format, "format", "json", "report format: json or mermaid")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&flags.LogFormat, "log-format", "", "log format: text or json")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "serve the path tools over MCP")
	fs.BoolVar(&flags.Stdio, "stdio", false, "with -serve-mcp, use stdio instead of HTTP")
	fs.StringVar(&flags.Addr, "addr", "", "MCP HTTP listen address")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	fileCfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return err
	}
	cfg := mergeFlags(*fileCfg, flags).WithDefaults()

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, format: flags.Format, logger: logger, stdout: stdout}
	logger.Info("splicepath starting", "version", version, "store", cfg.Store, "workers", cfg.Workers)

	if flags.ServeMCP {
		return a.serve(ctx, flags.Stdio)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	switch rest[0] {
	case "run":
		if len(rest) < 2 {
			return fmt.Errorf("usage: splicepath run <jobs-file>")
		}
		return a.runJobs(ctx, rest[1])
	case "intervals":
		if len(rest) < 2 {
			return fmt.Errorf("usage: splicepath intervals <file>")
		}
		return a.runIntervals(rest[1])
	case "stats":
		return a.runStats(ctx)
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

// mergeFlags overlays non-empty flag values on the file config.
func mergeFlags(cfg config.ProjectConfig, flags cliFlags) config.ProjectConfig {
	if flags.Graph != "" {
		cfg.Graph = flags.Graph
	}
	if flags.Store != "" {
		cfg.Store = flags.Store
	}
	if flags.KuzuPath != "" {
		cfg.KuzuPath = flags.KuzuPath
	}
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.LogFormat = flags.LogFormat
	}
	if flags.Addr != "" {
		cfg.MCPAddr = flags.Addr
	}
	return cfg
}

// openGraph opens the configured store and loads the graph description
// into it when one is configured. The caller closes the store.
func (a *app) openGraph(ctx context.Context) (graph.Store, *graph.GraphStats, error) {
	store, err := graph.Open(graph.Backend(a.cfg.Store), a.cfg.KuzuPath)
	if err != nil {
		return nil, nil, err
	}

	var stats *graph.GraphStats
	if a.cfg.Graph == "" && graph.Backend(a.cfg.Store) != graph.BackendKuzu {
		a.logger.Warn("no graph description configured; node lookups will fail")
	}
	if a.cfg.Graph != "" {
		stats, err = graph.LoadFile(ctx, store, a.cfg.Graph)
	} else {
		if err = store.InitSchema(ctx); err == nil {
			stats, err = store.Stats(ctx)
		}
	}
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	a.logger.Debug("graph ready", "store", a.cfg.Store, "nodes", stats.NodeCount, "edges", stats.EdgeCount)
	return store, stats, nil
}
