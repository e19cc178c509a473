package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewPathMCPServer creates an MCP server with all 8 path tools registered.
func NewPathMCPServer(svc *PathService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "splicepath",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "contains_path",
		Description: "Report whether path b occurs entry for entry as a contiguous run inside path a.",
	}, svc.ContainsPath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "overlap_compatible",
		Description: "Report whether two paths share a gap-free identical overlap, each extending past the other only at its own start or end.",
	}, svc.OverlapCompatible)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_paths",
		Description: "Merge two overlap-compatible paths into one. Fails if the paths are not compatible.",
	}, svc.MergePaths)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_spacer_paths",
		Description: "Merge two paths that may contain spacers (null entries) into a coordinate-ordered list, resolving node coordinates from the loaded splice graph.",
	}, svc.MergeSpacerPaths)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_intervals",
		Description: "Sort [start, end] intervals and join exactly adjacent ones; redundant intervals sharing an end are dropped.",
	}, svc.MergeIntervals)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_contained",
		Description: "Drop every path that occurs as a contiguous run inside another path of the set. Of equal paths the first is kept.",
	}, svc.RemoveContained)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_path",
		Description: "Check that every node of a path exists in the splice graph and consecutive nodes are joined by an edge.",
	}, svc.ValidatePath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Return node, edge and contig counts of the loaded splice graph.",
	}, svc.GraphStats)

	return server
}

// RunMCPServer starts an HTTP server exposing the path MCP tools.
func RunMCPServer(ctx context.Context, svc *PathService, addr string) error {
	server := NewPathMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	svc.logger.Info("serving MCP", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking
// until stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, svc *PathService) error {
	return NewPathMCPServer(svc).Run(ctx, &mcp.StdioTransport{})
}
