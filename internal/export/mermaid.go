package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/splicepath/internal/batch"
	"github.com/dusk-indust/splicepath/internal/simplepath"
)

// mermaidNode is one box of a result chain.
type mermaidNode struct {
	label  string
	spacer bool
}

// GenerateMermaid renders each path-producing result as a left-to-right
// Mermaid chain. Spacers are drawn as dashed stadium nodes; results that
// only carry a match flag or an error become a single note node.
func GenerateMermaid(results []batch.Result) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, res := range results {
		name := res.ID
		if name == "" {
			name = fmt.Sprintf("job %d", i+1)
		}
		sb.WriteString(fmt.Sprintf("  subgraph R%d[\"%s: %s\"]\n", i, escape(name), res.Op))

		var nodes []mermaidNode
		switch {
		case res.Error != "":
			nodes = []mermaidNode{{label: "error: " + res.Error}}
		case res.Match != nil:
			nodes = []mermaidNode{{label: fmt.Sprintf("%t", *res.Match)}}
		case res.Entries != nil:
			nodes = entryNodes(res.Entries)
		default:
			nodes = pathNodes(res.Path)
		}

		for j, n := range nodes {
			id := fmt.Sprintf("R%dN%d", i, j)
			if n.spacer {
				sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", id, escape(n.label)))
				sb.WriteString(fmt.Sprintf("    style %s stroke-dasharray: 4 4\n", id))
			} else {
				sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escape(n.label)))
			}
			if j > 0 {
				sb.WriteString(fmt.Sprintf("    R%dN%d --> %s\n", i, j-1, id))
			}
		}
		sb.WriteString("  end\n")
	}
	return sb.String()
}

func entryNodes(entries []simplepath.AnnotatedEntry) []mermaidNode {
	nodes := make([]mermaidNode, len(entries))
	for i, e := range entries {
		if e.Entry.IsSpacer() {
			nodes[i] = mermaidNode{label: fmt.Sprintf("gap %d-%d", e.Left, e.Right), spacer: true}
			continue
		}
		nodes[i] = mermaidNode{label: fmt.Sprintf("%s %d-%d", e.Entry, e.Left, e.Right)}
	}
	return nodes
}

func pathNodes(p simplepath.Path) []mermaidNode {
	nodes := make([]mermaidNode, len(p))
	for i, e := range p {
		if e.IsSpacer() {
			nodes[i] = mermaidNode{label: "gap", spacer: true}
			continue
		}
		nodes[i] = mermaidNode{label: e.String()}
	}
	return nodes
}

// escape keeps labels from closing the surrounding quoted string.
func escape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
