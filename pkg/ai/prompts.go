package ai

import (
	"fmt"
	"strings"

	"github.com/histomap/backend/pkg/common"
)

// ExpandPrompt asks the model to propose new entities and relationships
// around a user query, given a summary of the current graph. %s slots:
// graph summary, user query.
const ExpandPrompt = `You are a historian's research assistant maintaining a graph of historical entities and relationships.

Current graph:
%s

The user wants to expand the graph around this topic:
%s

Propose new nodes and edges that belong in this graph. Rules:
- Only propose entities and relationships that are historically attested.
- Node types: person, organization, event, concept, publication.
- Give each node a region (or "Unknown") and a year where one applies.
- Edge labels describe the relationship ("member of", "rival of", "founded", ...).
- Edges may reference existing nodes by their label or new nodes you propose.
- Do not repeat nodes already in the graph.
- Do not invent metrics, scores, or ids.`

// ChatSystemPrompt frames the chat collaborator for Q&A over the graph.
// %s slot: graph summary.
const ChatSystemPrompt = `You are a historian's assistant answering questions about a graph of historical entities and relationships. Ground every answer in the graph content below; say so when the graph does not cover a question.

Current graph:
%s`

const summaryMaxNodes = 120

// GraphSummary renders a compact plain-text description of the graph for
// prompt context: nodes with type/region/year, then edge triples. Bounded
// so large graphs do not blow the context window.
func GraphSummary(g *common.Graph) string {
	var b strings.Builder

	b.WriteString("Nodes:\n")
	n := len(g.Nodes)
	if n > summaryMaxNodes {
		n = summaryMaxNodes
	}
	for i := 0; i < n; i++ {
		node := &g.Nodes[i]
		fmt.Fprintf(&b, "- %s (%s", node.Label, node.Type)
		if node.Region != "" && node.Region != common.RegionUnknown {
			fmt.Fprintf(&b, ", %s", node.Region)
		}
		if node.Year != nil {
			fmt.Fprintf(&b, ", %d", *node.Year)
		}
		b.WriteString(")\n")
	}
	if len(g.Nodes) > n {
		fmt.Fprintf(&b, "... and %d more nodes\n", len(g.Nodes)-n)
	}

	labels := make(map[string]string, len(g.Nodes))
	for i := range g.Nodes {
		labels[g.Nodes[i].ID] = g.Nodes[i].Label
	}

	b.WriteString("Edges:\n")
	for _, e := range g.Edges {
		src, okS := labels[e.Source]
		tgt, okT := labels[e.Target]
		if !okS || !okT {
			continue
		}
		fmt.Fprintf(&b, "- %s -> %s (%s)\n", src, tgt, e.Label)
	}

	return b.String()
}
