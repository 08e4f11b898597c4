package dedupe

import (
	"fmt"

	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/logger"
)

// ResolveMerge merges two nodes accepted as duplicates and returns the
// merged raw graph plus the id of the surviving node. The node with the
// longer description survives; a tie keeps the first operand. Every edge
// referencing the dropped node is reassigned to the kept one, self-loops
// created by the reassignment are removed, and the dropped node leaves
// the node set. The caller must re-enrich the result.
func ResolveMerge(g common.Graph, aID, bID string) (common.Graph, string, error) {
	if aID == bID {
		return common.Graph{}, "", fmt.Errorf("cannot merge node %q into itself", aID)
	}

	a := g.FindNode(aID)
	b := g.FindNode(bID)
	if a == nil {
		return common.Graph{}, "", fmt.Errorf("merge: node %q not found", aID)
	}
	if b == nil {
		return common.Graph{}, "", fmt.Errorf("merge: node %q not found", bID)
	}

	keep, drop := a, b
	if len(b.Description) > len(a.Description) {
		keep, drop = b, a
	}

	out := g.Clone()

	nodes := make([]common.Node, 0, len(out.Nodes)-1)
	for _, n := range out.Nodes {
		if n.ID == drop.ID {
			continue
		}
		nodes = append(nodes, n)
	}
	out.Nodes = nodes

	edges := make([]common.Edge, 0, len(out.Edges))
	removed := 0
	for _, e := range out.Edges {
		if e.Source == drop.ID {
			e.Source = keep.ID
		}
		if e.Target == drop.ID {
			e.Target = keep.ID
		}
		if e.Source == e.Target {
			removed++
			continue
		}
		edges = append(edges, e)
	}
	out.Edges = edges

	logger.Info("[Dedupe] Merged nodes",
		"kept", keep.ID,
		"dropped", drop.ID,
		"self_loops_removed", removed,
	)

	return out, keep.ID, nil
}
