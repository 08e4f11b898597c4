// Package enrich composes the analytics suite into the single pipeline
// that turns a raw node/edge set into a fully annotated graph. Enrich is
// the only path from "raw" to "annotated": callers re-run it after every
// structural mutation instead of patching annotations incrementally.
package enrich

import (
	"github.com/histomap/backend/pkg/analytics"
	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/logger"
)

// Config tunes the pipeline.
type Config struct {
	// BalanceNodeCap bounds the cubic triangle scan; <= 0 uses the
	// analytics default.
	BalanceNodeCap int
}

// Enrich annotates the graph: centrality suite, community labels, edge
// sign/certainty normalization, triadic balance and graph-wide meta. It is
// a total function: empty graphs, isolated nodes and dangling edges all
// degrade to defined values. The input graph is never mutated.
func Enrich(g common.Graph, cfg Config) common.Graph {
	out := g.Clone()
	out.Edges = dropDanglingEdges(out.Nodes, out.Edges)

	logger.Debug("[Enrich] Starting", "nodes", len(out.Nodes), "edges", len(out.Edges))

	degree := analytics.DegreeCentrality(&out)
	pagerank := analytics.Pagerank(&out)
	betweenness := analytics.Betweenness(&out)
	closeness := analytics.Closeness(&out)
	clustering := analytics.Clustering(&out)
	communities := analytics.Communities(&out)

	out.Edges = analytics.NormalizeEdges(out.Edges)

	for i := range out.Nodes {
		id := out.Nodes[i].ID
		out.Nodes[i].Metrics = &common.Metrics{
			DegreeCentrality: degree[id],
			Pagerank:         pagerank[id],
			Betweenness:      betweenness[id],
			Closeness:        closeness[id],
			Eigenvector:      pagerank[id],
			Clustering:       clustering[id],
			Community:        communities[id],
			KCore:            analytics.KCore(degree[id]),
		}
	}

	out.Meta = common.Meta{
		Modularity:    analytics.ModularityEstimate(communities),
		GlobalBalance: analytics.GlobalBalance(&out, cfg.BalanceNodeCap),
	}

	logger.Debug("[Enrich] Completed",
		"communities", countDistinct(communities),
		"balance", out.Meta.GlobalBalance,
	)

	return out
}

// dropDanglingEdges removes edges whose source or target is not in the
// node set. Malformed references are skipped silently, never fatal.
func dropDanglingEdges(nodes []common.Node, edges []common.Edge) []common.Edge {
	known := make(map[string]bool, len(nodes))
	for i := range nodes {
		known[nodes[i].ID] = true
	}

	out := make([]common.Edge, 0, len(edges))
	dropped := 0
	for _, e := range edges {
		if !known[e.Source] || !known[e.Target] {
			dropped++
			continue
		}
		out = append(out, e)
	}
	if dropped > 0 {
		logger.Warn("[Enrich] Dropped dangling edges", "count", dropped)
	}
	return out
}

func countDistinct(labels map[string]int) int {
	seen := make(map[int]bool, len(labels))
	for _, c := range labels {
		seen[c] = true
	}
	return len(seen)
}
