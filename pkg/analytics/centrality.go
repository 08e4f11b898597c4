package analytics

import (
	"math"

	"github.com/histomap/backend/pkg/common"
)

const (
	pagerankDamping    = 0.85
	pagerankIterations = 20
)

// DegreeCentrality scores every node by its raw incident edge count (both
// directions), normalized by the maximum degree observed. An edgeless
// graph scores every node 0.
func DegreeCentrality(g *common.Graph) map[string]float64 {
	scores := make(map[string]float64, len(g.Nodes))
	known := make(map[string]bool, len(g.Nodes))
	for i := range g.Nodes {
		scores[g.Nodes[i].ID] = 0
		known[g.Nodes[i].ID] = true
	}

	for _, e := range g.Edges {
		if !known[e.Source] || !known[e.Target] {
			continue
		}
		scores[e.Source]++
		scores[e.Target]++
	}

	maxDegree := 0.0
	for _, d := range scores {
		if d > maxDegree {
			maxDegree = d
		}
	}
	if maxDegree == 0 {
		maxDegree = 1
	}
	for id := range scores {
		scores[id] /= maxDegree
	}

	return scores
}

// Pagerank runs a fixed number of power iterations with damping 0.85 and
// uniform 1/N initial rank. Nodes with no outgoing edges keep their rank
// to themselves (damped mass stays on the node instead of being spread),
// so a single isolated node holds rank 1.0. Output is deterministic for a
// fixed input.
func Pagerank(g *common.Graph) map[string]float64 {
	n := len(g.Nodes)
	if n == 0 {
		return map[string]float64{}
	}

	out := OutNeighbors(g.Nodes, g.Edges)

	ranks := make(map[string]float64, n)
	for i := range g.Nodes {
		ranks[g.Nodes[i].ID] = 1.0 / float64(n)
	}

	base := (1 - pagerankDamping) / float64(n)
	for iter := 0; iter < pagerankIterations; iter++ {
		next := make(map[string]float64, n)
		for id := range ranks {
			next[id] = base
		}
		for id, succ := range out {
			if len(succ) == 0 {
				next[id] += pagerankDamping * ranks[id]
				continue
			}
			share := pagerankDamping * ranks[id] / float64(len(succ))
			for _, t := range succ {
				next[t] += share
			}
		}
		ranks = next
	}

	return ranks
}

// Eigenvector returns the PageRank scores. The system deliberately uses
// PageRank as its eigenvector-centrality stand-in so the two stay
// consistent and reproducible; do not swap in a true decomposition.
func Eigenvector(g *common.Graph) map[string]float64 {
	return Pagerank(g)
}

// Betweenness computes shortest-path betweenness over the directed graph
// using Brandes' accumulation, normalized by (N-1)(N-2) so scores land in
// [0,1]. Graphs with fewer than three nodes score everything 0.
func Betweenness(g *common.Graph) map[string]float64 {
	n := len(g.Nodes)
	scores := make(map[string]float64, n)
	for i := range g.Nodes {
		scores[g.Nodes[i].ID] = 0
	}
	if n < 3 {
		return scores
	}

	out := OutNeighbors(g.Nodes, g.Edges)

	for i := range g.Nodes {
		s := g.Nodes[i].ID

		// Single-source shortest path counts via BFS.
		stack := make([]string, 0, n)
		preds := make(map[string][]string, n)
		sigma := map[string]float64{s: 1}
		dist := map[string]int{s: 0}

		queue := []string{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range out[v] {
				if _, seen := dist[w]; !seen {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		// Dependency accumulation in reverse BFS order.
		delta := make(map[string]float64, len(stack))
		for j := len(stack) - 1; j >= 0; j-- {
			w := stack[j]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	norm := float64(n-1) * float64(n-2)
	for id := range scores {
		scores[id] /= norm
	}

	return scores
}

// Closeness scores each node as the inverse of the sum of shortest-path
// distances to every node it can reach in the directed graph. Nodes that
// reach nothing score 0.
func Closeness(g *common.Graph) map[string]float64 {
	scores := make(map[string]float64, len(g.Nodes))
	out := OutNeighbors(g.Nodes, g.Edges)

	for i := range g.Nodes {
		s := g.Nodes[i].ID

		dist := map[string]int{s: 0}
		queue := []string{s}
		sum := 0
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range out[v] {
				if _, seen := dist[w]; seen {
					continue
				}
				dist[w] = dist[v] + 1
				sum += dist[w]
				queue = append(queue, w)
			}
		}

		if sum == 0 {
			scores[s] = 0
		} else {
			scores[s] = 1.0 / float64(sum)
		}
	}

	return scores
}

// Clustering computes the local clustering coefficient over the undirected
// view: the fraction of a node's neighbor pairs that are themselves
// connected. Nodes with fewer than two neighbors score 0.
func Clustering(g *common.Graph) map[string]float64 {
	adj := UndirectedAdjacency(g.Nodes, g.Edges)
	scores := make(map[string]float64, len(g.Nodes))

	for i := range g.Nodes {
		id := g.Nodes[i].ID
		neighbors := make([]string, 0, len(adj[id]))
		for nb := range adj[id] {
			neighbors = append(neighbors, nb)
		}

		k := len(neighbors)
		if k < 2 {
			scores[id] = 0
			continue
		}

		links := 0
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if adj[neighbors[a]][neighbors[b]] {
					links++
				}
			}
		}

		scores[id] = 2.0 * float64(links) / (float64(k) * float64(k-1))
	}

	return scores
}

// KCore derives the cheap k-core proxy from a degree centrality score:
// floor(degree*10). The formula is part of the stored-score contract (the
// UI bins on it), so it stays a proxy rather than a real decomposition.
func KCore(degreeCentrality float64) int {
	return int(math.Floor(degreeCentrality * 10))
}
