// Package analytics implements the structural metrics computed over a
// historical graph: centrality scores, community labeling, triadic balance
// and regional connectivity. Every function here is a pure, deterministic
// transformation of its input and tolerates empty graphs, isolated nodes
// and edges referencing unknown node ids.
package analytics

import (
	"github.com/histomap/backend/pkg/common"
)

// UndirectedAdjacency builds the undirected neighbor map for the given
// node and edge sets. Every node id appears as a key, isolated nodes map
// to an empty set. Edges with an endpoint outside the node set are
// skipped.
func UndirectedAdjacency(nodes []common.Node, edges []common.Edge) map[string]map[string]bool {
	adj := make(map[string]map[string]bool, len(nodes))
	for i := range nodes {
		adj[nodes[i].ID] = make(map[string]bool)
	}

	for _, e := range edges {
		if _, ok := adj[e.Source]; !ok {
			continue
		}
		if _, ok := adj[e.Target]; !ok {
			continue
		}
		if e.Source == e.Target {
			continue
		}
		adj[e.Source][e.Target] = true
		adj[e.Target][e.Source] = true
	}

	return adj
}

// OutNeighbors builds the directed successor lists, skipping edges with a
// missing endpoint. Every node id is present as a key.
func OutNeighbors(nodes []common.Node, edges []common.Edge) map[string][]string {
	known := make(map[string]bool, len(nodes))
	out := make(map[string][]string, len(nodes))
	for i := range nodes {
		known[nodes[i].ID] = true
		out[nodes[i].ID] = nil
	}

	for _, e := range edges {
		if !known[e.Source] || !known[e.Target] {
			continue
		}
		out[e.Source] = append(out[e.Source], e.Target)
	}

	return out
}

// OutDegree counts edges leaving the node in the directed edge list.
func OutDegree(nodeID string, edges []common.Edge) int {
	count := 0
	for _, e := range edges {
		if e.Source == nodeID {
			count++
		}
	}
	return count
}

// InDegree counts edges entering the node in the directed edge list.
func InDegree(nodeID string, edges []common.Edge) int {
	count := 0
	for _, e := range edges {
		if e.Target == nodeID {
			count++
		}
	}
	return count
}
