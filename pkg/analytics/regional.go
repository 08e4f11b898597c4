package analytics

import (
	"sort"

	"github.com/histomap/backend/pkg/common"
)

const maxBridges = 5

// AnalyzeRegions computes the isolation index, the top bridge nodes and
// the dominant region of a graph.
//
// The isolation index is the fraction of valid edges (both endpoints with
// a known region) connecting same-region nodes; 0 when no edge is valid.
// A node's bridge score is its count of cross-region edges weighted by its
// importance. The dominant region is the modal known region, ties broken
// by first occurrence in node order.
func AnalyzeRegions(g *common.Graph) common.RegionalAnalysis {
	regions := make(map[string]string, len(g.Nodes))
	for i := range g.Nodes {
		regions[g.Nodes[i].ID] = g.Nodes[i].Region
	}

	known := func(r string) bool {
		return r != "" && r != common.RegionUnknown
	}

	sameRegion := 0
	valid := 0
	crossDegree := make(map[string]int, len(g.Nodes))
	for _, e := range g.Edges {
		rs, okS := regions[e.Source]
		rt, okT := regions[e.Target]
		if !okS || !okT || !known(rs) || !known(rt) {
			continue
		}
		valid++
		if rs == rt {
			sameRegion++
		} else {
			crossDegree[e.Source]++
			crossDegree[e.Target]++
		}
	}

	isolation := 0.0
	if valid > 0 {
		isolation = float64(sameRegion) / float64(valid)
	}

	bridges := make([]common.BridgeNode, 0)
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if !known(n.Region) {
			continue
		}
		score := float64(crossDegree[n.ID]) * n.Importance
		if score <= 0 {
			continue
		}
		bridges = append(bridges, common.BridgeNode{
			NodeID: n.ID,
			Label:  n.Label,
			Score:  score,
		})
	}
	// Stable sort keeps node order as the tie-break.
	sort.SliceStable(bridges, func(i, j int) bool {
		return bridges[i].Score > bridges[j].Score
	})
	if len(bridges) > maxBridges {
		bridges = bridges[:maxBridges]
	}

	return common.RegionalAnalysis{
		IsolationIndex: isolation,
		Bridges:        bridges,
		DominantRegion: dominantRegion(g.Nodes),
	}
}

func dominantRegion(nodes []common.Node) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range nodes {
		r := nodes[i].Region
		if r == "" || r == common.RegionUnknown {
			continue
		}
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
	}

	best := common.RegionUnknown
	bestCount := 0
	for _, r := range order {
		if counts[r] > bestCount {
			best = r
			bestCount = counts[r]
		}
	}
	return best
}
