package analytics

import (
	"strings"

	"github.com/histomap/backend/pkg/common"
)

// DefaultBalanceNodeCap bounds the node set evaluated by the cubic
// triangle scan. Graphs beyond the cap have their first N nodes (in graph
// order) analyzed; the rest are ignored by balance only.
const DefaultBalanceNodeCap = 300

// negativeKeywords mark a relationship label as antagonistic. The set is
// multilingual because source material mixes English and Polish labels.
var negativeKeywords = []string{
	"conflict",
	"rival",
	"anti",
	"enemy",
	"enmity",
	"opposition",
	"opposed",
	"war",
	"konflikt",
	"rywal",
	"przeciw",
	"wróg",
	"wrogość",
	"opozycja",
	"wojna",
}

// ClassifySign derives an edge sign from its label: negative if the label
// contains any conflict keyword (case-insensitive), positive otherwise.
func ClassifySign(label string) common.EdgeSign {
	lower := strings.ToLower(label)
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return common.SignNegative
		}
	}
	return common.SignPositive
}

// NormalizeEdges fills in missing signs from the label heuristic and
// missing certainty with "confirmed". Existing values are sticky and never
// overwritten. Returns a new slice, the input is untouched.
func NormalizeEdges(edges []common.Edge) []common.Edge {
	out := make([]common.Edge, len(edges))
	copy(out, edges)
	for i := range out {
		if out[i].Sign == "" {
			out[i].Sign = ClassifySign(out[i].Label)
		}
		if out[i].Certainty == "" {
			out[i].Certainty = common.CertaintyConfirmed
		}
	}
	return out
}

// GlobalBalance evaluates every fully-connected node triple within the
// first nodeCap nodes and returns the fraction of balanced triangles. A
// triangle is balanced iff the product of its three signs is positive.
// Graphs with no triangles report 1.0 (nothing is unbalanced). A nodeCap
// <= 0 falls back to DefaultBalanceNodeCap.
func GlobalBalance(g *common.Graph, nodeCap int) float64 {
	if nodeCap <= 0 {
		nodeCap = DefaultBalanceNodeCap
	}

	n := len(g.Nodes)
	if n > nodeCap {
		n = nodeCap
	}

	ids := make([]string, n)
	inScope := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		ids[i] = g.Nodes[i].ID
		inScope[g.Nodes[i].ID] = true
	}

	// Symmetric sign matrix over node pairs with an edge: +1 / -1.
	signs := make(map[[2]string]int)
	pairKey := func(a, b string) [2]string {
		if a < b {
			return [2]string{a, b}
		}
		return [2]string{b, a}
	}
	for _, e := range g.Edges {
		if !inScope[e.Source] || !inScope[e.Target] || e.Source == e.Target {
			continue
		}
		s := 1
		if e.Sign == common.SignNegative {
			s = -1
		}
		signs[pairKey(e.Source, e.Target)] = s
	}

	balanced := 0
	total := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sij, ok := signs[pairKey(ids[i], ids[j])]
			if !ok {
				continue
			}
			for k := j + 1; k < n; k++ {
				sjk, ok := signs[pairKey(ids[j], ids[k])]
				if !ok {
					continue
				}
				sik, ok := signs[pairKey(ids[i], ids[k])]
				if !ok {
					continue
				}
				total++
				if sij*sjk*sik > 0 {
					balanced++
				}
			}
		}
	}

	if total == 0 {
		return 1.0
	}
	return float64(balanced) / float64(total)
}
