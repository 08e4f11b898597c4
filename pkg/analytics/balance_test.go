package analytics

import (
	"testing"

	"github.com/histomap/backend/pkg/common"
)

func TestClassifySign(t *testing.T) {
	tests := []struct {
		label string
		want  common.EdgeSign
	}{
		{label: "allied with", want: common.SignPositive},
		{label: "mentor of", want: common.SignPositive},
		{label: "political rival", want: common.SignNegative},
		{label: "Konflikt zbrojny", want: common.SignNegative},
		{label: "przeciwnik polityczny", want: common.SignNegative},
		{label: "ANTI-clerical movement", want: common.SignNegative},
		{label: "", want: common.SignPositive},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ClassifySign(tt.label); got != tt.want {
				t.Errorf("ClassifySign(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestNormalizeEdgesSticky(t *testing.T) {
	edges := []common.Edge{
		{ID: "e1", Source: "a", Target: "b", Label: "conflict", Sign: common.SignPositive, Certainty: common.CertaintyDisputed},
		{ID: "e2", Source: "b", Target: "c", Label: "rivalry"},
	}

	got := NormalizeEdges(edges)

	// Explicit sign survives even though the label says conflict.
	if got[0].Sign != common.SignPositive {
		t.Errorf("existing sign overwritten: %q", got[0].Sign)
	}
	if got[0].Certainty != common.CertaintyDisputed {
		t.Errorf("existing certainty overwritten: %q", got[0].Certainty)
	}
	if got[1].Sign != common.SignNegative {
		t.Errorf("missing sign not classified: %q", got[1].Sign)
	}
	if got[1].Certainty != common.CertaintyConfirmed {
		t.Errorf("missing certainty not defaulted: %q", got[1].Certainty)
	}
	// Input slice untouched.
	if edges[1].Sign != "" {
		t.Errorf("input mutated: %q", edges[1].Sign)
	}
}

func balanceTriangle(signs [3]common.EdgeSign) *common.Graph {
	return &common.Graph{
		Nodes: testNodes("a", "b", "c"),
		Edges: []common.Edge{
			{ID: "e1", Source: "a", Target: "b", Sign: signs[0]},
			{ID: "e2", Source: "b", Target: "c", Sign: signs[1]},
			{ID: "e3", Source: "c", Target: "a", Sign: signs[2]},
		},
	}
}

func TestGlobalBalance(t *testing.T) {
	pos := common.SignPositive
	neg := common.SignNegative

	tests := []struct {
		name  string
		graph *common.Graph
		want  float64
	}{
		{name: "all positive triangle", graph: balanceTriangle([3]common.EdgeSign{pos, pos, pos}), want: 1.0},
		{name: "one negative triangle", graph: balanceTriangle([3]common.EdgeSign{neg, pos, pos}), want: 0.0},
		{name: "two negative triangle", graph: balanceTriangle([3]common.EdgeSign{neg, neg, pos}), want: 1.0},
		{name: "all negative triangle", graph: balanceTriangle([3]common.EdgeSign{neg, neg, neg}), want: 0.0},
		{name: "no triangles", graph: &common.Graph{
			Nodes: testNodes("a", "b"),
			Edges: []common.Edge{{ID: "e1", Source: "a", Target: "b", Sign: pos}},
		}, want: 1.0},
		{name: "empty graph", graph: &common.Graph{}, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlobalBalance(tt.graph, 0); got != tt.want {
				t.Errorf("GlobalBalance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlobalBalanceNodeCap(t *testing.T) {
	// Unbalanced triangle on nodes 3..5, outside a cap of 3.
	g := &common.Graph{
		Nodes: testNodes("n1", "n2", "n3", "n4", "n5", "n6"),
		Edges: []common.Edge{
			{ID: "e1", Source: "n4", Target: "n5", Sign: common.SignNegative},
			{ID: "e2", Source: "n5", Target: "n6", Sign: common.SignPositive},
			{ID: "e3", Source: "n6", Target: "n4", Sign: common.SignPositive},
		},
	}

	if got := GlobalBalance(g, 3); got != 1.0 {
		t.Errorf("capped balance = %v, want 1.0 when triangle is out of scope", got)
	}
	if got := GlobalBalance(g, 6); got != 0.0 {
		t.Errorf("uncapped balance = %v, want 0.0", got)
	}
}
