package common

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	year := 1905
	g := Graph{
		Nodes: []Node{
			{ID: "a", Label: "A", Year: &year, Metrics: &Metrics{Pagerank: 0.5}},
		},
		Edges: []Edge{
			{ID: "e1", Source: "a", Target: "a", Label: "self"},
		},
		Meta: Meta{GlobalBalance: 1.0},
	}

	clone := g.Clone()
	*clone.Nodes[0].Year = 1999
	clone.Nodes[0].Metrics.Pagerank = 0.9
	clone.Nodes[0].Label = "changed"
	clone.Edges[0].Label = "changed"

	if *g.Nodes[0].Year != 1905 {
		t.Errorf("Year mutated through clone: %d", *g.Nodes[0].Year)
	}
	if g.Nodes[0].Metrics.Pagerank != 0.5 {
		t.Errorf("Metrics mutated through clone: %v", g.Nodes[0].Metrics.Pagerank)
	}
	if g.Nodes[0].Label != "A" || g.Edges[0].Label != "self" {
		t.Error("slice contents mutated through clone")
	}
}

func TestExportEnvelopeShape(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a", Label: "A", Type: NodeTypePerson}},
		Edges: []Edge{{ID: "e1", Source: "a", Target: "a", Label: "self", Sign: SignNegative}},
		Meta:  Meta{Modularity: 0.42, GlobalBalance: 0.5},
	}

	raw, err := json.Marshal(g.ToExport())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"nodes":[{"data":`) {
		t.Errorf("nodes not wrapped in data envelope: %s", raw)
	}
	if !strings.Contains(string(raw), `"edges":[{"data":`) {
		t.Errorf("edges not wrapped in data envelope: %s", raw)
	}

	var decoded Export
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	back := FromExport(decoded)
	if len(back.Nodes) != 1 || back.Nodes[0].ID != "a" {
		t.Errorf("nodes did not survive the envelope: %+v", back.Nodes)
	}
	if back.Edges[0].Sign != SignNegative {
		t.Errorf("edge sign did not survive the envelope: %+v", back.Edges[0])
	}
	if back.Meta != g.Meta {
		t.Errorf("meta did not survive the envelope: %+v", back.Meta)
	}
}

func TestExportEmptyGraph(t *testing.T) {
	raw, err := json.Marshal((&Graph{}).ToExport())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"nodes":[]`) {
		t.Errorf("empty graph should export empty arrays, not null: %s", raw)
	}
}
