package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/histomap/backend/pkg/common"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateCompletion(_ context.Context, _ string, _ ...GenerateOption) (string, error) {
	return "", nil
}

func (f *fakeClient) GenerateCompletionWithFormat(_ context.Context, _, _, prompt string, out any, _ ...GenerateOption) error {
	f.prompt = prompt
	if f.err != nil {
		return f.err
	}
	return UnmarshalFlexible(f.response, out)
}

func (f *fakeClient) GenerateChat(_ context.Context, _ []ChatMessage, _ ...GenerateOption) (string, error) {
	return "", nil
}

func (f *fakeClient) GenerateEmbedding(_ context.Context, _ []byte) ([]float32, error) {
	return nil, nil
}

func (f *fakeClient) GetMetrics() ModelMetrics { return ModelMetrics{} }
func (f *fakeClient) ResetMetrics()            {}

func expandTestGraph() *common.Graph {
	return &common.Graph{
		Nodes: []common.Node{
			{ID: "node-1", Label: "Roman Dmowski", Type: common.NodeTypePerson},
			{ID: "node-2", Label: "National Democracy", Type: common.NodeTypeOrganization},
		},
		Edges: []common.Edge{
			{ID: "edge-1", Source: "node-1", Target: "node-2", Label: "led"},
		},
	}
}

func TestExpandGraphResolvesLabels(t *testing.T) {
	client := &fakeClient{
		response: `{
			"new_nodes": [
				{"label": "Przegląd Wszechpolski", "type": "publication", "description": "Political journal", "region": "Europe"},
				{"label": "Roman Dmowski", "type": "person", "description": "Already present"}
			],
			"new_edges": [
				{"source": "Roman Dmowski", "target": "Przegląd Wszechpolski", "label": "edited"},
				{"source": "Nobody Known", "target": "Przegląd Wszechpolski", "label": "dangling"},
				{"source": "przegląd wszechpolski", "target": "Przegląd Wszechpolski", "label": "self"}
			]
		}`,
	}

	g := expandTestGraph()
	res, err := ExpandGraph(context.Background(), client, g, "press circle")
	if err != nil {
		t.Fatalf("ExpandGraph returned error: %v", err)
	}

	if len(res.NewNodes) != 1 {
		t.Fatalf("got %d new nodes, want 1 (existing label must be skipped)", len(res.NewNodes))
	}
	node := res.NewNodes[0]
	if node.Label != "Przegląd Wszechpolski" {
		t.Errorf("unexpected label %q", node.Label)
	}
	if node.Type != common.NodeTypePublication {
		t.Errorf("Type = %q, want publication", node.Type)
	}
	if node.Importance != common.DefaultImportance {
		t.Errorf("Importance = %v, want default", node.Importance)
	}
	if !strings.HasPrefix(node.ID, "node-") {
		t.Errorf("node id %q missing prefix", node.ID)
	}

	if len(res.NewEdges) != 1 {
		t.Fatalf("got %d new edges, want 1 (dangling and self edges must be dropped)", len(res.NewEdges))
	}
	edge := res.NewEdges[0]
	if edge.Source != "node-1" {
		t.Errorf("edge source = %q, want resolved id node-1", edge.Source)
	}
	if edge.Target != node.ID {
		t.Errorf("edge target = %q, want new node id %q", edge.Target, node.ID)
	}

	if !strings.Contains(client.prompt, "Roman Dmowski") {
		t.Error("prompt does not contain the graph summary")
	}
	if !strings.Contains(client.prompt, "press circle") {
		t.Error("prompt does not contain the query")
	}
}

func TestExpandGraphDefaultsRegion(t *testing.T) {
	client := &fakeClient{
		response: `{"new_nodes": [{"label": "Liga Narodowa", "type": "organization", "description": ""}], "new_edges": []}`,
	}

	res, err := ExpandGraph(context.Background(), client, expandTestGraph(), "query")
	if err != nil {
		t.Fatalf("ExpandGraph returned error: %v", err)
	}
	if len(res.NewNodes) != 1 {
		t.Fatalf("got %d new nodes, want 1", len(res.NewNodes))
	}
	if res.NewNodes[0].Region != common.RegionUnknown {
		t.Errorf("Region = %q, want %q", res.NewNodes[0].Region, common.RegionUnknown)
	}
}

func TestExpandGraphWrapsFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("model unavailable")}

	_, err := ExpandGraph(context.Background(), client, expandTestGraph(), "query")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrExpansion) {
		t.Errorf("error %v does not wrap ErrExpansion", err)
	}
}

func TestParseNodeType(t *testing.T) {
	tests := []struct {
		in   string
		want common.NodeType
	}{
		{"person", common.NodeTypePerson},
		{" Organization ", common.NodeTypeOrganization},
		{"EVENT", common.NodeTypeEvent},
		{"publication", common.NodeTypePublication},
		{"concept", common.NodeTypeConcept},
		{"castle", common.NodeTypeConcept},
		{"", common.NodeTypeConcept},
	}

	for _, tt := range tests {
		if got := parseNodeType(tt.in); got != tt.want {
			t.Errorf("parseNodeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
