package analytics

import (
	"reflect"
	"testing"

	"github.com/histomap/backend/pkg/common"
)

func testNodes(ids ...string) []common.Node {
	nodes := make([]common.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, common.Node{ID: id, Label: id, Type: common.NodeTypePerson, Importance: common.DefaultImportance})
	}
	return nodes
}

func testEdges(pairs ...[2]string) []common.Edge {
	edges := make([]common.Edge, 0, len(pairs))
	for i, p := range pairs {
		edges = append(edges, common.Edge{ID: string(rune('a' + i)), Source: p[0], Target: p[1]})
	}
	return edges
}

func TestUndirectedAdjacency(t *testing.T) {
	tests := []struct {
		name  string
		nodes []common.Node
		edges []common.Edge
		want  map[string]map[string]bool
	}{
		{
			name:  "empty graph",
			nodes: nil,
			edges: nil,
			want:  map[string]map[string]bool{},
		},
		{
			name:  "isolated node keeps empty set",
			nodes: testNodes("a"),
			edges: nil,
			want:  map[string]map[string]bool{"a": {}},
		},
		{
			name:  "edge appears in both directions",
			nodes: testNodes("a", "b"),
			edges: testEdges([2]string{"a", "b"}),
			want: map[string]map[string]bool{
				"a": {"b": true},
				"b": {"a": true},
			},
		},
		{
			name:  "dangling edge skipped",
			nodes: testNodes("a", "b"),
			edges: testEdges([2]string{"a", "ghost"}),
			want: map[string]map[string]bool{
				"a": {},
				"b": {},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UndirectedAdjacency(tt.nodes, tt.edges)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UndirectedAdjacency() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDegrees(t *testing.T) {
	edges := testEdges(
		[2]string{"a", "b"},
		[2]string{"a", "c"},
		[2]string{"c", "a"},
	)

	if got := OutDegree("a", edges); got != 2 {
		t.Errorf("OutDegree(a) = %d, want 2", got)
	}
	if got := InDegree("a", edges); got != 1 {
		t.Errorf("InDegree(a) = %d, want 1", got)
	}
	if got := OutDegree("b", edges); got != 0 {
		t.Errorf("OutDegree(b) = %d, want 0", got)
	}
}
