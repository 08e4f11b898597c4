package analytics

import (
	"math"
	"testing"

	"github.com/histomap/backend/pkg/common"
)

func TestDegreeCentrality(t *testing.T) {
	g := &common.Graph{
		Nodes: testNodes("a", "b", "c", "d"),
		Edges: testEdges(
			[2]string{"a", "b"},
			[2]string{"a", "c"},
			[2]string{"b", "c"},
		),
	}

	got := DegreeCentrality(g)

	if got["a"] != 1.0 {
		t.Errorf("degree(a) = %v, want 1.0", got["a"])
	}
	if got["b"] != 1.0 {
		t.Errorf("degree(b) = %v, want 1.0", got["b"])
	}
	if got["d"] != 0 {
		t.Errorf("degree(d) = %v, want 0 for isolated node", got["d"])
	}
}

func TestDegreeCentralityEmptyAndEdgeless(t *testing.T) {
	if got := DegreeCentrality(&common.Graph{}); len(got) != 0 {
		t.Errorf("empty graph produced %d scores, want 0", len(got))
	}

	g := &common.Graph{Nodes: testNodes("a", "b")}
	got := DegreeCentrality(g)
	if got["a"] != 0 || got["b"] != 0 {
		t.Errorf("edgeless graph scores = %v, want all zero", got)
	}
}

func TestPagerankSingleNode(t *testing.T) {
	g := &common.Graph{Nodes: testNodes("solo")}
	got := Pagerank(g)
	if math.Abs(got["solo"]-1.0) > 1e-9 {
		t.Errorf("pagerank(solo) = %v, want 1.0 for N=1", got["solo"])
	}
}

func TestPagerankSink(t *testing.T) {
	// b is a pure sink: it accumulates rank from a, a only keeps the base.
	g := &common.Graph{
		Nodes: testNodes("a", "b"),
		Edges: testEdges([2]string{"a", "b"}),
	}
	got := Pagerank(g)

	if got["b"] <= got["a"] {
		t.Errorf("pagerank sink not favored: a=%v b=%v", got["a"], got["b"])
	}
	for id, r := range got {
		if r < 0 || r > 1 {
			t.Errorf("pagerank(%s) = %v, out of [0,1]", id, r)
		}
	}
}

func TestPagerankMassConserved(t *testing.T) {
	// c has no outgoing edges. Its damped rank stays on c rather than
	// leaking out of the system, so the scores keep summing to 1.
	g := &common.Graph{
		Nodes: testNodes("a", "b", "c"),
		Edges: testEdges(
			[2]string{"a", "b"},
			[2]string{"b", "c"},
		),
	}
	got := Pagerank(g)

	sum := 0.0
	for _, r := range got {
		sum += r
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("pagerank mass = %v, want 1.0", sum)
	}
	if got["c"] <= got["b"] || got["b"] <= got["a"] {
		t.Errorf("pagerank chain ordering wrong: a=%v b=%v c=%v", got["a"], got["b"], got["c"])
	}
}

func TestPagerankDeterministic(t *testing.T) {
	g := &common.Graph{
		Nodes: testNodes("a", "b", "c"),
		Edges: testEdges(
			[2]string{"a", "b"},
			[2]string{"b", "c"},
			[2]string{"c", "a"},
		),
	}
	first := Pagerank(g)
	second := Pagerank(g)
	for id := range first {
		if first[id] != second[id] {
			t.Errorf("pagerank(%s) differs across runs: %v vs %v", id, first[id], second[id])
		}
	}
	// Symmetric ring: ranks must be equal.
	if math.Abs(first["a"]-first["b"]) > 1e-9 || math.Abs(first["b"]-first["c"]) > 1e-9 {
		t.Errorf("ring ranks unequal: %v", first)
	}
}

func TestEigenvectorIsPagerank(t *testing.T) {
	g := &common.Graph{
		Nodes: testNodes("a", "b"),
		Edges: testEdges([2]string{"a", "b"}),
	}
	pr := Pagerank(g)
	ev := Eigenvector(g)
	for id := range pr {
		if pr[id] != ev[id] {
			t.Errorf("eigenvector(%s) = %v, want pagerank value %v", id, ev[id], pr[id])
		}
	}
}

func TestBetweennessPath(t *testing.T) {
	// a -> b -> c: all shortest paths through b.
	g := &common.Graph{
		Nodes: testNodes("a", "b", "c"),
		Edges: testEdges(
			[2]string{"a", "b"},
			[2]string{"b", "c"},
		),
	}
	got := Betweenness(g)

	if got["a"] != 0 || got["c"] != 0 {
		t.Errorf("endpoints scored: a=%v c=%v, want 0", got["a"], got["c"])
	}
	// One of (n-1)(n-2)=2 ordered pairs routes through b.
	if math.Abs(got["b"]-0.5) > 1e-9 {
		t.Errorf("betweenness(b) = %v, want 0.5", got["b"])
	}
}

func TestBetweennessDegenerate(t *testing.T) {
	for _, g := range []*common.Graph{
		{},
		{Nodes: testNodes("a")},
		{Nodes: testNodes("a", "b"), Edges: testEdges([2]string{"a", "b"})},
	} {
		got := Betweenness(g)
		for id, s := range got {
			if s != 0 {
				t.Errorf("betweenness(%s) = %v on degenerate graph, want 0", id, s)
			}
		}
	}
}

func TestCloseness(t *testing.T) {
	g := &common.Graph{
		Nodes: testNodes("a", "b", "c"),
		Edges: testEdges(
			[2]string{"a", "b"},
			[2]string{"b", "c"},
		),
	}
	got := Closeness(g)

	// a reaches b at 1 and c at 2: 1/3.
	if math.Abs(got["a"]-1.0/3.0) > 1e-9 {
		t.Errorf("closeness(a) = %v, want 1/3", got["a"])
	}
	// c reaches nothing.
	if got["c"] != 0 {
		t.Errorf("closeness(c) = %v, want 0", got["c"])
	}
}

func TestClustering(t *testing.T) {
	tests := []struct {
		name  string
		edges []common.Edge
		node  string
		want  float64
	}{
		{
			name: "closed triangle",
			edges: testEdges(
				[2]string{"a", "b"},
				[2]string{"b", "c"},
				[2]string{"c", "a"},
			),
			node: "a",
			want: 1.0,
		},
		{
			name: "open triple",
			edges: testEdges(
				[2]string{"a", "b"},
				[2]string{"a", "c"},
			),
			node: "a",
			want: 0,
		},
		{
			name:  "single neighbor",
			edges: testEdges([2]string{"a", "b"}),
			node:  "a",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &common.Graph{Nodes: testNodes("a", "b", "c"), Edges: tt.edges}
			got := Clustering(g)
			if math.Abs(got[tt.node]-tt.want) > 1e-9 {
				t.Errorf("clustering(%s) = %v, want %v", tt.node, got[tt.node], tt.want)
			}
		})
	}
}

func TestClusteringIgnoresDirection(t *testing.T) {
	// Same triangle, edge directions reversed.
	g := &common.Graph{
		Nodes: testNodes("a", "b", "c"),
		Edges: testEdges(
			[2]string{"b", "a"},
			[2]string{"c", "b"},
			[2]string{"a", "c"},
		),
	}
	got := Clustering(g)
	if got["a"] != 1.0 {
		t.Errorf("clustering(a) = %v, want 1.0 regardless of direction", got["a"])
	}
}

func TestKCore(t *testing.T) {
	tests := []struct {
		degree float64
		want   int
	}{
		{degree: 0, want: 0},
		{degree: 0.15, want: 1},
		{degree: 0.5, want: 5},
		{degree: 1.0, want: 10},
	}
	for _, tt := range tests {
		if got := KCore(tt.degree); got != tt.want {
			t.Errorf("KCore(%v) = %d, want %d", tt.degree, got, tt.want)
		}
	}
}

func TestCentralityRanges(t *testing.T) {
	g := &common.Graph{
		Nodes: testNodes("a", "b", "c", "d", "e"),
		Edges: testEdges(
			[2]string{"a", "b"},
			[2]string{"b", "c"},
			[2]string{"c", "d"},
			[2]string{"d", "a"},
			[2]string{"a", "c"},
		),
	}

	for name, scores := range map[string]map[string]float64{
		"degree":      DegreeCentrality(g),
		"pagerank":    Pagerank(g),
		"betweenness": Betweenness(g),
		"closeness":   Closeness(g),
		"clustering":  Clustering(g),
	} {
		for id, s := range scores {
			if s < 0 || s > 1 {
				t.Errorf("%s(%s) = %v, out of [0,1]", name, id, s)
			}
		}
	}
}
