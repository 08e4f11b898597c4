package common

// NodeType classifies a node in the historical graph.
type NodeType string

const (
	NodeTypePerson       NodeType = "person"
	NodeTypeOrganization NodeType = "organization"
	NodeTypeEvent        NodeType = "event"
	NodeTypeConcept      NodeType = "concept"
	NodeTypePublication  NodeType = "publication"
)

// EdgeSign marks a relationship as friendly or antagonistic. It is the
// input to structural balance analysis.
type EdgeSign string

const (
	SignPositive EdgeSign = "positive"
	SignNegative EdgeSign = "negative"
)

// EdgeCertainty records how well a relationship is sourced.
type EdgeCertainty string

const (
	CertaintyConfirmed EdgeCertainty = "confirmed"
	CertaintyDisputed  EdgeCertainty = "disputed"
	CertaintyAlleged   EdgeCertainty = "alleged"
)

// RegionUnknown is the region value for nodes whose geography is not known.
// Regional analysis skips edges touching such nodes.
const RegionUnknown = "Unknown"

// DefaultImportance is assigned to nodes created without an explicit
// importance weight.
const DefaultImportance = 0.5

// Metrics holds the derived per-node scores computed by the enrichment
// pipeline. A nil Metrics means the node has not been enriched yet; the
// pipeline always recomputes the whole block, never patches single fields.
type Metrics struct {
	DegreeCentrality float64 `json:"degree_centrality"`
	Pagerank         float64 `json:"pagerank"`
	Betweenness      float64 `json:"betweenness"`
	Closeness        float64 `json:"closeness"`
	Eigenvector      float64 `json:"eigenvector"`
	Clustering       float64 `json:"clustering"`
	Community        int     `json:"community"`
	KCore            int     `json:"k_core"`
}

// Node represents a historical entity: a person, organization, event,
// concept, or publication. The ID is unique within a graph and immutable;
// everything else may be edited, after which the graph must be re-enriched.
type Node struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Type        NodeType `json:"type"`
	Region      string   `json:"region,omitempty"`
	Importance  float64  `json:"importance"`
	Year        *int     `json:"year,omitempty"`
	Metrics     *Metrics `json:"metrics,omitempty"`
}

// Edge represents a directed relationship between two nodes. Direction
// matters for centrality; clustering and balance treat edges as undirected.
//
// Sign and Certainty are sticky: once set they survive re-enrichment, only
// missing values receive heuristic defaults.
type Edge struct {
	ID        string        `json:"id"`
	Source    string        `json:"source"`
	Target    string        `json:"target"`
	Label     string        `json:"label"`
	Sign      EdgeSign      `json:"sign,omitempty"`
	Certainty EdgeCertainty `json:"certainty,omitempty"`
}

// Meta carries graph-wide derived metrics.
type Meta struct {
	Modularity    float64 `json:"modularity"`
	GlobalBalance float64 `json:"global_balance"`
}

// Graph is the central value of the system: an attributed set of nodes and
// directed edges plus derived graph-wide metrics. Node order is preserved
// but carries no semantics beyond tie-breaking in reports.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Meta  Meta   `json:"meta"`
}

// NodeIndex returns a map from node id to its position in g.Nodes.
func (g *Graph) NodeIndex() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i := range g.Nodes {
		idx[g.Nodes[i].ID] = i
	}
	return idx
}

// FindNode returns a pointer to the node with the given id, or nil.
func (g *Graph) FindNode(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the graph. Enrichment works on a copy so a
// caller-held Graph value is never mutated in place.
func (g *Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
		Meta:  g.Meta,
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)
	for i := range out.Nodes {
		if g.Nodes[i].Year != nil {
			y := *g.Nodes[i].Year
			out.Nodes[i].Year = &y
		}
		if g.Nodes[i].Metrics != nil {
			m := *g.Nodes[i].Metrics
			out.Nodes[i].Metrics = &m
		}
	}
	return out
}

// DuplicateCandidate is a pair of nodes suspected to describe the same
// entity. Transient analysis output, never persisted.
type DuplicateCandidate struct {
	NodeA      string  `json:"node_a"`
	NodeB      string  `json:"node_b"`
	Similarity float64 `json:"similarity"`
	Reason     string  `json:"reason"`
}

// BridgeNode scores a node by how strongly it connects distinct regions.
type BridgeNode struct {
	NodeID string  `json:"node_id"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
}

// RegionalAnalysis summarizes cross-region connectivity. Transient.
type RegionalAnalysis struct {
	IsolationIndex float64      `json:"isolation_index"`
	Bridges        []BridgeNode `json:"bridges"`
	DominantRegion string       `json:"dominant_region"`
}
