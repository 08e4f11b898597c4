package common

// ExportNode and ExportEdge wrap records in a "data" envelope, the shape
// the frontend graph renderer consumes and the export endpoint emits.
type ExportNode struct {
	Data Node `json:"data"`
}

type ExportEdge struct {
	Data Edge `json:"data"`
}

// Export is the full JSON dump of a graph.
type Export struct {
	Nodes []ExportNode `json:"nodes"`
	Edges []ExportEdge `json:"edges"`
	Meta  Meta         `json:"meta"`
}

// ToExport converts a graph into its export envelope.
func (g *Graph) ToExport() Export {
	out := Export{
		Nodes: make([]ExportNode, 0, len(g.Nodes)),
		Edges: make([]ExportEdge, 0, len(g.Edges)),
		Meta:  g.Meta,
	}
	for _, n := range g.Nodes {
		out.Nodes = append(out.Nodes, ExportNode{Data: n})
	}
	for _, e := range g.Edges {
		out.Edges = append(out.Edges, ExportEdge{Data: e})
	}
	return out
}

// FromExport unwraps an export envelope back into a graph.
func FromExport(e Export) Graph {
	g := Graph{
		Nodes: make([]Node, 0, len(e.Nodes)),
		Edges: make([]Edge, 0, len(e.Edges)),
		Meta:  e.Meta,
	}
	for _, n := range e.Nodes {
		g.Nodes = append(g.Nodes, n.Data)
	}
	for _, ed := range e.Edges {
		g.Edges = append(g.Edges, ed.Data)
	}
	return g
}
