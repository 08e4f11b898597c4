package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/histomap/backend/internal/util"
	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/logger"
)

// ExpansionResult carries the records an expansion proposed. Nodes and
// edges are partial (no derived metrics, fresh ids); the caller merges
// them into the graph and re-enriches.
type ExpansionResult struct {
	NewNodes []common.Node `json:"new_nodes"`
	NewEdges []common.Edge `json:"new_edges"`
}

type expansionNode struct {
	Label       string `json:"label" jsonschema_description:"Name of the entity"`
	Type        string `json:"type" jsonschema:"enum=person,enum=organization,enum=event,enum=concept,enum=publication"`
	Description string `json:"description"`
	Region      string `json:"region" jsonschema_description:"Region of the entity, or Unknown"`
	Year        *int   `json:"year,omitempty"`
}

type expansionEdge struct {
	Source string `json:"source" jsonschema_description:"Label of the source entity"`
	Target string `json:"target" jsonschema_description:"Label of the target entity"`
	Label  string `json:"label" jsonschema_description:"Relationship description"`
}

type expansionResponse struct {
	NewNodes []expansionNode `json:"new_nodes"`
	NewEdges []expansionEdge `json:"new_edges"`
}

// ExpandGraph asks the expansion collaborator to propose nodes and edges
// around the query, resolves the proposals against the current graph and
// returns them with fresh ids. All failures surface as ErrExpansion; the
// collaborator is never retried here (callers own retry policy).
func ExpandGraph(
	ctx context.Context,
	client GraphAIClient,
	g *common.Graph,
	query string,
) (*ExpansionResult, error) {
	prompt := fmt.Sprintf(ExpandPrompt, GraphSummary(g), query)

	var res expansionResponse
	err := client.GenerateCompletionWithFormat(
		ctx,
		"graph_expansion",
		"New nodes and edges to add to the historical graph",
		prompt,
		&res,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpansion, err)
	}

	return resolveExpansion(g, &res)
}

// resolveExpansion turns the label-keyed model output into id-keyed graph
// records: known labels map to existing node ids, new labels get nanoid
// ids, unresolvable or self-referencing edges are dropped.
func resolveExpansion(g *common.Graph, res *expansionResponse) (*ExpansionResult, error) {
	labelToID := make(map[string]string, len(g.Nodes))
	for i := range g.Nodes {
		labelToID[strings.ToLower(g.Nodes[i].Label)] = g.Nodes[i].ID
	}

	out := &ExpansionResult{
		NewNodes: make([]common.Node, 0, len(res.NewNodes)),
		NewEdges: make([]common.Edge, 0, len(res.NewEdges)),
	}

	for _, n := range res.NewNodes {
		label := strings.TrimSpace(n.Label)
		if label == "" {
			continue
		}
		if _, exists := labelToID[strings.ToLower(label)]; exists {
			logger.Debug("[Expand] Skipping duplicate proposal", "label", label)
			continue
		}

		id, err := util.NewID("node")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExpansion, err)
		}

		region := strings.TrimSpace(n.Region)
		if region == "" {
			region = common.RegionUnknown
		}

		node := common.Node{
			ID:          id,
			Label:       label,
			Description: strings.TrimSpace(n.Description),
			Type:        parseNodeType(n.Type),
			Region:      region,
			Importance:  common.DefaultImportance,
			Year:        n.Year,
		}
		labelToID[strings.ToLower(label)] = id
		out.NewNodes = append(out.NewNodes, node)
	}

	for _, e := range res.NewEdges {
		srcID, okS := labelToID[strings.ToLower(strings.TrimSpace(e.Source))]
		tgtID, okT := labelToID[strings.ToLower(strings.TrimSpace(e.Target))]
		if !okS || !okT || srcID == tgtID {
			logger.Debug("[Expand] Dropping unresolvable edge", "source", e.Source, "target", e.Target)
			continue
		}

		id, err := util.NewID("edge")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExpansion, err)
		}

		out.NewEdges = append(out.NewEdges, common.Edge{
			ID:     id,
			Source: srcID,
			Target: tgtID,
			Label:  strings.TrimSpace(e.Label),
		})
	}

	logger.Info("[Expand] Expansion resolved",
		"proposed_nodes", len(res.NewNodes),
		"accepted_nodes", len(out.NewNodes),
		"proposed_edges", len(res.NewEdges),
		"accepted_edges", len(out.NewEdges),
	)

	return out, nil
}

func parseNodeType(s string) common.NodeType {
	switch common.NodeType(strings.ToLower(strings.TrimSpace(s))) {
	case common.NodeTypePerson:
		return common.NodeTypePerson
	case common.NodeTypeOrganization:
		return common.NodeTypeOrganization
	case common.NodeTypeEvent:
		return common.NodeTypeEvent
	case common.NodeTypePublication:
		return common.NodeTypePublication
	default:
		return common.NodeTypeConcept
	}
}
