package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/histomap/backend/internal/util"
	"github.com/histomap/backend/pkg/ai"
	"github.com/histomap/backend/pkg/enrich"
	"github.com/histomap/backend/pkg/logger"
	"github.com/histomap/backend/pkg/store"
)

// ProcessEnrichMessage recomputes every derived metric for the snapshot
// named in the message and saves the annotated graph back.
func ProcessEnrichMessage(
	ctx context.Context,
	snapshots store.SnapshotStorage,
	msg string,
) error {
	data := new(EnrichJobMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}
	if data.GraphID == "" {
		return fmt.Errorf("enrich job without graph_id")
	}

	g, err := snapshots.LoadGraph(ctx, data.GraphID)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", data.GraphID, err)
	}

	enriched := enrich.Enrich(g, enrich.Config{
		BalanceNodeCap: int(util.GetEnvNumeric("ENRICH_BALANCE_NODE_CAP", 0)),
	})

	if err := snapshots.SaveGraph(ctx, data.GraphID, enriched); err != nil {
		return fmt.Errorf("save graph %s: %w", data.GraphID, err)
	}

	logger.Info("[Queue] Enriched graph",
		"graph_id", data.GraphID,
		"nodes", len(enriched.Nodes),
		"edges", len(enriched.Edges))
	return nil
}

// ProcessExpandMessage runs an AI expansion query against the snapshot
// named in the message, merges the accepted proposals into the graph,
// re-enriches, and saves the result.
func ProcessExpandMessage(
	ctx context.Context,
	snapshots store.SnapshotStorage,
	aiClient ai.GraphAIClient,
	msg string,
) error {
	data := new(ExpandJobMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}
	if data.GraphID == "" {
		return fmt.Errorf("expand job without graph_id")
	}

	g, err := snapshots.LoadGraph(ctx, data.GraphID)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", data.GraphID, err)
	}

	maxTries := int(util.GetEnvNumeric("AI_MAX_TRIES", 2))
	result, err := util.RetryWithContext(ctx, maxTries, func(ctx context.Context) (*ai.ExpansionResult, error) {
		return ai.ExpandGraph(ctx, aiClient, &g, data.Query)
	})
	if err != nil {
		return fmt.Errorf("expand graph %s: %w", data.GraphID, err)
	}

	g.Nodes = append(g.Nodes, result.NewNodes...)
	g.Edges = append(g.Edges, result.NewEdges...)

	enriched := enrich.Enrich(g, enrich.Config{
		BalanceNodeCap: int(util.GetEnvNumeric("ENRICH_BALANCE_NODE_CAP", 0)),
	})

	if err := snapshots.SaveGraph(ctx, data.GraphID, enriched); err != nil {
		return fmt.Errorf("save graph %s: %w", data.GraphID, err)
	}

	logger.Info("[Queue] Expanded graph",
		"graph_id", data.GraphID,
		"new_nodes", len(result.NewNodes),
		"new_edges", len(result.NewEdges))
	return nil
}
