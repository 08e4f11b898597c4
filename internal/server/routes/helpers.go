package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/internal/util"
	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/enrich"
	"github.com/histomap/backend/pkg/store"
)

type messageResponse struct {
	Message string `json:"message"`
}

// nodeInput is the wire shape for node intake. Importance is a pointer so
// an omitted field can be told apart from an explicit zero and filled with
// the default weight instead.
type nodeInput struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Type        common.NodeType `json:"type"`
	Region      string          `json:"region"`
	Importance  *float64        `json:"importance"`
	Year        *int            `json:"year"`
}

func (in nodeInput) toNode() common.Node {
	n := common.Node{
		ID:          in.ID,
		Label:       in.Label,
		Description: in.Description,
		Type:        in.Type,
		Region:      in.Region,
		Importance:  common.DefaultImportance,
		Year:        in.Year,
	}
	if in.Importance != nil {
		n.Importance = *in.Importance
	}
	if n.Region == "" {
		n.Region = common.RegionUnknown
	}
	return n
}

// loadGraph fetches a snapshot and translates a missing id into a 404
// response. The returned bool reports whether the handler should continue.
func loadGraph(c echo.Context, id string) (common.Graph, bool, error) {
	app := c.(*middleware.AppContext).App
	g, err := app.Snapshots.LoadGraph(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return common.Graph{}, false, c.JSON(http.StatusNotFound, messageResponse{Message: "Graph not found"})
		}
		return common.Graph{}, false, c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
	return g, true, nil
}

// enrichAndSave recomputes all derived metrics and persists the snapshot.
func enrichAndSave(ctx context.Context, c echo.Context, id string, g common.Graph) (common.Graph, error) {
	app := c.(*middleware.AppContext).App

	enriched := enrich.Enrich(g, enrich.Config{
		BalanceNodeCap: int(util.GetEnvNumeric("ENRICH_BALANCE_NODE_CAP", 0)),
	})
	if err := app.Snapshots.SaveGraph(ctx, id, enriched); err != nil {
		return common.Graph{}, err
	}
	return enriched, nil
}
