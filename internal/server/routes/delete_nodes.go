package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/logger"
)

// DeleteNodesHandler removes the listed nodes together with every edge
// touching them, then recomputes metrics and saves. Unknown ids are
// ignored so the operation is idempotent.
func DeleteNodesHandler(c echo.Context) error {
	type deleteNodesData struct {
		ID  string   `param:"id" validate:"required"`
		IDs []string `json:"ids" validate:"required,min=1"`
	}

	type deleteNodesResponse struct {
		Message string       `json:"message"`
		Removed int          `json:"removed"`
		Graph   common.Graph `json:"graph"`
	}

	data := new(deleteNodesData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	g, ok, err := loadGraph(c, data.ID)
	if !ok {
		return err
	}

	drop := make(map[string]bool, len(data.IDs))
	for _, id := range data.IDs {
		drop[id] = true
	}

	nodes := make([]common.Node, 0, len(g.Nodes))
	removed := 0
	for _, n := range g.Nodes {
		if drop[n.ID] {
			removed++
			continue
		}
		nodes = append(nodes, n)
	}

	edges := make([]common.Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if drop[e.Source] || drop[e.Target] {
			continue
		}
		edges = append(edges, e)
	}

	g.Nodes = nodes
	g.Edges = edges

	ctx := c.Request().Context()
	enriched, err := enrichAndSave(ctx, c, data.ID, g)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	logger.Info("[Server] Deleted nodes", "graph", data.ID, "removed", removed)

	return c.JSON(http.StatusOK, deleteNodesResponse{
		Message: "Nodes deleted",
		Removed: removed,
		Graph:   enriched,
	})
}
