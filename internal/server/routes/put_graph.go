package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/logger"
)

// PutGraphHandler replaces the graph under the given id with raw nodes and
// edges, recomputes all derived metrics and saves the snapshot. The id does
// not have to exist yet; this is also how graphs are created.
func PutGraphHandler(c echo.Context) error {
	type putGraphData struct {
		ID    string        `param:"id" validate:"required"`
		Nodes []nodeInput   `json:"nodes"`
		Edges []common.Edge `json:"edges"`
	}

	type putGraphResponse struct {
		Message string       `json:"message"`
		Graph   common.Graph `json:"graph"`
	}

	data := new(putGraphData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	seen := map[string]bool{}
	nodes := make([]common.Node, 0, len(data.Nodes))
	for _, in := range data.Nodes {
		if in.ID == "" {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Every node needs an id"})
		}
		if seen[in.ID] {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Duplicate node id: " + in.ID})
		}
		seen[in.ID] = true
		nodes = append(nodes, in.toNode())
	}

	ctx := c.Request().Context()
	enriched, err := enrichAndSave(ctx, c, data.ID, common.Graph{
		Nodes: nodes,
		Edges: data.Edges,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	logger.Info("[Server] Replaced graph",
		"id", data.ID, "nodes", len(enriched.Nodes), "edges", len(enriched.Edges))

	return c.JSON(http.StatusOK, putGraphResponse{
		Message: "Graph saved",
		Graph:   enriched,
	})
}
