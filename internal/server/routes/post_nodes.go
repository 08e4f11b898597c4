package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/util"
	"github.com/histomap/backend/pkg/common"
)

// PostNodesHandler appends new nodes (and optional edges between them and
// the existing graph), recomputes metrics and saves.
func PostNodesHandler(c echo.Context) error {
	type postNodesData struct {
		ID    string        `param:"id" validate:"required"`
		Nodes []nodeInput   `json:"nodes" validate:"required,min=1"`
		Edges []common.Edge `json:"edges"`
	}

	type postNodesResponse struct {
		Message string       `json:"message"`
		Graph   common.Graph `json:"graph"`
	}

	data := new(postNodesData)
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

	index := g.NodeIndex()
	nodes := make([]common.Node, 0, len(data.Nodes))
	for _, in := range data.Nodes {
		if in.ID == "" {
			id, err := util.NewID("node")
			if err != nil {
				return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
			}
			in.ID = id
		}
		if _, exists := index[in.ID]; exists {
			return c.JSON(http.StatusConflict, messageResponse{Message: "Node already exists: " + in.ID})
		}
		nodes = append(nodes, in.toNode())
	}
	for i := range data.Edges {
		if data.Edges[i].ID == "" {
			id, err := util.NewID("edge")
			if err != nil {
				return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
			}
			data.Edges[i].ID = id
		}
	}

	g.Nodes = append(g.Nodes, nodes...)
	g.Edges = append(g.Edges, data.Edges...)

	ctx := c.Request().Context()
	enriched, err := enrichAndSave(ctx, c, data.ID, g)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, postNodesResponse{
		Message: "Nodes added",
		Graph:   enriched,
	})
}
