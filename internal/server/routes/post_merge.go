package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/dedupe"
)

// PostMergeHandler merges two nodes into one, keeping the better-described
// node and reassigning all edges, then recomputes metrics and saves.
func PostMergeHandler(c echo.Context) error {
	type postMergeData struct {
		ID    string `param:"id" validate:"required"`
		NodeA string `json:"node_a" validate:"required"`
		NodeB string `json:"node_b" validate:"required"`
	}

	type postMergeResponse struct {
		Message string       `json:"message"`
		KeptID  string       `json:"kept_id"`
		Graph   common.Graph `json:"graph"`
	}

	data := new(postMergeData)
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

	merged, keptID, err := dedupe.ResolveMerge(g, data.NodeA, data.NodeB)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	ctx := c.Request().Context()
	enriched, err := enrichAndSave(ctx, c, data.ID, merged)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, postMergeResponse{
		Message: "Nodes merged",
		KeptID:  keptID,
		Graph:   enriched,
	})
}
