package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/pkg/common"
)

// PatchNodeHandler edits the editable attributes of a single node. Pointer
// fields distinguish "not sent" from an explicit zero value.
func PatchNodeHandler(c echo.Context) error {
	type patchNodeData struct {
		ID     string `param:"id" validate:"required"`
		NodeID string `param:"node_id" validate:"required"`

		Label       *string  `json:"label"`
		Description *string  `json:"description"`
		Type        *string  `json:"type"`
		Region      *string  `json:"region"`
		Importance  *float64 `json:"importance"`
		Year        *int     `json:"year"`
	}

	type patchNodeResponse struct {
		Message string      `json:"message"`
		Node    common.Node `json:"node"`
	}

	data := new(patchNodeData)
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

	node := g.FindNode(data.NodeID)
	if node == nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Node not found"})
	}

	if data.Label != nil {
		node.Label = *data.Label
	}
	if data.Description != nil {
		node.Description = *data.Description
	}
	if data.Type != nil {
		node.Type = common.NodeType(*data.Type)
	}
	if data.Region != nil {
		node.Region = *data.Region
	}
	if data.Importance != nil {
		node.Importance = *data.Importance
	}
	if data.Year != nil {
		year := *data.Year
		node.Year = &year
	}

	ctx := c.Request().Context()
	enriched, err := enrichAndSave(ctx, c, data.ID, g)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	updated := enriched.FindNode(data.NodeID)
	if updated == nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, patchNodeResponse{
		Message: "Node updated",
		Node:    *updated,
	})
}
