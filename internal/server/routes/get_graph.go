package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/pkg/common"
)

// GetGraphHandler returns the stored, enriched snapshot.
func GetGraphHandler(c echo.Context) error {
	type getGraphData struct {
		ID string `param:"id" validate:"required"`
	}

	type getGraphResponse struct {
		Graph common.Graph `json:"graph"`
	}

	data := new(getGraphData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	g, ok, err := loadGraph(c, data.ID)
	if !ok {
		return err
	}

	return c.JSON(http.StatusOK, getGraphResponse{Graph: g})
}
