package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/pkg/analytics"
	"github.com/histomap/backend/pkg/common"
)

// GetRegionalHandler returns the regional connectivity analysis for a
// stored graph.
func GetRegionalHandler(c echo.Context) error {
	type getRegionalData struct {
		ID string `param:"id" validate:"required"`
	}

	type getRegionalResponse struct {
		Regional common.RegionalAnalysis `json:"regional"`
	}

	data := new(getRegionalData)
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

	return c.JSON(http.StatusOK, getRegionalResponse{
		Regional: analytics.AnalyzeRegions(&g),
	})
}
