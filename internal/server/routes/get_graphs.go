package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/pkg/store"
)

// GetGraphsHandler lists stored graph snapshots, newest first.
func GetGraphsHandler(c echo.Context) error {
	type getGraphsResponse struct {
		Graphs []store.GraphInfo `json:"graphs"`
	}

	app := c.(*middleware.AppContext).App

	infos, err := app.Snapshots.ListGraphs(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, getGraphsResponse{Graphs: infos})
}
