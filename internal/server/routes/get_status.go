package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/pkg/logger"
	"github.com/histomap/backend/pkg/store"
)

const serviceVersion = "0.3.0"

// GetStatusHandler reports the service version, stored graph counts and
// the most recent log records.
func GetStatusHandler(c echo.Context) error {
	type statusResponse struct {
		Version    string           `json:"version"`
		Graphs     int              `json:"graphs"`
		TotalNodes int              `json:"total_nodes"`
		TotalEdges int              `json:"total_edges"`
		RecentLogs []logger.Record  `json:"recent_logs"`
		GraphInfos []store.GraphInfo `json:"graph_infos"`
	}

	app := c.(*middleware.AppContext).App

	infos, err := app.Snapshots.ListGraphs(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	totalNodes := 0
	totalEdges := 0
	for _, info := range infos {
		totalNodes += info.NodeCount
		totalEdges += info.EdgeCount
	}

	var records []logger.Record
	if app.LogRing != nil {
		records = app.LogRing.Records()
	}

	return c.JSON(http.StatusOK, statusResponse{
		Version:    serviceVersion,
		Graphs:     len(infos),
		TotalNodes: totalNodes,
		TotalEdges: totalEdges,
		RecentLogs: records,
		GraphInfos: infos,
	})
}
