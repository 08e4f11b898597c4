package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/queue"
	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/pkg/logger"
)

// PostEnrichHandler enqueues a full metric recomputation for the graph.
// Useful after bulk imports done directly against the database.
func PostEnrichHandler(c echo.Context) error {
	type postEnrichData struct {
		ID string `param:"id" validate:"required"`
	}

	data := new(postEnrichData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	if _, ok, err := loadGraph(c, data.ID); !ok {
		return err
	}

	payload, err := json.Marshal(queue.EnrichJobMsg{GraphID: data.ID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	app := c.(*middleware.AppContext).App
	if err := queue.PublishFIFO(app.Queue, queue.EnrichQueue, payload); err != nil {
		logger.Error("[Server] Failed to enqueue enrichment", "graph", data.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Failed to enqueue enrichment"})
	}

	return c.JSON(http.StatusAccepted, messageResponse{Message: "Enrichment queued"})
}
