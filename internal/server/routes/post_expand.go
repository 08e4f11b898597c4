package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/queue"
	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/pkg/logger"
)

// PostExpandHandler enqueues an AI expansion job for the graph. Expansion
// runs on the worker because a single model round trip can take longer
// than any sane HTTP timeout.
func PostExpandHandler(c echo.Context) error {
	type postExpandData struct {
		ID    string `param:"id" validate:"required"`
		Query string `json:"query" validate:"required"`
	}

	data := new(postExpandData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	// Fail fast on unknown graphs instead of bouncing the job through
	// the retry queue.
	if _, ok, err := loadGraph(c, data.ID); !ok {
		return err
	}

	payload, err := json.Marshal(queue.ExpandJobMsg{
		GraphID: data.ID,
		Query:   data.Query,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	app := c.(*middleware.AppContext).App
	if err := queue.PublishFIFO(app.Queue, queue.ExpandQueue, payload); err != nil {
		logger.Error("[Server] Failed to enqueue expansion", "graph", data.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Failed to enqueue expansion"})
	}

	return c.JSON(http.StatusAccepted, messageResponse{Message: "Expansion queued"})
}
