package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/pkg/store"
)

// DeleteGraphHandler removes a stored snapshot.
func DeleteGraphHandler(c echo.Context) error {
	type deleteGraphData struct {
		ID string `param:"id" validate:"required"`
	}

	data := new(deleteGraphData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	app := c.(*middleware.AppContext).App
	if err := app.Snapshots.DeleteGraph(c.Request().Context(), data.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Graph not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Graph deleted"})
}
