package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetExportHandler dumps the full graph in the wire envelope shape
// consumed by visualization frontends.
func GetExportHandler(c echo.Context) error {
	type getExportData struct {
		ID string `param:"id" validate:"required"`
	}

	data := new(getExportData)
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

	return c.JSON(http.StatusOK, g.ToExport())
}
