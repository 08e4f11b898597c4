package server

import (
	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Service routes
	apiRoutes.GET("/status", routes.GetStatusHandler)

	// Graph snapshot routes
	apiRoutes.GET("/graphs", routes.GetGraphsHandler)
	apiRoutes.GET("/graphs/:id", routes.GetGraphHandler)
	apiRoutes.PUT("/graphs/:id", routes.PutGraphHandler)
	apiRoutes.DELETE("/graphs/:id", routes.DeleteGraphHandler)
	apiRoutes.GET("/graphs/:id/export", routes.GetExportHandler)

	// Node editing routes
	apiRoutes.POST("/graphs/:id/nodes", routes.PostNodesHandler)
	apiRoutes.PATCH("/graphs/:id/nodes/:node_id", routes.PatchNodeHandler)
	apiRoutes.DELETE("/graphs/:id/nodes", routes.DeleteNodesHandler)

	// Analysis routes
	apiRoutes.GET("/graphs/:id/duplicates", routes.GetDuplicatesHandler)
	apiRoutes.GET("/graphs/:id/regional", routes.GetRegionalHandler)
	apiRoutes.POST("/graphs/:id/merge", routes.PostMergeHandler)

	// Job routes
	apiRoutes.POST("/graphs/:id/enrich", routes.PostEnrichHandler)
	apiRoutes.POST("/graphs/:id/expand", routes.PostExpandHandler)

	// AI routes
	apiRoutes.POST("/graphs/:id/chat", routes.PostChatHandler)
}
