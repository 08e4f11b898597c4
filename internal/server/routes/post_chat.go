package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/internal/util"
	"github.com/histomap/backend/pkg/ai"
	"github.com/histomap/backend/pkg/logger"
)

// PostChatHandler answers a question about the graph through the chat
// collaborator. The graph is summarized into the system prompt; nothing
// is mutated.
func PostChatHandler(c echo.Context) error {
	type postChatData struct {
		ID       string           `param:"id" validate:"required"`
		Question string           `json:"question" validate:"required"`
		History  []ai.ChatMessage `json:"history"`
	}

	type postChatResponse struct {
		Answer  string          `json:"answer"`
		Metrics ai.ModelMetrics `json:"metrics"`
	}

	data := new(postChatData)
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

	app := c.(*middleware.AppContext).App
	if app.AiClient == nil {
		return c.JSON(http.StatusServiceUnavailable, messageResponse{Message: "No AI client configured"})
	}

	ctx := c.Request().Context()
	maxTries := int(util.GetEnvNumeric("AI_MAX_TRIES", 2))
	answer, err := util.RetryWithContext(ctx, maxTries, func(ctx context.Context) (string, error) {
		return ai.ChatAboutGraph(ctx, app.AiClient, ai.GraphSummary(&g), data.History, data.Question)
	})
	if err != nil {
		logger.Error("[Server] Chat failed", "graph", data.ID, "err", err)
		return c.JSON(http.StatusBadGateway, messageResponse{Message: "Chat request failed"})
	}

	return c.JSON(http.StatusOK, postChatResponse{
		Answer:  answer,
		Metrics: app.AiClient.GetMetrics(),
	})
}
