package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/histomap/backend/pkg/ai"
	"github.com/histomap/backend/pkg/logger"
	"github.com/histomap/backend/pkg/store"
)

// App carries the shared service dependencies every route handler needs.
type App struct {
	DBConn       *pgxpool.Pool
	Queue        *amqp091.Channel
	AiClient     ai.GraphAIClient
	Snapshots    store.SnapshotStorage
	LogRing      *logger.Ring
	MasterAPIKey string
}

// AppContext wraps the echo context with the application dependencies.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the App to every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
