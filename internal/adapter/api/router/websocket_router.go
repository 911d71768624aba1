package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
)

// SetupWebSocketRouter exposes the catalog change feed.
func SetupWebSocketRouter(e *echo.Echo) {
	e.GET("/ws/catalog", handler.GetWebSocketHandler().HandleCatalogFeed)
}
