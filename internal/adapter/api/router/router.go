package router

import (
	"gamecatalog/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, rateLimiter *middleware.RateLimiter) {
	SetupVideoGameRouter(e, rateLimiter)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
