package router

import (
	"gamecatalog/internal/adapter/api/handler"
	"gamecatalog/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupVideoGameRouter registers the catalog routes. The static /buscar route
// takes priority over /:id in Echo's router.
func SetupVideoGameRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter) {
	videoGameHandler := handler.GetVideoGameHandler()

	var mws []echo.MiddlewareFunc
	if rateLimiter != nil {
		mws = append(mws, rateLimiter.RateLimitMiddleware())
	}

	videojuegos := e.Group("/videojuegos", mws...)
	videojuegos.GET("", videoGameHandler.ListVideoGames)
	videojuegos.GET("/buscar", videoGameHandler.SearchVideoGames)
	videojuegos.GET("/:id", videoGameHandler.GetVideoGame)
	videojuegos.POST("", videoGameHandler.CreateVideoGame)
	videojuegos.POST("/", videoGameHandler.CreateVideoGame)
	videojuegos.PUT("/:id", videoGameHandler.UpdateVideoGame)
	videojuegos.DELETE("/:id", videoGameHandler.DeleteVideoGame)

	e.GET("/generos", videoGameHandler.ListGenres, mws...)
	e.GET("/plataformas", videoGameHandler.ListPlatforms, mws...)
}
