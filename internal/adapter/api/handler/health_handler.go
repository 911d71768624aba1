package handler

import (
	"net/http"
	"time"

	"gamecatalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	videoGameUseCase *usecase.VideoGameUseCase
}

func NewHealthHandler(videoGameUseCase *usecase.VideoGameUseCase) *HealthHandler {
	return &HealthHandler{
		videoGameUseCase: videoGameUseCase,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"time":       time.Now().Format(time.RFC3339),
		"videogames": h.videoGameUseCase.CountVideoGames(c.Request().Context()),
	})
}
