package handler

import (
	"gamecatalog/internal/infrastructure/websocket"
	"gamecatalog/internal/usecase"
)

var (
	videoGameHandler *VideoGameHandler
	healthHandler    *HealthHandler
	webSocketHandler *WebSocketHandler
)

func Setup(videoGameUseCase *usecase.VideoGameUseCase, wsManager *websocket.Manager) {
	videoGameHandler = NewVideoGameHandler(videoGameUseCase)
	healthHandler = NewHealthHandler(videoGameUseCase)
	webSocketHandler = NewWebSocketHandler(wsManager)
}

func GetVideoGameHandler() *VideoGameHandler {
	return videoGameHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
