package handler

import (
	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/response"
	"gamecatalog/pkg/utils"

	"github.com/labstack/echo/v4"
)

type VideoGameHandler struct {
	videoGameUseCase *usecase.VideoGameUseCase
}

func NewVideoGameHandler(videoGameUseCase *usecase.VideoGameUseCase) *VideoGameHandler {
	return &VideoGameHandler{
		videoGameUseCase: videoGameUseCase,
	}
}

// Numeric fields are pointers so that "required" means present, not non-zero.
type videoGameRequest struct {
	ID               *int     `json:"id" validate:"required"`
	Title            string   `json:"titulo" validate:"required"`
	ReleaseYear      *int     `json:"ano_salida" validate:"required"`
	Genres           []string `json:"generos" validate:"required"`
	Platforms        []string `json:"plataformas" validate:"required"`
	Developer        string   `json:"desarrollador" validate:"required"`
	ShortDescription string   `json:"descripcion_corta" validate:"required"`
}

func (r videoGameRequest) toEntity() entity.VideoGame {
	return entity.VideoGame{
		ID:               *r.ID,
		Title:            r.Title,
		ReleaseYear:      *r.ReleaseYear,
		Genres:           r.Genres,
		Platforms:        r.Platforms,
		Developer:        r.Developer,
		ShortDescription: r.ShortDescription,
	}
}

func bindVideoGame(c echo.Context) (entity.VideoGame, error) {
	var req videoGameRequest
	if err := c.Bind(&req); err != nil {
		return entity.VideoGame{}, err
	}
	if err := c.Validate(&req); err != nil {
		return entity.VideoGame{}, err
	}
	return req.toEntity(), nil
}

func (h *VideoGameHandler) ListVideoGames(c echo.Context) error {
	return response.Success(c, h.videoGameUseCase.ListVideoGames(c.Request().Context()))
}

func (h *VideoGameHandler) GetVideoGame(c echo.Context) error {
	id, err := utils.GetIntParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	videoGame, err := h.videoGameUseCase.GetVideoGameByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, videoGame)
}

func (h *VideoGameHandler) SearchVideoGames(c echo.Context) error {
	filter, err := utils.GetSearchFilter(c)
	if err != nil {
		return response.Error(c, err)
	}

	videoGames, err := h.videoGameUseCase.SearchVideoGames(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, videoGames)
}

func (h *VideoGameHandler) CreateVideoGame(c echo.Context) error {
	videoGame, err := bindVideoGame(c)
	if err != nil {
		return response.Error(c, err)
	}

	created, err := h.videoGameUseCase.CreateVideoGame(c.Request().Context(), videoGame)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, created)
}

func (h *VideoGameHandler) UpdateVideoGame(c echo.Context) error {
	id, err := utils.GetIntParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	videoGame, err := bindVideoGame(c)
	if err != nil {
		return response.Error(c, err)
	}

	updated, err := h.videoGameUseCase.UpdateVideoGame(c.Request().Context(), id, videoGame)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, updated)
}

func (h *VideoGameHandler) DeleteVideoGame(c echo.Context) error {
	id, err := utils.GetIntParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.videoGameUseCase.DeleteVideoGame(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}

func (h *VideoGameHandler) ListGenres(c echo.Context) error {
	return response.Success(c, h.videoGameUseCase.ListGenres(c.Request().Context()))
}

func (h *VideoGameHandler) ListPlatforms(c echo.Context) error {
	return response.Success(c, h.videoGameUseCase.ListPlatforms(c.Request().Context()))
}
