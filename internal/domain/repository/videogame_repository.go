package repository

import (
	"context"

	"gamecatalog/internal/domain/entity"
)

// VideoGameRepository owns the catalog. Implementations must keep ids unique
// on Create and must never hand out references into their own storage.
type VideoGameRepository interface {
	List(ctx context.Context) []entity.VideoGame
	GetByID(ctx context.Context, id int) (*entity.VideoGame, error)
	Search(ctx context.Context, filter entity.VideoGameFilter) ([]entity.VideoGame, error)
	Create(ctx context.Context, videoGame entity.VideoGame) (*entity.VideoGame, error)
	Update(ctx context.Context, id int, videoGame entity.VideoGame) (*entity.VideoGame, error)
	Delete(ctx context.Context, id int) error
	DistinctGenres(ctx context.Context) []string
	DistinctPlatforms(ctx context.Context) []string
	Count(ctx context.Context) int
}
