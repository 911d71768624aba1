package usecase

import (
	"context"
	"time"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/logger"
)

// CatalogNotifier receives an event after every successful mutation.
type CatalogNotifier interface {
	Broadcast(event entity.CatalogEvent)
}

type VideoGameUseCase struct {
	videoGameRepo repository.VideoGameRepository
	notifier      CatalogNotifier
	now           func() time.Time
}

// NewVideoGameUseCase wires the catalog store. notifier may be nil.
func NewVideoGameUseCase(videoGameRepo repository.VideoGameRepository, notifier CatalogNotifier) *VideoGameUseCase {
	return &VideoGameUseCase{
		videoGameRepo: videoGameRepo,
		notifier:      notifier,
		now:           time.Now,
	}
}

func (uc *VideoGameUseCase) ListVideoGames(ctx context.Context) []entity.VideoGame {
	return uc.videoGameRepo.List(ctx)
}

func (uc *VideoGameUseCase) GetVideoGameByID(ctx context.Context, id int) (*entity.VideoGame, error) {
	return uc.videoGameRepo.GetByID(ctx, id)
}

func (uc *VideoGameUseCase) SearchVideoGames(ctx context.Context, filter entity.VideoGameFilter) ([]entity.VideoGame, error) {
	games, err := uc.videoGameRepo.Search(ctx, filter)
	if err != nil {
		logger.Debug("Search returned no videogames: %v", err)
		return nil, err
	}
	return games, nil
}

func (uc *VideoGameUseCase) CreateVideoGame(ctx context.Context, videoGame entity.VideoGame) (*entity.VideoGame, error) {
	created, err := uc.videoGameRepo.Create(ctx, videoGame)
	if err != nil {
		logger.Warn("Failed to create videogame id=%d: %v", videoGame.ID, err)
		return nil, err
	}

	logger.Info("Videogame created: id=%d title=%q", created.ID, created.Title)
	uc.publish(entity.EventVideoGameCreated, created.ID, created)
	return created, nil
}

// UpdateVideoGame replaces the record at id with videoGame in full. The stored
// id becomes videoGame.ID, which is allowed to differ from id.
func (uc *VideoGameUseCase) UpdateVideoGame(ctx context.Context, id int, videoGame entity.VideoGame) (*entity.VideoGame, error) {
	updated, err := uc.videoGameRepo.Update(ctx, id, videoGame)
	if err != nil {
		logger.Warn("Failed to update videogame id=%d: %v", id, err)
		return nil, err
	}

	if updated.ID != id {
		logger.Warn("Videogame id=%d was replaced by a record with id=%d", id, updated.ID)
	}
	logger.Info("Videogame updated: id=%d", id)
	uc.publish(entity.EventVideoGameUpdated, updated.ID, updated)
	return updated, nil
}

func (uc *VideoGameUseCase) DeleteVideoGame(ctx context.Context, id int) error {
	if err := uc.videoGameRepo.Delete(ctx, id); err != nil {
		logger.Warn("Failed to delete videogame id=%d: %v", id, err)
		return err
	}

	logger.Info("Videogame deleted: id=%d", id)
	uc.publish(entity.EventVideoGameDeleted, id, nil)
	return nil
}

func (uc *VideoGameUseCase) ListGenres(ctx context.Context) []string {
	return uc.videoGameRepo.DistinctGenres(ctx)
}

func (uc *VideoGameUseCase) ListPlatforms(ctx context.Context) []string {
	return uc.videoGameRepo.DistinctPlatforms(ctx)
}

func (uc *VideoGameUseCase) CountVideoGames(ctx context.Context) int {
	return uc.videoGameRepo.Count(ctx)
}

func (uc *VideoGameUseCase) publish(eventType string, id int, videoGame *entity.VideoGame) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Broadcast(entity.CatalogEvent{
		Type:        eventType,
		VideoGameID: id,
		VideoGame:   videoGame,
		Timestamp:   uc.now().UTC(),
	})
}
