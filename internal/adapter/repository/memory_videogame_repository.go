package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type memoryVideoGameRepository struct {
	mu    sync.RWMutex
	games []entity.VideoGame
}

// NewMemoryVideoGameRepository returns a catalog holding a copy of seed in the
// given order. Seed ids are expected to be unique.
func NewMemoryVideoGameRepository(seed []entity.VideoGame) repository.VideoGameRepository {
	games := make([]entity.VideoGame, 0, len(seed))
	for _, g := range seed {
		games = append(games, g.Clone())
	}
	return &memoryVideoGameRepository{games: games}
}

func (r *memoryVideoGameRepository) List(ctx context.Context) []entity.VideoGame {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.games)
}

func (r *memoryVideoGameRepository) GetByID(ctx context.Context, id int) (*entity.VideoGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		g := r.games[i].Clone()
		return &g, nil
	}
	return nil, errors.NotFound("Videogame", nil)
}

func (r *memoryVideoGameRepository) Search(ctx context.Context, filter entity.VideoGameFilter) ([]entity.VideoGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var query, genre string
	if filter.Query != nil {
		query = strings.ToLower(*filter.Query)
	}
	if filter.Genre != nil {
		genre = strings.ToLower(*filter.Genre)
	}

	results := make([]entity.VideoGame, 0)
	for _, g := range r.games {
		if filter.Query != nil &&
			!strings.Contains(strings.ToLower(g.Title), query) &&
			!strings.Contains(strings.ToLower(g.ShortDescription), query) {
			continue
		}
		if filter.Genre != nil && !hasTagFold(g.Genres, genre) {
			continue
		}
		if filter.Year != nil && g.ReleaseYear != *filter.Year {
			continue
		}
		results = append(results, g.Clone())
	}

	if len(results) == 0 {
		return nil, errors.NoMatches("videogames")
	}
	return results, nil
}

func (r *memoryVideoGameRepository) Create(ctx context.Context, videoGame entity.VideoGame) (*entity.VideoGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(videoGame.ID) >= 0 {
		return nil, errors.DuplicateID("videogame", videoGame.ID)
	}

	stored := videoGame.Clone()
	r.games = append(r.games, stored)

	created := stored.Clone()
	return &created, nil
}

// Update overwrites the slot selected by id with videoGame as-is, including
// videoGame.ID. A diverging or colliding body id is stored without checks.
func (r *memoryVideoGameRepository) Update(ctx context.Context, id int, videoGame entity.VideoGame) (*entity.VideoGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, errors.NotFound("Videogame", nil)
	}

	r.games[i] = videoGame.Clone()

	updated := r.games[i].Clone()
	return &updated, nil
}

func (r *memoryVideoGameRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.games)
	kept := r.games[:0]
	for _, g := range r.games {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	// Clear the tail so removed records are not retained by the backing array.
	for i := len(kept); i < before; i++ {
		r.games[i] = entity.VideoGame{}
	}
	r.games = kept

	if len(r.games) == before {
		return errors.NotFound("Videogame", nil)
	}
	return nil
}

func (r *memoryVideoGameRepository) DistinctGenres(ctx context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return distinct(r.games, func(g entity.VideoGame) []string { return g.Genres })
}

func (r *memoryVideoGameRepository) DistinctPlatforms(ctx context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return distinct(r.games, func(g entity.VideoGame) []string { return g.Platforms })
}

func (r *memoryVideoGameRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.games)
}

// indexOf returns the position of the first record with id, or -1.
// Callers must hold r.mu.
func (r *memoryVideoGameRepository) indexOf(id int) int {
	for i, g := range r.games {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(games []entity.VideoGame) []entity.VideoGame {
	out := make([]entity.VideoGame, len(games))
	for i, g := range games {
		out[i] = g.Clone()
	}
	return out
}

func hasTagFold(tags []string, lowered string) bool {
	for _, tag := range tags {
		if strings.ToLower(tag) == lowered {
			return true
		}
	}
	return false
}

// distinct deduplicates by exact string equality and sorts by byte order.
func distinct(games []entity.VideoGame, tags func(entity.VideoGame) []string) []string {
	seen := make(map[string]struct{})
	for _, g := range games {
		for _, tag := range tags(g) {
			seen[tag] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
