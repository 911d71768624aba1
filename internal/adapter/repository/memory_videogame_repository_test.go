package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/pkg/errors"
)

func newSeededRepo() *memoryVideoGameRepository {
	return NewMemoryVideoGameRepository(SeedVideoGames()).(*memoryVideoGameRepository)
}

func ids(games []entity.VideoGame) []int {
	out := make([]int, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sampleGame(id int) entity.VideoGame {
	return entity.VideoGame{
		ID:               id,
		Title:            "Celeste",
		ReleaseYear:      2018,
		Genres:           []string{"Plataformas", "Indie"},
		Platforms:        []string{"PC", "Nintendo Switch"},
		Developer:        "Maddy Makes Games",
		ShortDescription: "Ayuda a Madeline a escalar la montaña Celeste.",
	}
}

func TestListReturnsSeedInInsertionOrder(t *testing.T) {
	repo := newSeededRepo()

	games := repo.List(context.Background())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(games))
	assert.Equal(t, "Hollow Knight", games[0].Title)
}

func TestListReturnsCopy(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	games := repo.List(ctx)
	games[0].Title = "mutated"
	games[0].Genres[0] = "mutated"

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hollow Knight", stored.Title)
	assert.Equal(t, "Metroidvania", stored.Genres[0])
}

func TestGetByID(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	game, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Hades", game.Title)

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestReadsAreIdempotent(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	assert.Equal(t, repo.List(ctx), repo.List(ctx))

	first, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	filter := entity.VideoGameFilter{Query: strPtr("roguelike")}
	a, err := repo.Search(ctx, filter)
	require.NoError(t, err)
	b, err := repo.Search(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name   string
		filter entity.VideoGameFilter
		want   []int
	}{
		{
			name:   "genre is case insensitive",
			filter: entity.VideoGameFilter{Genre: strPtr("metroidvania")},
			want:   []int{1, 6},
		},
		{
			name:   "exact genre",
			filter: entity.VideoGameFilter{Genre: strPtr("Metroidvania")},
			want:   []int{1, 6},
		},
		{
			name:   "year",
			filter: entity.VideoGameFilter{Year: intPtr(2011)},
			want:   []int{5, 8},
		},
		{
			name:   "query matches title",
			filter: entity.VideoGameFilter{Query: strPtr("SUBNAUTICA")},
			want:   []int{3, 4},
		},
		{
			name:   "query matches description",
			filter: entity.VideoGameFilter{Query: strPtr("granja")},
			want:   []int{10},
		},
		{
			name:   "criteria are ANDed",
			filter: entity.VideoGameFilter{Genre: strPtr("sandbox"), Query: strPtr("2d"), Year: intPtr(2011)},
			want:   []int{8},
		},
		{
			name:   "genre must match a whole tag",
			filter: entity.VideoGameFilter{Genre: strPtr("Hack")},
			want:   nil,
		},
		{
			name:   "no criteria returns everything",
			filter: entity.VideoGameFilter{},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newSeededRepo()

			got, err := repo.Search(context.Background(), tt.filter)
			if tt.want == nil {
				assert.True(t, errors.Is(err, errors.CodeNotFound))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearchOnEmptiedCatalogFails(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	for _, g := range repo.List(ctx) {
		require.NoError(t, repo.Delete(ctx, g.ID))
	}

	_, err := repo.Search(ctx, entity.VideoGameFilter{})
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestCreateThenGet(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleGame(11))
	require.NoError(t, err)
	assert.Equal(t, sampleGame(11), *created)

	got, err := repo.GetByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, sampleGame(11), *got)

	games := repo.List(ctx)
	assert.Equal(t, 11, games[len(games)-1].ID)
}

func TestCreateDuplicateLeavesCatalogUnchanged(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()
	before := repo.List(ctx)

	_, err := repo.Create(ctx, sampleGame(1))

	assert.True(t, errors.Is(err, errors.CodeDuplicateID))
	assert.Equal(t, before, repo.List(ctx))
	assert.Equal(t, 10, repo.Count(ctx))
}

func TestUpdateReplacesInPlace(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	replacement := sampleGame(4)
	updated, err := repo.Update(ctx, 4, replacement)
	require.NoError(t, err)
	assert.Equal(t, replacement, *updated)

	got, err := repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, replacement, *got)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(repo.List(ctx)))
}

func TestUpdateStoresBodyIDEvenWhenItDiverges(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	_, err := repo.Update(ctx, 2, sampleGame(42))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 42, 3, 4, 5, 6, 7, 8, 9, 10}, ids(repo.List(ctx)))
	_, err = repo.GetByID(ctx, 2)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestUpdateMissing(t *testing.T) {
	repo := newSeededRepo()

	_, err := repo.Update(context.Background(), 999, sampleGame(999))

	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestDelete(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 5))

	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9, 10}, ids(repo.List(ctx)))
	_, err := repo.GetByID(ctx, 5)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestDeleteMissingLeavesCatalogUnchanged(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	err := repo.Delete(ctx, 999)

	assert.True(t, errors.Is(err, errors.CodeNotFound))
	assert.Equal(t, 10, repo.Count(ctx))
}

func TestDeleteRemovesEveryMatch(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()
	// Update can introduce a second record with the same id.
	_, err := repo.Update(ctx, 2, sampleGame(1))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1))

	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10}, ids(repo.List(ctx)))
}

func TestDistinctPlatforms(t *testing.T) {
	repo := newSeededRepo()

	platforms := repo.DistinctPlatforms(context.Background())

	assert.True(t, sort.StringsAreSorted(platforms))
	for _, p := range []string{"PC", "Nintendo Switch", "PlayStation", "Xbox", "Xbox One", "Móviles", "Consolas", "iOS"} {
		assert.Contains(t, platforms, p)
	}
	assert.Len(t, platforms, 8)
}

func TestDistinctGenres(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	genres := repo.DistinctGenres(ctx)

	assert.True(t, sort.StringsAreSorted(genres))
	assert.Equal(t, "Acción", genres[0])
	assert.Contains(t, genres, "Metroidvania")

	// Deduplication is case sensitive.
	game := sampleGame(11)
	game.Genres = []string{"metroidvania"}
	_, err := repo.Create(ctx, game)
	require.NoError(t, err)
	assert.Len(t, repo.DistinctGenres(ctx), len(genres)+1)
}

func TestDistinctOnEmptyCatalog(t *testing.T) {
	repo := NewMemoryVideoGameRepository(nil)
	ctx := context.Background()

	assert.NotNil(t, repo.DistinctGenres(ctx))
	assert.Empty(t, repo.DistinctGenres(ctx))
	assert.Empty(t, repo.DistinctPlatforms(ctx))
}

func TestConcurrentCreatesKeepIDsUnique(t *testing.T) {
	repo := NewMemoryVideoGameRepository(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := 0; id < 50; id++ {
				_, _ = repo.Create(ctx, sampleGame(id))
			}
		}()
	}
	wg.Wait()

	games := repo.List(ctx)
	require.Len(t, games, 50)
	seen := make(map[int]bool)
	for _, g := range games {
		assert.False(t, seen[g.ID], "duplicate id %d", g.ID)
		seen[g.ID] = true
	}
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: 100
  titulo: Celeste
  ano_salida: 2018
  generos: [Plataformas]
  plataformas: [PC]
  desarrollador: Maddy Makes Games
  descripcion_corta: Escala la montaña.
`), 0o600))

	games, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 100, games[0].ID)
	assert.Equal(t, []string{"Plataformas"}, games[0].Genres)
}

func TestLoadSeedFileRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n- id: 1\n"), 0o600))

	_, err := LoadSeedFile(path)
	assert.ErrorContains(t, err, "duplicate videogame id 1")
}
