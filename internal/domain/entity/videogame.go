package entity

import "time"

// VideoGame is a single catalog entry. JSON names keep the public wire format
// of the catalog API.
type VideoGame struct {
	ID               int      `json:"id" yaml:"id"`
	Title            string   `json:"titulo" yaml:"titulo"`
	ReleaseYear      int      `json:"ano_salida" yaml:"ano_salida"`
	Genres           []string `json:"generos" yaml:"generos"`
	Platforms        []string `json:"plataformas" yaml:"plataformas"`
	Developer        string   `json:"desarrollador" yaml:"desarrollador"`
	ShortDescription string   `json:"descripcion_corta" yaml:"descripcion_corta"`
}

// Clone returns a copy that shares no slices with g.
func (g VideoGame) Clone() VideoGame {
	g.Genres = cloneStrings(g.Genres)
	g.Platforms = cloneStrings(g.Platforms)
	return g
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// VideoGameFilter holds optional search criteria. Nil fields impose no
// constraint; the ones that are set are ANDed.
type VideoGameFilter struct {
	Query *string
	Genre *string
	Year  *int
}

// IsEmpty reports whether no criteria are set.
func (f VideoGameFilter) IsEmpty() bool {
	return f.Query == nil && f.Genre == nil && f.Year == nil
}

const (
	EventVideoGameCreated = "videogame.created"
	EventVideoGameUpdated = "videogame.updated"
	EventVideoGameDeleted = "videogame.deleted"
)

type CatalogEvent struct {
	Type        string     `json:"type"`
	VideoGameID int        `json:"videogame_id"`
	VideoGame   *VideoGame `json:"videogame,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}
