package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gamecatalog/internal/domain/entity"
)

// SeedVideoGames returns the fixture catalog loaded at startup.
func SeedVideoGames() []entity.VideoGame {
	return []entity.VideoGame{
		{
			ID:               1,
			Title:            "Hollow Knight",
			ReleaseYear:      2017,
			Genres:           []string{"Metroidvania", "Acción", "Aventura"},
			Platforms:        []string{"PC", "Nintendo Switch", "PlayStation", "Xbox One"},
			Developer:        "Team Cherry",
			ShortDescription: "Un épico metroidvania dibujado a mano sobre un caballero silencioso en un reino en ruinas.",
		},
		{
			ID:               2,
			Title:            "The Binding of Isaac: Rebirth",
			ReleaseYear:      2014,
			Genres:           []string{"Roguelike", "Acción", "Disparos"},
			Platforms:        []string{"PC", "Nintendo Switch", "PlayStation", "Xbox", "iOS"},
			Developer:        "Edmund McMillen, Nicalis, Inc.",
			ShortDescription: "Un roguelike de disparos con elementos de mazmorras y un alto nivel de rejugabilidad.",
		},
		{
			ID:               3,
			Title:            "Subnautica",
			ReleaseYear:      2018,
			Genres:           []string{"Supervivencia", "Aventura", "Exploración"},
			Platforms:        []string{"PC", "PlayStation", "Xbox", "Nintendo Switch"},
			Developer:        "Unknown Worlds Entertainment",
			ShortDescription: "Explora un vasto océano alienígena y construye bases para sobrevivir.",
		},
		{
			ID:               4,
			Title:            "Subnautica: Below Zero",
			ReleaseYear:      2021,
			Genres:           []string{"Supervivencia", "Aventura", "Exploración"},
			Platforms:        []string{"PC", "PlayStation", "Xbox", "Nintendo Switch"},
			Developer:        "Unknown Worlds Entertainment",
			ShortDescription: "Regresa al planeta 4546B para investigar una estación de investigación en un entorno ártico.",
		},
		{
			ID:               5,
			Title:            "Minecraft",
			ReleaseYear:      2011,
			Genres:           []string{"Sandbox", "Supervivencia", "Construcción", "Aventura"},
			Platforms:        []string{"PC", "Móviles", "Consolas"},
			Developer:        "Mojang Studios",
			ShortDescription: "Un juego de construcción y aventura de mundo abierto donde puedes crear casi cualquier cosa.",
		},
		{
			ID:               6,
			Title:            "Ori and the Blind Forest",
			ReleaseYear:      2015,
			Genres:           []string{"Metroidvania", "Plataformas", "Aventura"},
			Platforms:        []string{"PC", "Xbox One", "Nintendo Switch"},
			Developer:        "Moon Studios",
			ShortDescription: "Un plataformas de aventura visualmente impresionante con una historia emotiva.",
		},
		{
			ID:               7,
			Title:            "Hades",
			ReleaseYear:      2020,
			Genres:           []string{"Roguelike", "Acción", "Hack and Slash"},
			Platforms:        []string{"PC", "Nintendo Switch", "PlayStation", "Xbox"},
			Developer:        "Supergiant Games",
			ShortDescription: "Un roguelike de acción rápida con una rica narrativa mitológica griega y un estilo artístico único.",
		},
		{
			ID:               8,
			Title:            "Terraria",
			ReleaseYear:      2011,
			Genres:           []string{"Sandbox", "Aventura", "Supervivencia", "RPG"},
			Platforms:        []string{"PC", "Móviles", "Consolas"},
			Developer:        "Re-Logic",
			ShortDescription: "Un juego de sandbox 2D con un énfasis en la exploración, la construcción y el combate.",
		},
		{
			ID:               9,
			Title:            "Satisfactory",
			ReleaseYear:      2019,
			Genres:           []string{"Construcción", "Estrategia", "Simulación"},
			Platforms:        []string{"PC"},
			Developer:        "Coffee Stain Studios",
			ShortDescription: "Construye fábricas masivas en un planeta alienígena en primera persona.",
		},
		{
			ID:               10,
			Title:            "Stardew Valley",
			ReleaseYear:      2016,
			Genres:           []string{"Simulación", "RPG", "Vida"},
			Platforms:        []string{"PC", "Móviles", "Consolas"},
			Developer:        "ConcernedApe",
			ShortDescription: "Crea la granja de tus sueños, explora cuevas y forma relaciones en un acogedor juego de simulación.",
		},
	}
}

// LoadSeedFile reads a YAML list of videogames to use instead of the built-in
// seed. Duplicate ids are rejected so the catalog starts out consistent.
func LoadSeedFile(path string) ([]entity.VideoGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var games []entity.VideoGame
	if err := yaml.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	seen := make(map[int]struct{}, len(games))
	for _, g := range games {
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("seed file %s: duplicate videogame id %d", path, g.ID)
		}
		seen[g.ID] = struct{}{}
	}

	return games, nil
}
