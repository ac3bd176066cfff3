package database

import (
	"context"
	"log/slog"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
)

// SeedSpecies upserts the static species catalog so album queries can join on it.
func (db *DB) SeedSpecies(ctx context.Context) error {
	all := catalog.AllSpecies()
	rows := make([]models.BirdSpecies, 0, len(all))
	for _, s := range all {
		rows = append(rows, models.BirdSpecies{
			ID:             s.ID,
			Name:           s.Name,
			ScientificName: s.ScientificName,
			Rarity:         string(s.Rarity),
			BaseValue:      s.BaseValue,
			Habitat:        s.Habitat,
			Description:    s.Description,
		})
	}

	_, err := db.bunDB.NewInsert().
		Model(&rows).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("scientific_name = EXCLUDED.scientific_name").
		Set("rarity = EXCLUDED.rarity").
		Set("base_value = EXCLUDED.base_value").
		Set("habitat = EXCLUDED.habitat").
		Set("description = EXCLUDED.description").
		Exec(ctx)
	if err != nil {
		return err
	}

	slog.Info("Species catalog seeded",
		slog.String("type", "db"),
		slog.Int("species", len(rows)))
	return nil
}
