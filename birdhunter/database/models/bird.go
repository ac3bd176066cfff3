package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BirdSpecies struct {
	bun.BaseModel `bun:"table:bird_species,alias:bs"`

	ID             string `bun:"id,pk"`
	Name           string `bun:"name,notnull"`
	ScientificName string `bun:"scientific_name,notnull"`
	Rarity         string `bun:"rarity,notnull"`
	BaseValue      int64  `bun:"base_value,notnull"`
	Habitat        string `bun:"habitat,notnull"`
	Description    string `bun:"description,notnull"`
}

type OwnedBird struct {
	bun.BaseModel `bun:"table:owned_birds,alias:ob"`

	ID             int64     `bun:"id,pk,autoincrement"`
	OwnerID        string    `bun:"owner_id,notnull"`
	SpeciesID      string    `bun:"species_id,notnull"`
	CustomName     string    `bun:"custom_name,notnull,default:''"`
	BondLevel      int       `bun:"bond_level,notnull,default:1"`
	TimesObserved  int       `bun:"times_observed,notnull,default:0"`
	Version        int       `bun:"version,notnull,default:0"`
	CapturedAt     time.Time `bun:"captured_at,notnull,default:current_timestamp"`
	LastObservedAt time.Time `bun:"last_observed_at,nullzero"`
	ReleasedAt     time.Time `bun:"released_at,nullzero"`
	Sold           bool      `bun:"sold,notnull,default:false"`

	Species *BirdSpecies `bun:"rel:belongs-to,join:species_id=id"`
}

func (b *OwnedBird) Active() bool {
	return b.ReleasedAt.IsZero()
}

// DisplayName prefers the nickname the owner gave the bird.
func (b *OwnedBird) DisplayName() string {
	if b.CustomName != "" {
		return b.CustomName
	}
	if b.Species != nil {
		return b.Species.Name
	}
	return b.SpeciesID
}
