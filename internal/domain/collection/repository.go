package collection

import (
	"context"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetUser(ctx context.Context, userID string) (*models.User, error)
	IncrementHunts(ctx context.Context, userID string) error
	IncrementCaught(ctx context.Context, userID string) error
	IncrementObservations(ctx context.Context, userID string) error

	InsertBird(ctx context.Context, bird *models.OwnedBird) error
	// GetBird returns an active bird of ownerID with its species, or ErrBirdNotFound.
	GetBird(ctx context.Context, ownerID string, birdID int64) (*models.OwnedBird, error)
	ListBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error)
	// RecordObservation applies the bond gain only if the row still carries version.
	// A lost race fails with ErrConcurrentUpdate.
	RecordObservation(ctx context.Context, birdID int64, version, bondDelta int, at time.Time) error
	// ReleaseBird marks an active bird released. Already released birds fail with ErrBirdNotFound.
	ReleaseBird(ctx context.Context, ownerID string, birdID int64, at time.Time, sold bool) error
	RenameBird(ctx context.Context, ownerID string, birdID int64, name string) error
}

// Wallet is the part of the economy a collection action pays through.
type Wallet interface {
	Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error)
	Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error)
	Inventory(ctx context.Context, userID string) (map[string]int, error)
	Consume(ctx context.Context, userID, itemID string, quantity int) error
}

type Cooldowns interface {
	Check(ctx context.Context, userID, action string) error
	Start(ctx context.Context, userID, action string, d time.Duration) error
}
