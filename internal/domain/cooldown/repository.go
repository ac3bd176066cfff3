package cooldown

import (
	"context"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
)

type Repository interface {
	// GetExpiry returns the zero time when no cooldown was ever stored.
	GetExpiry(ctx context.Context, userID, action string) (time.Time, error)
	SetExpiry(ctx context.Context, userID, action string, expiresAt time.Time) error
	Delete(ctx context.Context, userID, action string) error
	DeleteAllForUser(ctx context.Context, userID string, now time.Time) (int64, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
	ListActive(ctx context.Context, userID string, now time.Time) ([]*models.Cooldown, error)
}
