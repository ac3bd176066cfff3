package economy

import (
	"context"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetUser(ctx context.Context, userID string) (*models.User, error)
	// CreateUser inserts the row unless it already exists.
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUsername(ctx context.Context, userID, username string) error
	// AdjustWallet adds delta and returns the new wallet. A result below zero fails with ErrInsufficientFunds.
	AdjustWallet(ctx context.Context, userID string, delta int64) (int64, error)
	MoveToBank(ctx context.Context, userID string, amount, maxBank int64) (*models.User, error)
	MoveFromBank(ctx context.Context, userID string, amount int64) (*models.User, error)
	AccrueInterest(ctx context.Context, rate float64, maxBank int64) (int64, error)
	SetLastWork(ctx context.Context, userID string, at time.Time) error
	SetPremiumUntil(ctx context.Context, userID string, until time.Time) error
	UpdateProfile(ctx context.Context, userID, title, bio string) error

	AppendLedger(ctx context.Context, entry *models.LedgerEntry) error
	// SumSpentSince totals spend entries whose description starts with prefix.
	SumSpentSince(ctx context.Context, userID, prefix string, since time.Time) (int64, error)
	RecentLedger(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error)

	GetItems(ctx context.Context, userID string) (map[string]int, error)
	AddItem(ctx context.Context, userID, itemID string, quantity int) error
	// ConsumeItem fails with ErrItemNotFound when fewer than quantity are held.
	ConsumeItem(ctx context.Context, userID, itemID string, quantity int) error
}

// Cooldowns is the slice of the cooldown tracker the economy needs.
type Cooldowns interface {
	Check(ctx context.Context, userID, action string) error
	Start(ctx context.Context, userID, action string, d time.Duration) error
	Clear(ctx context.Context, userID, action string) error
	ClearAll(ctx context.Context, userID string) (int64, error)
}
