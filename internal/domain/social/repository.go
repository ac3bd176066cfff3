package social

import (
	"context"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetUser(ctx context.Context, userID string) (*models.User, error)

	// CreateGuild inserts the guild and its owner membership. Taken names fail with ErrConflict.
	CreateGuild(ctx context.Context, guild *models.Guild) error
	AddMember(ctx context.Context, member *models.GuildMember) error
	// GuildOf returns the guild userID belongs to, or ErrGuildNotFound.
	GuildOf(ctx context.Context, userID string) (*models.Guild, error)
	GuildBySlug(ctx context.Context, slug string) (*models.Guild, error)
	ListMembers(ctx context.Context, guildID int64) ([]*models.GuildMember, error)

	InsertTrade(ctx context.Context, trade *models.Trade) error
	GetTrade(ctx context.Context, tradeID int64) (*models.Trade, error)
	// SetTradeStatus moves a trade from one status to another, failing with ErrTradeNotFound if it is no longer in from.
	SetTradeStatus(ctx context.Context, tradeID int64, from, to string, at time.Time) error
	ExpireTrades(ctx context.Context, now time.Time) (int64, error)

	GetBird(ctx context.Context, ownerID string, birdID int64) (*models.OwnedBird, error)
	ListBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error)
	// TransferBird reassigns an active bird, failing with ErrBirdNotFound if fromID no longer owns it.
	TransferBird(ctx context.Context, birdID int64, fromID, toID string) error
}

type Wallet interface {
	Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error)
	Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error)
	Transfer(ctx context.Context, fromID, toID string, amount int64, feeRate float64, reason string) (received, fee int64, err error)
}

type Cooldowns interface {
	Check(ctx context.Context, userID, action string) error
	Start(ctx context.Context, userID, action string, d time.Duration) error
}
