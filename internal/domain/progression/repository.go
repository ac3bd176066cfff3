package progression

import (
	"context"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
)

type Board string

const (
	BoardWealth       Board = "wealth"
	BoardBirds        Board = "birds"
	BoardHunting      Board = "hunting"
	BoardObservations Board = "observations"
	BoardAchievements Board = "achievements"
)

var Boards = []Board{BoardWealth, BoardBirds, BoardHunting, BoardObservations, BoardAchievements}

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error)
	// CountLedger counts entries whose description starts with prefix.
	CountLedger(ctx context.Context, userID, prefix string) (int64, error)
	SumEarned(ctx context.Context, userID string) (int64, error)
	CountTrades(ctx context.Context, userID string) (int64, error)

	ListAchievements(ctx context.Context, userID string) ([]*models.UserAchievement, error)
	UpsertAchievement(ctx context.Context, a *models.UserAchievement) error
	// ClaimAchievement stamps claimed_at on an unlocked, unclaimed row or fails with ErrAchievementNotFound.
	ClaimAchievement(ctx context.Context, userID, achievementID string, at time.Time) error

	ListQuests(ctx context.Context, userID string) ([]*models.UserQuest, error)
	UpsertQuest(ctx context.Context, q *models.UserQuest) error
	// ClaimQuest moves a completed quest to claimed or fails with ErrQuestNotFound.
	ClaimQuest(ctx context.Context, userID, questID string, at time.Time) error

	// LeaderboardEntries returns every player's value for the board in registration order.
	LeaderboardEntries(ctx context.Context, board Board) ([]Entry, error)
}

type Wallet interface {
	Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error)
}
