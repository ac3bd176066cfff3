package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
)

// ProgressRepository backs achievements, quests and the leaderboards.
type ProgressRepository struct {
	*BaseRepository
}

var _ progression.Repository = (*ProgressRepository)(nil)

func NewProgressRepository(base *BaseRepository) *ProgressRepository {
	return &ProgressRepository{BaseRepository: base}
}

func (r *ProgressRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, userID)
}

func (r *ProgressRepository) ListBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error) {
	return r.listBirds(ctx, ownerID)
}

func (r *ProgressRepository) CountLedger(ctx context.Context, userID, prefix string) (int64, error) {
	n, err := r.conn(ctx).NewSelect().
		Model((*models.LedgerEntry)(nil)).
		Where("user_id = ?", userID).
		Where("description LIKE ? ESCAPE '!'", likePrefix(prefix)).
		Count(ctx)
	if err != nil {
		return 0, r.HandleError("count", "ledger", nil, err)
	}
	return int64(n), nil
}

func (r *ProgressRepository) SumEarned(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.conn(ctx).NewSelect().
		Model((*models.LedgerEntry)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Where("kind = ?", models.LedgerEarn).
		Scan(ctx, &total)
	if err != nil {
		return 0, r.HandleError("sum_earned", "ledger", nil, err)
	}
	return total, nil
}

func (r *ProgressRepository) CountTrades(ctx context.Context, userID string) (int64, error) {
	n, err := r.conn(ctx).NewSelect().
		Model((*models.Trade)(nil)).
		Where("status = ?", models.TradeAccepted).
		Where("initiator_id = ? OR target_id = ?", userID, userID).
		Count(ctx)
	if err != nil {
		return 0, r.HandleError("count", "trades", nil, err)
	}
	return int64(n), nil
}

func (r *ProgressRepository) ListAchievements(ctx context.Context, userID string) ([]*models.UserAchievement, error) {
	var rows []*models.UserAchievement
	err := r.conn(ctx).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "achievements", nil, err)
	}
	return rows, nil
}

func (r *ProgressRepository) UpsertAchievement(ctx context.Context, a *models.UserAchievement) error {
	_, err := r.conn(ctx).NewInsert().
		Model(a).
		On("CONFLICT (user_id, achievement_id) DO UPDATE").
		Set("progress = EXCLUDED.progress").
		Set("target = EXCLUDED.target").
		Set("unlocked_at = EXCLUDED.unlocked_at").
		Exec(ctx)
	return r.HandleError("upsert", "achievement", nil, err)
}

func (r *ProgressRepository) ClaimAchievement(ctx context.Context, userID, achievementID string, at time.Time) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.UserAchievement)(nil)).
		Set("claimed_at = ?", at).
		Where("user_id = ?", userID).
		Where("achievement_id = ?", achievementID).
		Where("unlocked_at IS NOT NULL").
		Where("claimed_at IS NULL").
		Exec(ctx)
	if err != nil {
		return r.HandleError("claim", "achievement", nil, err)
	}
	return affected(res, gameerr.ErrAchievementNotFound)
}

func (r *ProgressRepository) ListQuests(ctx context.Context, userID string) ([]*models.UserQuest, error) {
	var rows []*models.UserQuest
	err := r.conn(ctx).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "quests", nil, err)
	}
	return rows, nil
}

func (r *ProgressRepository) UpsertQuest(ctx context.Context, q *models.UserQuest) error {
	_, err := r.conn(ctx).NewInsert().
		Model(q).
		On("CONFLICT (user_id, quest_id) DO UPDATE").
		Set("progress = EXCLUDED.progress").
		Set("target = EXCLUDED.target").
		Set("status = EXCLUDED.status").
		Set("period_start = EXCLUDED.period_start").
		Set("expires_at = EXCLUDED.expires_at").
		Set("completed_at = EXCLUDED.completed_at").
		Set("claimed_at = EXCLUDED.claimed_at").
		Exec(ctx)
	return r.HandleError("upsert", "quest", nil, err)
}

func (r *ProgressRepository) ClaimQuest(ctx context.Context, userID, questID string, at time.Time) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.UserQuest)(nil)).
		Set("status = ?", models.QuestClaimed).
		Set("claimed_at = ?", at).
		Where("user_id = ?", userID).
		Where("quest_id = ?", questID).
		Where("status = ?", models.QuestCompleted).
		Where("expires_at > ?", at).
		Exec(ctx)
	if err != nil {
		return r.HandleError("claim", "quest", nil, err)
	}
	return affected(res, gameerr.ErrQuestNotFound)
}

// leaderboardValues maps each board onto the expression ranked for it.
var leaderboardValues = map[progression.Board]string{
	progression.BoardWealth:       "u.wallet_balance + u.bank_balance",
	progression.BoardHunting:      "u.total_hunts",
	progression.BoardObservations: "u.total_observations",
	progression.BoardBirds:        "(SELECT COUNT(*) FROM owned_birds AS ob WHERE ob.owner_id = u.user_id AND ob.released_at IS NULL)",
	progression.BoardAchievements: "(SELECT COUNT(*) FROM user_achievements AS ua WHERE ua.user_id = u.user_id AND ua.unlocked_at IS NOT NULL)",
}

func (r *ProgressRepository) LeaderboardEntries(ctx context.Context, board progression.Board) ([]progression.Entry, error) {
	expr, ok := leaderboardValues[board]
	if !ok {
		return nil, fmt.Errorf("unknown board %q: %w", board, gameerr.ErrValidation)
	}

	var rows []struct {
		UserID   string `bun:"user_id"`
		Username string `bun:"username"`
		Value    int64  `bun:"value"`
	}
	err := r.conn(ctx).NewSelect().
		Model((*models.User)(nil)).
		Column("u.user_id", "u.username").
		ColumnExpr(expr+" AS value").
		OrderExpr("u.created_at ASC, u.user_id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, r.HandleError("leaderboard", string(board), nil, err)
	}

	entries := make([]progression.Entry, len(rows))
	for i, row := range rows {
		entries[i] = progression.Entry{UserID: row.UserID, Username: row.Username, Value: row.Value}
	}
	return entries, nil
}
