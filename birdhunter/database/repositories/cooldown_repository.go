package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
)

type CooldownRepository struct {
	*BaseRepository
}

var _ cooldown.Repository = (*CooldownRepository)(nil)

func NewCooldownRepository(base *BaseRepository) *CooldownRepository {
	return &CooldownRepository{BaseRepository: base}
}

func (r *CooldownRepository) GetExpiry(ctx context.Context, userID, action string) (time.Time, error) {
	cd := new(models.Cooldown)
	err := r.conn(ctx).NewSelect().
		Model(cd).
		Where("user_id = ?", userID).
		Where("action = ?", action).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, r.HandleError("get", "cooldown", nil, err)
	}
	return cd.ExpiresAt, nil
}

func (r *CooldownRepository) SetExpiry(ctx context.Context, userID, action string, expiresAt time.Time) error {
	_, err := r.conn(ctx).NewInsert().
		Model(&models.Cooldown{UserID: userID, Action: action, ExpiresAt: expiresAt}).
		On("CONFLICT (user_id, action) DO UPDATE").
		Set("expires_at = EXCLUDED.expires_at").
		Exec(ctx)
	return r.HandleError("set", "cooldown", nil, err)
}

func (r *CooldownRepository) Delete(ctx context.Context, userID, action string) error {
	_, err := r.conn(ctx).NewDelete().
		Model((*models.Cooldown)(nil)).
		Where("user_id = ?", userID).
		Where("action = ?", action).
		Exec(ctx)
	return r.HandleError("delete", "cooldown", nil, err)
}

func (r *CooldownRepository) DeleteAllForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	res, err := r.conn(ctx).NewDelete().
		Model((*models.Cooldown)(nil)).
		Where("user_id = ?", userID).
		Where("expires_at > ?", now).
		Exec(ctx)
	if err != nil {
		return 0, r.HandleError("delete_all", "cooldown", nil, err)
	}
	return res.RowsAffected()
}

func (r *CooldownRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.conn(ctx).NewDelete().
		Model((*models.Cooldown)(nil)).
		Where("expires_at <= ?", before).
		Exec(ctx)
	if err != nil {
		return 0, r.HandleError("delete_expired", "cooldown", nil, err)
	}
	return res.RowsAffected()
}

func (r *CooldownRepository) ListActive(ctx context.Context, userID string, now time.Time) ([]*models.Cooldown, error) {
	var rows []*models.Cooldown
	err := r.conn(ctx).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Where("expires_at > ?", now).
		Order("expires_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "cooldown", nil, err)
	}
	return rows, nil
}
