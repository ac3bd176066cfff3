package repositories

import (
	"context"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/uptrace/bun"
)

// BirdRepository stores owned birds and the hunt counters on the user row.
type BirdRepository struct {
	*BaseRepository
}

var _ collection.Repository = (*BirdRepository)(nil)

func NewBirdRepository(base *BaseRepository) *BirdRepository {
	return &BirdRepository{BaseRepository: base}
}

func (r *BirdRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, userID)
}

func (r *BirdRepository) increment(ctx context.Context, userID, column string) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.User)(nil)).
		Set("? = ? + 1", bun.Ident(column), bun.Ident(column)).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return r.HandleError("increment_"+column, "user", nil, err)
	}
	return affected(res, gameerr.ErrUserNotFound)
}

func (r *BirdRepository) IncrementHunts(ctx context.Context, userID string) error {
	return r.increment(ctx, userID, "total_hunts")
}

func (r *BirdRepository) IncrementCaught(ctx context.Context, userID string) error {
	return r.increment(ctx, userID, "total_caught")
}

func (r *BirdRepository) IncrementObservations(ctx context.Context, userID string) error {
	return r.increment(ctx, userID, "total_observations")
}

func (r *BirdRepository) InsertBird(ctx context.Context, bird *models.OwnedBird) error {
	_, err := r.conn(ctx).NewInsert().Model(bird).Exec(ctx)
	return r.HandleError("insert", "bird", nil, err)
}

func (r *BirdRepository) GetBird(ctx context.Context, ownerID string, birdID int64) (*models.OwnedBird, error) {
	return r.getBird(ctx, ownerID, birdID)
}

func (r *BirdRepository) ListBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error) {
	return r.listBirds(ctx, ownerID)
}

func (r *BirdRepository) RecordObservation(ctx context.Context, birdID int64, version, bondDelta int, at time.Time) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.OwnedBird)(nil)).
		Set("bond_level = bond_level + ?", bondDelta).
		Set("times_observed = times_observed + 1").
		Set("last_observed_at = ?", at).
		Set("version = version + 1").
		Where("id = ?", birdID).
		Where("version = ?", version).
		Where("released_at IS NULL").
		Exec(ctx)
	if err != nil {
		return r.HandleError("observe", "bird", nil, err)
	}
	return affected(res, gameerr.ErrConcurrentUpdate)
}

func (r *BirdRepository) ReleaseBird(ctx context.Context, ownerID string, birdID int64, at time.Time, sold bool) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.OwnedBird)(nil)).
		Set("released_at = ?", at).
		Set("sold = ?", sold).
		Set("version = version + 1").
		Where("id = ?", birdID).
		Where("owner_id = ?", ownerID).
		Where("released_at IS NULL").
		Exec(ctx)
	if err != nil {
		return r.HandleError("release", "bird", nil, err)
	}
	return affected(res, gameerr.ErrBirdNotFound)
}

func (r *BirdRepository) RenameBird(ctx context.Context, ownerID string, birdID int64, name string) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.OwnedBird)(nil)).
		Set("custom_name = ?", name).
		Where("id = ?", birdID).
		Where("owner_id = ?", ownerID).
		Where("released_at IS NULL").
		Exec(ctx)
	if err != nil {
		return r.HandleError("rename", "bird", nil, err)
	}
	return affected(res, gameerr.ErrBirdNotFound)
}
