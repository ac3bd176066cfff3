package repositories

import (
	"context"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/social"
)

// SocialRepository stores guilds and trades.
type SocialRepository struct {
	*BaseRepository
}

var _ social.Repository = (*SocialRepository)(nil)

func NewSocialRepository(base *BaseRepository) *SocialRepository {
	return &SocialRepository{BaseRepository: base}
}

func (r *SocialRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, userID)
}

func (r *SocialRepository) CreateGuild(ctx context.Context, guild *models.Guild) error {
	_, err := r.conn(ctx).NewInsert().Model(guild).Exec(ctx)
	return r.HandleError("create", "guild", nil, err)
}

func (r *SocialRepository) AddMember(ctx context.Context, member *models.GuildMember) error {
	_, err := r.conn(ctx).NewInsert().Model(member).Exec(ctx)
	return r.HandleError("add", "guild member", nil, err)
}

func (r *SocialRepository) GuildOf(ctx context.Context, userID string) (*models.Guild, error) {
	guild := new(models.Guild)
	err := r.conn(ctx).NewSelect().
		Model(guild).
		Join("JOIN guild_members AS gm ON gm.guild_id = g.id").
		Where("gm.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("guild_of", "guild", gameerr.ErrGuildNotFound, err)
	}
	return guild, nil
}

func (r *SocialRepository) GuildBySlug(ctx context.Context, slug string) (*models.Guild, error) {
	guild := new(models.Guild)
	err := r.conn(ctx).NewSelect().
		Model(guild).
		Where("slug = ?", slug).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "guild", gameerr.ErrGuildNotFound, err)
	}
	return guild, nil
}

func (r *SocialRepository) ListMembers(ctx context.Context, guildID int64) ([]*models.GuildMember, error) {
	var members []*models.GuildMember
	err := r.conn(ctx).NewSelect().
		Model(&members).
		Where("guild_id = ?", guildID).
		OrderExpr("joined_at ASC, user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "guild members", nil, err)
	}
	return members, nil
}

func (r *SocialRepository) InsertTrade(ctx context.Context, trade *models.Trade) error {
	_, err := r.conn(ctx).NewInsert().Model(trade).Exec(ctx)
	return r.HandleError("insert", "trade", nil, err)
}

func (r *SocialRepository) GetTrade(ctx context.Context, tradeID int64) (*models.Trade, error) {
	trade := new(models.Trade)
	err := r.conn(ctx).NewSelect().
		Model(trade).
		Where("id = ?", tradeID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "trade", gameerr.ErrTradeNotFound, err)
	}
	return trade, nil
}

func (r *SocialRepository) SetTradeStatus(ctx context.Context, tradeID int64, from, to string, at time.Time) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.Trade)(nil)).
		Set("status = ?", to).
		Set("completed_at = ?", at).
		Where("id = ?", tradeID).
		Where("status = ?", from).
		Exec(ctx)
	if err != nil {
		return r.HandleError("set_status", "trade", nil, err)
	}
	return affected(res, gameerr.ErrTradeNotFound)
}

func (r *SocialRepository) ExpireTrades(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.Trade)(nil)).
		Set("status = ?", models.TradeExpired).
		Set("completed_at = ?", now).
		Where("status = ?", models.TradePending).
		Where("expires_at <= ?", now).
		Exec(ctx)
	if err != nil {
		return 0, r.HandleError("expire", "trades", nil, err)
	}
	return res.RowsAffected()
}

func (r *SocialRepository) GetBird(ctx context.Context, ownerID string, birdID int64) (*models.OwnedBird, error) {
	return r.getBird(ctx, ownerID, birdID)
}

func (r *SocialRepository) ListBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error) {
	return r.listBirds(ctx, ownerID)
}

func (r *SocialRepository) TransferBird(ctx context.Context, birdID int64, fromID, toID string) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.OwnedBird)(nil)).
		Set("owner_id = ?", toID).
		Set("version = version + 1").
		Where("id = ?", birdID).
		Where("owner_id = ?", fromID).
		Where("released_at IS NULL").
		Exec(ctx)
	if err != nil {
		return r.HandleError("transfer", "bird", nil, err)
	}
	return affected(res, gameerr.ErrBirdNotFound)
}
