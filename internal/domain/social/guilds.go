package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/gosimple/slug"
)

const (
	MinGuildName        = 3
	MaxGuildName        = 32
	MaxGuildDescription = 200
)

// CreateGuild founds a guild owned by ownerID. A player can belong to one guild only.
func (s *Service) CreateGuild(ctx context.Context, ownerID, name, description string) (*models.Guild, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(name); n < MinGuildName || n > MaxGuildName {
		return nil, gameerr.Invalid("name", "must be between %d and %d characters", MinGuildName, MaxGuildName)
	}
	if utf8.RuneCountInString(description) > MaxGuildDescription {
		return nil, gameerr.Invalid("description", "must be at most %d characters", MaxGuildDescription)
	}
	guildSlug := slug.Make(name)
	if guildSlug == "" {
		return nil, gameerr.Invalid("name", "needs at least one letter or digit")
	}

	guild := &models.Guild{
		Name:        name,
		Slug:        guildSlug,
		OwnerID:     ownerID,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureGuildless(ctx, ownerID); err != nil {
			return err
		}
		if err := s.repo.CreateGuild(ctx, guild); err != nil {
			return err
		}
		return s.repo.AddMember(ctx, &models.GuildMember{
			GuildID:  guild.ID,
			UserID:   ownerID,
			Role:     models.GuildRoleOwner,
			JoinedAt: guild.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Guild created",
		slog.String("type", "game"),
		slog.String("user_id", ownerID),
		slog.String("guild", guild.Slug),
	)
	return guild, nil
}

// JoinGuild adds userID to the guild whose name slugs to query.
func (s *Service) JoinGuild(ctx context.Context, userID, query string) (*models.Guild, error) {
	var guild *models.Guild
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureGuildless(ctx, userID); err != nil {
			return err
		}
		var err error
		if guild, err = s.repo.GuildBySlug(ctx, slug.Make(query)); err != nil {
			return err
		}
		return s.repo.AddMember(ctx, &models.GuildMember{
			GuildID:  guild.ID,
			UserID:   userID,
			Role:     models.GuildRoleMember,
			JoinedAt: s.clock.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return guild, nil
}

func (s *Service) ensureGuildless(ctx context.Context, userID string) error {
	_, err := s.repo.GuildOf(ctx, userID)
	switch {
	case err == nil:
		return fmt.Errorf("already in a guild: %w", gameerr.ErrConflict)
	case errors.Is(err, gameerr.ErrGuildNotFound):
		return nil
	default:
		return err
	}
}

// Guild resolves a guild by name, or the caller's own guild when query is empty.
func (s *Service) Guild(ctx context.Context, userID, query string) (*models.Guild, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.GuildOf(ctx, userID)
	}
	return s.repo.GuildBySlug(ctx, slug.Make(query))
}

func (s *Service) Members(ctx context.Context, guildID int64) ([]*models.GuildMember, error) {
	return s.repo.ListMembers(ctx, guildID)
}
