package birdhunter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/disgoorg/disgo/discord"
)

// Player makes sure the Discord user has a game profile.
func (b *Bot) Player(ctx context.Context, u discord.User) (*models.User, error) {
	return b.Economy.EnsureUser(ctx, u.ID.String(), u.Username)
}

// Step is one increment of a quest metric.
type Step struct {
	Metric catalog.Metric
	Delta  int64
}

// Earned is the coins-earned step for a payout.
func Earned(amount int64) Step {
	return Step{Metric: catalog.MetricCoinsEarned, Delta: amount}
}

// Advance feeds a finished action into quests and achievements and returns
// one notice line per quest completed or achievement unlocked. Failures are
// logged; the action itself already succeeded.
func (b *Bot) Advance(ctx context.Context, userID string, metric catalog.Metric, delta int64, more ...Step) []string {
	var notices []string

	for _, step := range append([]Step{{Metric: metric, Delta: delta}}, more...) {
		quests, err := b.Progression.Track(ctx, userID, step.Metric, step.Delta)
		if err != nil {
			slog.Error("Failed to track quest progress",
				slog.String("type", "game"),
				slog.String("user_id", userID),
				slog.String("metric", string(step.Metric)),
				slog.Any("error", err))
		}
		for _, q := range quests {
			notices = append(notices, fmt.Sprintf("📜 Quest complete: **%s**. Claim it with `/quests`.", q.Name))
		}
	}

	unlocked, err := b.Progression.Evaluate(ctx, userID)
	if err != nil {
		slog.Error("Failed to evaluate achievements",
			slog.String("type", "game"),
			slog.String("user_id", userID),
			slog.Any("error", err))
	}
	for _, a := range unlocked {
		notices = append(notices, fmt.Sprintf("%s Achievement unlocked: **%s**. Claim it with `/achievements`.", a.Emoji, a.Name))
	}
	return notices
}

// Thumbnail returns the species artwork URL, or "" when none is available.
func (b *Bot) Thumbnail(ctx context.Context, sp catalog.Species) string {
	if b.Images == nil {
		return ""
	}
	url, _ := b.Images.ThumbnailURL(ctx, sp)
	return url
}
