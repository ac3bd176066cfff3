package utility

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"golang.org/x/sync/errgroup"
)

const (
	statsOverview   = "overview"
	statsHunting    = "hunting"
	statsCollection = "collection"
	statsEconomy    = "economy"
	statsSocial     = "social"
	statsGaming     = "gaming"
)

var Stats = discord.SlashCommandCreate{
	Name:        "stats",
	Description: "📊 Detailed birding statistics",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Whose statistics to show",
		},
		discord.ApplicationCommandOptionString{
			Name:        "category",
			Description: "Focus on one area",
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "🎯 Hunting", Value: statsHunting},
				{Name: "🐦 Collection", Value: statsCollection},
				{Name: "💰 Economy", Value: statsEconomy},
				{Name: "🤝 Social", Value: statsSocial},
				{Name: "🎮 Gaming", Value: statsGaming},
			},
		},
	},
}

type playerStats struct {
	snapshot     *progression.Snapshot
	achievements []progression.AchievementStatus
	quests       []progression.QuestStatus
}

func loadStats(ctx context.Context, b *birdhunter.Bot, userID string) (*playerStats, error) {
	var s playerStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		s.snapshot, err = b.Progression.Snapshot(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		s.achievements, err = b.Progression.Achievements(ctx, userID, "")
		return err
	})
	g.Go(func() error {
		var err error
		s.quests, err = b.Progression.Assign(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}

// successRate is captures per hunt as a whole percentage.
func successRate(hunts, captures int64) int64 {
	if hunts <= 0 {
		return 0
	}
	return min(captures*100/hunts, 100)
}

// rarestBird picks the highest tier bird, oldest first on ties.
func rarestBird(birds []*models.OwnedBird) (*models.OwnedBird, catalog.Species, bool) {
	var best *models.OwnedBird
	var bestSpecies catalog.Species
	bestTier := -1
	for _, bird := range birds {
		sp, ok := catalog.SpeciesByID(bird.SpeciesID)
		if !ok {
			continue
		}
		if tier := slices.Index(catalog.Rarities, sp.Rarity); tier > bestTier {
			best, bestSpecies, bestTier = bird, sp, tier
		}
	}
	return best, bestSpecies, best != nil
}

func statLines(pairs ...string) string {
	var sb strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&sb, "**%s:** %s\n", pairs[i], pairs[i+1])
	}
	return sb.String()
}

func statsEmbed(target discord.User, s *playerStats, category string) discord.Embed {
	snap := s.snapshot
	m := snap.Metrics
	user := snap.User

	eb := discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("📊 %s's Statistics", target.Username)).
		SetColor(config.PrimaryColor).
		SetThumbnail(target.EffectiveAvatarURL()).
		SetFooter("Birding since", "").
		SetTimestamp(user.CreatedAt)

	show := func(c string) bool { return category == "" || category == statsOverview || category == c }

	if show(statsHunting) {
		eb.AddField("🎯 Hunting", statLines(
			"Total hunts", utils.FormatCoins(m[catalog.MetricHunts]),
			"Captures", utils.FormatCoins(m[catalog.MetricCaptures]),
			"Success rate", fmt.Sprintf("%d%%", successRate(m[catalog.MetricHunts], m[catalog.MetricCaptures])),
		), true)
	}
	if show(statsCollection) {
		total := len(catalog.AllSpecies())
		rarest := "None yet"
		if bird, sp, ok := rarestBird(snap.Birds); ok {
			rarest = fmt.Sprintf("%s %s %s", sp.Rarity.Info().Emoji, sp.Name, progression.StarString(bird.BondLevel))
		}
		eb.AddField("🐦 Collection", statLines(
			"Birds", utils.FormatCoins(int64(len(snap.Birds))),
			"Species", fmt.Sprintf("%d/%d (%d%%)", m[catalog.MetricDistinctBirds], total,
				progression.CompletionPercent(int(m[catalog.MetricDistinctBirds]), total)),
			"Value", utils.FormatCoins(snap.CollectionValue())+" 🪙",
			"Observations", utils.FormatCoins(m[catalog.MetricObservations]),
			"Rarest find", rarest,
		), true)
	}
	if show(statsEconomy) {
		eb.AddField("💰 Economy", statLines(
			"Wallet", utils.FormatCoins(user.WalletBalance)+" 🪙",
			"Bank", utils.FormatCoins(user.BankBalance)+" 🪙",
			"Net worth", utils.FormatCoins(snap.NetWorth())+" 🪙",
			"Lifetime earnings", utils.FormatCoins(m[catalog.MetricCoinsEarned])+" 🪙",
			"Work shifts", utils.FormatCoins(m[catalog.MetricWorkShifts]),
		), true)
	}
	if show(statsSocial) {
		eb.AddField("🤝 Social", statLines(
			"Gifts sent", utils.FormatCoins(m[catalog.MetricGiftsSent]),
			"Trades", utils.FormatCoins(m[catalog.MetricTrades]),
		), true)
	}
	if show(statsGaming) {
		unlocked := 0
		for _, a := range s.achievements {
			if a.Unlocked {
				unlocked++
			}
		}
		done := 0
		for _, q := range s.quests {
			if q.Row.Status == models.QuestCompleted || q.Row.Status == models.QuestClaimed {
				done++
			}
		}
		eb.AddField("🎮 Gaming", statLines(
			"Duels won", utils.FormatCoins(m[catalog.MetricDuelsWon]),
			"Minigames won", utils.FormatCoins(m[catalog.MetricMinigamesWon]),
			"Achievements", fmt.Sprintf("%d/%d", unlocked, len(s.achievements)),
			"Quests this period", fmt.Sprintf("%d/%d", done, len(s.quests)),
		), true)
	}
	return eb.Build()
}

func StatsHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.StatsQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		target := e.User()
		if u, ok := data.OptUser("user"); ok {
			target = u
		}
		if _, err := b.Player(ctx, target); err != nil {
			return err
		}
		s, err := loadStats(ctx, b, target.ID.String())
		if err != nil {
			return err
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(statsEmbed(target, s, data.String("category"))).
			Build())
	}
}
