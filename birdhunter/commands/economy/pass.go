package economy

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/birdwatchers/birdhunter/birdhunter/metrics"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
)

var Pass = discord.SlashCommandCreate{
	Name:        "pass",
	Description: "🎫 The Birdwatcher Pass",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "status",
			Description: "Show your pass and the available plans",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "purchase",
			Description: "Buy or extend a pass",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "plan",
					Description: "Pass length",
					Required:    true,
					Choices:     planChoices(),
				},
			},
		},
	},
}

func planChoices() []discord.ApplicationCommandOptionChoiceString {
	plans := catalog.AllPassPlans()
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(plans))
	for _, p := range plans {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  fmt.Sprintf("%s (%s 🪙)", p.Name, utils.FormatCoins(p.Price)),
			Value: p.ID,
		})
	}
	return choices
}

func PassStatusHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}

		status := "No active pass."
		if user.IsPremium(b.Clock.Now()) {
			status = "Active, expires " + utils.Timestamp(user.PremiumUntil)
		}

		var plans strings.Builder
		for _, p := range catalog.AllPassPlans() {
			fmt.Fprintf(&plans, "**%s** • %d days • %s 🪙\n", p.Name, p.Days, utils.FormatCoins(p.Price))
		}

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle("🎫 Birdwatcher Pass").
				SetDescription(status).
				SetColor(config.GoldColor).
				AddField("Perks", fmt.Sprintf("Hunt cooldown reduced by %.0f%%", (1-collection.PremiumCooldownX)*100), false).
				AddField("Plans", plans.String(), false).
				Build()).
			Build())
	}
}

func PassPurchaseHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		planID := e.SlashCommandInteractionData().String("plan")
		until, err := b.Economy.BuyPass(ctx, user.UserID, planID)
		if err != nil {
			return err
		}
		plan, _ := catalog.PassPlanByID(planID)
		metrics.CoinsSpent(plan.Price)
		logger.LogGame("pass_purchased", user.UserID,
			slog.String("plan", plan.ID),
			slog.Time("until", until))

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle("🎫 Pass activated").
				SetDescription(fmt.Sprintf("**%s** purchased. Your pass now runs until %s.", plan.Name, utils.Timestamp(until))).
				SetColor(config.SuccessColor).
				Build()).
			Build())
	}
}

var Transactions = discord.SlashCommandCreate{
	Name:        "transactions",
	Description: "📜 Your recent coin history",
}

func TransactionsHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		entries, err := b.Economy.History(ctx, user.UserID, config.HistoryLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return utils.EH.CreateEphemeralInfo(e, "No transactions yet. Earn coins with `/hunt` or `/work`.")
		}

		totalPages := int(math.Ceil(float64(len(entries)) / float64(config.LedgerPerPage)))
		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.LedgerPerPage
				end := min(start+config.LedgerPerPage, len(entries))

				var desc strings.Builder
				for _, entry := range entries[start:end] {
					sign := "+"
					if entry.Amount < 0 {
						sign = "-"
					}
					fmt.Fprintf(&desc, "`%s%s` %s • %s\n", sign, utils.FormatCoins(abs(entry.Amount)),
						utils.Truncate(entry.Description, 60), utils.Timestamp(entry.CreatedAt))
				}
				embed.
					SetTitle("📜 Transactions").
					SetDescription(desc.String()).
					SetColor(config.PrimaryColor).
					SetFooter(fmt.Sprintf("Page %d/%d", page+1, totalPages), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, true)
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
