package economy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/birdwatchers/birdhunter/birdhunter/metrics"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Sell = discord.SlashCommandCreate{
	Name:        "sell",
	Description: "🏷️ Sell one of your birds to a sanctuary",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "bird_id",
			Description: "Album number of the bird",
			Required:    true,
			MinValue:    utils.Ptr(1),
		},
	},
}

func SellHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		bird, err := b.Collection.Bird(ctx, user.UserID, int64(e.SlashCommandInteractionData().Int("bird_id")))
		if err != nil {
			return err
		}
		sp, _ := catalog.SpeciesByID(bird.SpeciesID)
		price := collection.SaleValue(sp.BaseValue, bird.BondLevel)

		session := b.Confirms.Open(user.UserID, birdhunter.PendingAction{
			Kind:     birdhunter.ActionSell,
			BirdID:   bird.ID,
			BirdName: bird.DisplayName(),
			Amount:   price,
		})

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle("🏷️ Sell " + bird.DisplayName() + "?").
				SetDescription(fmt.Sprintf("%s\n\nThe sanctuary offers **%s 🪙**.",
					utils.BirdLine(bird, b.Clock.Now()), utils.FormatCoins(price))).
				SetColor(config.WarningColor).
				SetFooter("Expires in "+utils.FormatDuration(config.ConfirmTTL), "").
				Build()).
			SetContainerComponents(utils.ConfirmButtons("/sell", session.ID, "Sell", false)...).
			Build())
	}
}

func SellComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		sessionID := e.Vars["session"]
		session, err := b.Confirms.Take(sessionID, e.User().ID.String())
		if err != nil {
			return err
		}
		pending := session.Data
		disabled := utils.Ptr(utils.ConfirmButtons("/sell", sessionID, "Sell", true))

		if e.Vars["choice"] != "confirm" {
			return e.UpdateMessage(discord.MessageUpdate{
				Embeds: &[]discord.Embed{discord.NewEmbedBuilder().
					SetDescription(fmt.Sprintf("You kept %s.", pending.BirdName)).
					SetColor(config.NeutralColor).
					Build()},
				Components: disabled,
			})
		}

		res, err := b.Collection.Sell(ctx, session.OwnerID, pending.BirdID)
		if err != nil {
			return err
		}
		metrics.CoinsEarned(res.Amount)
		logger.LogGame("bird_sold", session.OwnerID,
			slog.Int64("bird_id", pending.BirdID),
			slog.Int64("price", res.Amount))
		notices := b.Advance(ctx, session.OwnerID, catalog.MetricCoinsEarned, res.Amount)

		embed := discord.NewEmbedBuilder().
			SetTitle("🏷️ Sold").
			SetDescription(fmt.Sprintf("**%s** went to a good home.\nEarned: **%s 🪙** • Wallet: **%s 🪙**",
				pending.BirdName, utils.FormatCoins(res.Amount), utils.FormatCoins(res.Wallet))).
			SetColor(config.SuccessColor)
		utils.AddNotices(embed, notices)

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.Build()},
			Components: disabled,
		})
	}
}
