package core

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

var Release = discord.SlashCommandCreate{
	Name:        "release",
	Description: "🕊️ Release one of your birds back into the wild",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "bird_id",
			Description: "Album number of the bird",
			Required:    true,
			MinValue:    utils.Ptr(1),
		},
	},
}

func ReleaseHandler(b *birdhunter.Bot) handler.CommandHandler {
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
		refund := collection.ReleaseRefund(sp.BaseValue, bird.BondLevel)

		session := b.Confirms.Open(user.UserID, birdhunter.PendingAction{
			Kind:     birdhunter.ActionRelease,
			BirdID:   bird.ID,
			BirdName: bird.DisplayName(),
			Amount:   refund,
		})

		embed := discord.NewEmbedBuilder().
			SetTitle("🕊️ Release " + bird.DisplayName() + "?").
			SetDescription(fmt.Sprintf("%s\n\nYou will get **%s 🪙** back. This cannot be undone.",
				utils.BirdLine(bird, b.Clock.Now()), utils.FormatCoins(refund))).
			SetColor(config.WarningColor).
			SetFooter("Expires in "+utils.FormatDuration(config.ConfirmTTL), "")

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(embed.Build()).
			SetContainerComponents(utils.ConfirmButtons("/release", session.ID, "Release", false)...).
			Build())
	}
}

func ReleaseComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		sessionID := e.Vars["session"]
		session, err := b.Confirms.Take(sessionID, e.User().ID.String())
		if err != nil {
			return err
		}
		pending := session.Data
		disabled := utils.Ptr(utils.ConfirmButtons("/release", sessionID, "Release", true))

		if e.Vars["choice"] != "confirm" {
			return e.UpdateMessage(discord.MessageUpdate{
				Embeds: &[]discord.Embed{discord.NewEmbedBuilder().
					SetDescription(fmt.Sprintf("%s stays in your album.", pending.BirdName)).
					SetColor(config.NeutralColor).
					Build()},
				Components: disabled,
			})
		}

		res, err := b.Collection.Release(ctx, session.OwnerID, pending.BirdID)
		if err != nil {
			return err
		}
		metrics.CoinsEarned(res.Amount)
		logger.LogGame("bird_released", session.OwnerID,
			slog.Int64("bird_id", pending.BirdID),
			slog.Int64("refund", res.Amount))

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds: &[]discord.Embed{discord.NewEmbedBuilder().
				SetTitle("🕊️ Released").
				SetDescription(fmt.Sprintf("**%s** flew off into the wild.\nRefund: **%s 🪙** • Wallet: **%s 🪙**",
					pending.BirdName, utils.FormatCoins(res.Amount), utils.FormatCoins(res.Wallet))).
				SetColor(config.SuccessColor).
				Build()},
			Components: disabled,
		})
	}
}
