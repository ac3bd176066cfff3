package social

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
	"github.com/birdwatchers/birdhunter/internal/domain/social"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Duel = discord.SlashCommandCreate{
	Name:        "duel",
	Description: "⚔️ Challenge another birder, flock against flock",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "opponent",
			Description: "Who to challenge",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "wager",
			Description: "Coins each side puts in the pot",
			MinValue:    utils.Ptr(0),
			MaxValue:    utils.Ptr(social.MaxWager),
		},
	},
}

func duelButtons(sessionID string, disabled bool) []discord.ContainerComponent {
	return []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewSuccessButton("⚔️ Accept", "/duel/accept/"+sessionID).WithDisabled(disabled),
			discord.NewSecondaryButton("Decline", "/duel/decline/"+sessionID).WithDisabled(disabled),
		),
	}
}

func DuelHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		data := e.SlashCommandInteractionData()
		opponent := data.User("opponent")
		if err := otherPlayer(ctx, b, e.User(), opponent); err != nil {
			return err
		}
		wager := int64(data.Int("wager"))
		if err := b.Social.CheckDuel(ctx, user.UserID, opponent.ID.String(), wager); err != nil {
			return err
		}

		// Only the opponent can answer the challenge.
		session := b.Duels.Open(opponent.ID.String(), birdhunter.DuelChallenge{
			Challenger: social.Duelist{UserID: user.UserID, Name: e.User().Username},
			Opponent:   social.Duelist{UserID: opponent.ID.String(), Name: opponent.Username},
			Wager:      wager,
		})

		stakes := "A friendly duel, no coins at stake."
		if wager > 0 {
			stakes = fmt.Sprintf("Each side puts **%s 🪙** in the pot. Winner takes it all plus %d 🪙.",
				utils.FormatCoins(wager), social.DuelPrize)
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetContent(opponent.Mention()+", you have been challenged!").
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle(fmt.Sprintf("⚔️ %s challenges %s", e.User().Username, opponent.Username)).
				SetDescription(stakes).
				SetColor(config.WarningColor).
				SetFooter(fmt.Sprintf("Accept within %s", utils.FormatDuration(config.DuelAcceptWindow)), "").
				Build()).
			SetContainerComponents(duelButtons(session.ID, false)...).
			Build())
	}
}

func DuelComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		sessionID := e.Vars["session"]
		session, err := b.Duels.Take(sessionID, e.User().ID.String())
		if err != nil {
			return err
		}
		duel := session.Data
		disabled := utils.Ptr(duelButtons(sessionID, true))

		if e.Vars["choice"] != "accept" {
			return e.UpdateMessage(discord.MessageUpdate{
				Embeds: &[]discord.Embed{discord.NewEmbedBuilder().
					SetDescription(fmt.Sprintf("%s declined the duel.", duel.Opponent.Name)).
					SetColor(config.NeutralColor).
					Build()},
				Components: disabled,
			})
		}

		if _, err := b.Player(ctx, e.User()); err != nil {
			return err
		}
		res, err := b.Social.ResolveDuel(ctx, duel.Challenger, duel.Opponent, duel.Wager)
		if err != nil {
			return err
		}
		metrics.CoinsEarned(social.DuelPrize)
		logger.LogGame("duel_resolved", res.Winner.UserID,
			slog.String("loser_id", res.Loser.UserID),
			slog.Int64("wager", res.Wager),
			slog.Int64("payout", res.Payout))
		notices := b.Advance(ctx, res.Winner.UserID, catalog.MetricDuelsWon, 1, birdhunter.Earned(res.Payout-res.Wager))

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("🏆 %s wins the duel!", res.Winner.Name)).
			SetDescription(fmt.Sprintf("<@%s>'s flock (strength %d) outflew <@%s>'s (strength %d).",
				res.Winner.UserID, res.WinnerStrength, res.Loser.UserID, res.LoserStrength)).
			SetColor(config.GoldColor).
			AddField("Payout", utils.FormatCoins(res.Payout)+" 🪙", true)
		if res.Wager > 0 {
			embed.AddField("Lost", fmt.Sprintf("%s: %s 🪙", res.Loser.Name, utils.FormatCoins(res.Wager)), true)
		}
		utils.AddNotices(embed, notices)

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.Build()},
			Components: disabled,
		})
	}
}
