package social

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Gift = discord.SlashCommandCreate{
	Name:        "gift",
	Description: "🎁 Send coins to another birder",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Who gets the coins",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "How many coins",
			Required:    true,
			MinValue:    utils.Ptr(1),
			MaxValue:    utils.Ptr(economy.MaxGiftAmount),
		},
		discord.ApplicationCommandOptionString{
			Name:        "message",
			Description: "A note for the recipient",
			MaxLength:   utils.Ptr(economy.MaxGiftMessage),
		},
	},
}

// otherPlayer resolves the user option into a game profile, refusing bots and the caller.
func otherPlayer(ctx context.Context, b *birdhunter.Bot, caller, target discord.User) error {
	if target.Bot {
		return gameerr.Invalid("user", "bots do not play the game")
	}
	if target.ID == caller.ID {
		return gameerr.Invalid("user", "pick someone other than yourself")
	}
	_, err := b.Player(ctx, target)
	return err
}

func GiftHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		data := e.SlashCommandInteractionData()
		target := data.User("user")
		if err := otherPlayer(ctx, b, e.User(), target); err != nil {
			return err
		}
		amount := int64(data.Int("amount"))
		if amount > user.WalletBalance {
			return gameerr.ErrInsufficientFunds
		}

		session := b.Confirms.Open(user.UserID, birdhunter.PendingAction{
			Kind:       birdhunter.ActionGift,
			Amount:     amount,
			TargetID:   target.ID.String(),
			TargetName: target.Username,
			Message:    strings.TrimSpace(data.String("message")),
		})

		return e.Modal(discord.ModalCreate{
			CustomID: "/gift/submit/" + session.ID,
			Title:    utils.Truncate(fmt.Sprintf("Gift %s coins to %s", utils.FormatCoins(amount), target.Username), 45),
			Components: []discord.ContainerComponent{
				discord.NewActionRow(discord.TextInputComponent{
					CustomID:    "confirm",
					Style:       discord.TextInputStyleShort,
					Label:       fmt.Sprintf("Type %s to send the gift", config.GiftConfirmWord),
					MaxLength:   len(config.GiftConfirmWord),
					Required:    true,
					Placeholder: config.GiftConfirmWord,
				}),
			},
		})
	}
}

func GiftModalHandler(b *birdhunter.Bot) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		session, err := b.Confirms.Take(e.Vars["session"], e.User().ID.String())
		if err != nil {
			return err
		}
		if strings.TrimSpace(e.Data.Text("confirm")) != config.GiftConfirmWord {
			return gameerr.Invalid("confirmation", "type %s to send the gift", config.GiftConfirmWord)
		}

		pending := session.Data
		res, err := b.Economy.Gift(ctx, economy.GiftRequest{
			SenderID:      session.OwnerID,
			SenderName:    e.User().Username,
			RecipientID:   pending.TargetID,
			RecipientName: pending.TargetName,
			Amount:        pending.Amount,
			Message:       pending.Message,
		})
		if err != nil {
			return err
		}
		logger.LogGame("gift_sent", session.OwnerID,
			slog.String("recipient_id", pending.TargetID),
			slog.Int64("amount", pending.Amount))
		notices := b.Advance(ctx, session.OwnerID, catalog.MetricGiftsSent, 1)

		desc := fmt.Sprintf("<@%s> received **%s 🪙** from %s.", pending.TargetID, utils.FormatCoins(pending.Amount), e.User().Mention())
		if pending.Message != "" {
			desc += "\n> " + pending.Message
		}
		embed := discord.NewEmbedBuilder().
			SetTitle("🎁 Gift sent").
			SetDescription(desc).
			SetColor(config.SuccessColor).
			SetFooter(fmt.Sprintf("Your wallet: %s 🪙 • Gift allowance left today: %s 🪙",
				utils.FormatCoins(res.SenderWallet), utils.FormatCoins(res.RemainingToday)), "")
		utils.AddNotices(embed, notices)

		return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(embed.Build()).Build())
	}
}
