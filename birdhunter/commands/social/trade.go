package social

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/social"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Trade = discord.SlashCommandCreate{
	Name:        "trade",
	Description: "🤝 Offer a trade to another birder",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Who to trade with",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "offer_bird",
			Description: "Album number of the bird you give",
			MinValue:    utils.Ptr(1),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "offer_coins",
			Description: "Coins you give",
			MinValue:    utils.Ptr(0),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "request_bird",
			Description: "Album number of the bird you want",
			MinValue:    utils.Ptr(1),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "request_coins",
			Description: "Coins you want",
			MinValue:    utils.Ptr(0),
		},
	},
}

// describeSide renders one party's half of a trade.
func describeSide(ctx context.Context, b *birdhunter.Bot, ownerID string, birdID, coins int64, fee float64) string {
	var parts []string
	if birdID != 0 {
		if bird, err := b.Collection.Bird(ctx, ownerID, birdID); err == nil {
			parts = append(parts, utils.BirdLine(bird, b.Clock.Now()))
		} else {
			parts = append(parts, fmt.Sprintf("`#%d` (no longer available)", birdID))
		}
	}
	if coins > 0 {
		parts = append(parts, fmt.Sprintf("%s 🪙 (%s 🪙 fee)", utils.FormatCoins(coins),
			utils.FormatCoins(economy.TradeFee(coins, fee))))
	}
	if len(parts) == 0 {
		return "Nothing"
	}
	return strings.Join(parts, "\n")
}

func tradeEmbed(ctx context.Context, b *birdhunter.Bot, t *models.Trade) *discord.EmbedBuilder {
	fee := b.Social.Config().TradeFee
	offerOwner, requestOwner := t.InitiatorID, t.TargetID
	if t.Status == models.TradeAccepted {
		offerOwner, requestOwner = requestOwner, offerOwner
	}
	return discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("🤝 Trade #%d", t.ID)).
		SetDescription(fmt.Sprintf("<@%s> → <@%s>", t.InitiatorID, t.TargetID)).
		SetColor(config.InfoColor).
		AddField("Offered", describeSide(ctx, b, offerOwner, t.OfferBirdID, t.OfferCoins, fee), true).
		AddField("Requested", describeSide(ctx, b, requestOwner, t.RequestBirdID, t.RequestCoins, fee), true)
}

func tradeButtons(tradeID int64, disabled bool) []discord.ContainerComponent {
	id := strconv.FormatInt(tradeID, 10)
	return []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewSuccessButton("Accept", "/trade/accept/"+id).WithDisabled(disabled),
			discord.NewDangerButton("Decline", "/trade/decline/"+id).WithDisabled(disabled),
		),
	}
}

func TradeHandler(b *birdhunter.Bot) handler.CommandHandler {
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

		trade, err := b.Social.ProposeTrade(ctx, social.TradeOffer{
			InitiatorID:   user.UserID,
			TargetID:      target.ID.String(),
			OfferBirdID:   int64(data.Int("offer_bird")),
			OfferCoins:    int64(data.Int("offer_coins")),
			RequestBirdID: int64(data.Int("request_bird")),
			RequestCoins:  int64(data.Int("request_coins")),
		})
		if err != nil {
			return err
		}
		logger.LogGame("trade_proposed", user.UserID,
			slog.Int64("trade_id", trade.ID),
			slog.String("target_id", trade.TargetID))

		embed := tradeEmbed(ctx, b, trade).
			SetFooter("Expires", "").
			SetTimestamp(trade.ExpiresAt)

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetContent(target.Mention()+", you have a trade offer!").
			SetEmbeds(embed.Build()).
			SetContainerComponents(tradeButtons(trade.ID, false)...).
			Build())
	}
}

func TradeComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		tradeID, err := strconv.ParseInt(e.Vars["trade"], 10, 64)
		if err != nil {
			return gameerr.ErrTradeNotFound
		}
		userID := e.User().ID.String()

		var trade *models.Trade
		status := "❌ Declined"
		color := config.NeutralColor
		var notices []string
		switch e.Vars["choice"] {
		case "accept":
			if trade, err = b.Social.AcceptTrade(ctx, tradeID, userID); err != nil {
				return err
			}
			logger.LogGame("trade_completed", userID, slog.Int64("trade_id", trade.ID))
			notices = b.Advance(ctx, trade.TargetID, catalog.MetricTrades, 1)
			b.Advance(ctx, trade.InitiatorID, catalog.MetricTrades, 1)
			status, color = "✅ Completed", config.SuccessColor
		case "decline":
			if trade, err = b.Social.DeclineTrade(ctx, tradeID, userID); err != nil {
				return err
			}
			if trade.InitiatorID == userID {
				status = "🚫 Cancelled"
			}
		default:
			return fmt.Errorf("unknown trade choice %q", e.Vars["choice"])
		}

		embed := tradeEmbed(ctx, b, trade).
			SetColor(color).
			SetFooter(status, "")
		utils.AddNotices(embed, notices)

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.Build()},
			Components: utils.Ptr(tradeButtons(trade.ID, true)),
		})
	}
}
