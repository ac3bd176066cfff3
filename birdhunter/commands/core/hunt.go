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

var Hunt = discord.SlashCommandCreate{
	Name:        "hunt",
	Description: "🔭 Head out and look for a wild bird",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "equipment",
			Description: "Trap or attractant to bring along",
			Choices:     equipmentChoices(),
		},
		discord.ApplicationCommandOptionBool{
			Name:        "lucky_charm",
			Description: "Use a Lucky Charm for better odds",
		},
	},
}

func equipmentChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := []discord.ApplicationCommandOptionChoiceString{{Name: "None", Value: "none"}}
	for _, it := range catalog.HuntEquipment() {
		if it.ID == collection.LuckyCharmID {
			continue
		}
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  fmt.Sprintf("%s %s (+%.0f%%)", it.Emoji, it.Name, it.Effect.HuntBonus*100),
			Value: it.ID,
		})
	}
	return choices
}

const (
	encounterCapture = "capture"
	encounterObserve = "observe"
	encounterLeave   = "leave"
)

func encounterButtons(sessionID string, disabled bool) []discord.ContainerComponent {
	return []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewSuccessButton("🪤 Capture", "/hunt/"+encounterCapture+"/"+sessionID).WithDisabled(disabled),
			discord.NewPrimaryButton("👀 Observe only", "/hunt/"+encounterObserve+"/"+sessionID).WithDisabled(disabled),
			discord.NewSecondaryButton("🚶 Leave", "/hunt/"+encounterLeave+"/"+sessionID).WithDisabled(disabled),
		),
	}
}

func HuntHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}

		data := e.SlashCommandInteractionData()
		res, err := b.Collection.Hunt(ctx, collection.HuntRequest{
			UserID:     user.UserID,
			Equipment:  data.String("equipment"),
			LuckyCharm: data.Bool("lucky_charm"),
		})
		if err != nil {
			return err
		}
		metrics.CoinsSpent(res.Cost)
		notices := b.Advance(ctx, user.UserID, catalog.MetricHunts, 1)

		footer := fmt.Sprintf("Cost %s 🪙 • Wallet %s 🪙 • Next hunt in %s",
			utils.FormatCoins(res.Cost), utils.FormatCoins(res.Wallet), utils.FormatDuration(res.Cooldown))

		if res.Missed {
			embed := discord.NewEmbedBuilder().
				SetTitle("🍃 Nothing but rustling leaves").
				SetDescription("You waited patiently, but every bird stayed out of sight this time.").
				SetColor(config.NeutralColor).
				SetFooter(footer, "")
			utils.AddNotices(embed, notices)
			return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(embed.Build()).Build())
		}

		session := b.Encounters.Open(user.UserID, birdhunter.Encounter{Species: res.Species, Bonus: res.Bonus})
		embed := utils.SpeciesEmbed(res.Species, b.Thumbnail(ctx, res.Species)).
			SetAuthor(fmt.Sprintf("%s spotted a bird!", e.User().Username), "", "").
			SetFooter(footer, "")
		if len(res.Consumed) > 0 {
			embed.AddField("Used up", fmt.Sprintf("%d consumable item(s)", len(res.Consumed)), true)
		}
		utils.AddNotices(embed, notices)

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(embed.Build()).
			SetContainerComponents(encounterButtons(session.ID, false)...).
			Build())
	}
}

// EncounterComponent resolves the capture / observe only / leave choice.
func EncounterComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		action, sessionID := e.Vars["action"], e.Vars["session"]
		userID := e.User().ID.String()
		session, err := b.Encounters.Take(sessionID, userID)
		if err != nil {
			return err
		}
		sp := session.Data.Species
		thumb := b.Thumbnail(ctx, sp)

		var embed *discord.EmbedBuilder
		switch action {
		case encounterCapture:
			bird, err := b.Collection.Capture(ctx, userID, sp.ID)
			if err != nil {
				return err
			}
			metrics.BirdCaptured(string(sp.Rarity))
			logger.LogGame("bird_captured", userID,
				slog.String("species", sp.ID),
				slog.String("rarity", string(sp.Rarity)),
				slog.Int64("bird_id", bird.ID))

			embed = utils.SpeciesEmbed(sp, thumb).
				SetTitle(fmt.Sprintf("🎉 %s captured!", sp.Name)).
				SetFooter(fmt.Sprintf("Added to your album as #%d • /observe %d to bond with it", bird.ID, bird.ID), "")
			utils.AddNotices(embed, b.Advance(ctx, userID, catalog.MetricCaptures, 1))
		case encounterObserve:
			embed = utils.SpeciesEmbed(sp, thumb).
				SetTitle(fmt.Sprintf("👀 You watched the %s for a while", sp.Name)).
				SetFooter("It flew off once you were done. No capture this time.", "")
		case encounterLeave:
			embed = discord.NewEmbedBuilder().
				SetTitle("🚶 You left it in peace").
				SetDescription(fmt.Sprintf("The **%s** goes back to its business.", sp.Name)).
				SetColor(config.NeutralColor)
		default:
			return fmt.Errorf("unknown encounter action %q", action)
		}

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.Build()},
			Components: utils.Ptr(encounterButtons(sessionID, true)),
		})
	}
}
