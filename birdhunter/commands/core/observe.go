package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/metrics"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Observe = discord.SlashCommandCreate{
	Name:        "observe",
	Description: "🔍 Spend time watching one of your birds",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "bird_id",
			Description: "Album number of the bird",
			Required:    true,
			MinValue:    utils.Ptr(1),
		},
	},
}

func ObserveHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		if err := b.Cooldowns.Check(ctx, user.UserID, cooldown.ActionObserve); err != nil {
			return err
		}

		birdID := int64(e.SlashCommandInteractionData().Int("bird_id"))
		bird, err := b.Collection.Bird(ctx, user.UserID, birdID)
		if err != nil {
			return err
		}
		if rest := collection.RestRemaining(bird.LastObservedAt, b.Clock.Now()); rest > 0 {
			return &gameerr.RestingError{Remaining: rest}
		}

		return e.Modal(observeModal(bird.ID, bird.DisplayName()))
	}
}

func observeModal(birdID int64, name string) discord.ModalCreate {
	return discord.ModalCreate{
		CustomID: fmt.Sprintf("/observe/submit/%d", birdID),
		Title:    utils.Truncate("Observe "+name, 45),
		Components: []discord.ContainerComponent{
			discord.NewActionRow(discord.TextInputComponent{
				CustomID:    "minutes",
				Style:       discord.TextInputStyleShort,
				Label:       fmt.Sprintf("Minutes (%d-%d)", collection.MinObserveMinutes, collection.MaxObserveMinutes),
				MinLength:   utils.Ptr(2),
				MaxLength:   3,
				Required:    true,
				Placeholder: "30",
			}),
			discord.NewActionRow(discord.TextInputComponent{
				CustomID:    "notes",
				Style:       discord.TextInputStyleParagraph,
				Label:       "Field notes",
				MinLength:   utils.Ptr(config.MinNotesLength),
				MaxLength:   config.MaxNotesLength,
				Required:    true,
				Placeholder: "What is it doing? Plumage, song, behaviour...",
			}),
		},
	}
}

// parseObservation validates the modal fields before any state changes.
func parseObservation(minutesText, notes string) (int, string, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesText))
	if err != nil || minutes < collection.MinObserveMinutes || minutes > collection.MaxObserveMinutes {
		return 0, "", gameerr.Invalid("minutes", "must be a whole number between %d and %d",
			collection.MinObserveMinutes, collection.MaxObserveMinutes)
	}
	notes = strings.TrimSpace(notes)
	if n := utf8.RuneCountInString(notes); n < config.MinNotesLength || n > config.MaxNotesLength {
		return 0, "", gameerr.Invalid("notes", "must be between %d and %d characters",
			config.MinNotesLength, config.MaxNotesLength)
	}
	return minutes, notes, nil
}

func ObserveModalHandler(b *birdhunter.Bot) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		birdID, ok := utils.ParseBirdID(e.Vars["bird"])
		if !ok {
			return gameerr.ErrBirdNotFound
		}
		minutes, notes, err := parseObservation(e.Data.Text("minutes"), e.Data.Text("notes"))
		if err != nil {
			return err
		}

		userID := e.User().ID.String()
		res, err := b.Collection.Observe(ctx, userID, birdID, minutes)
		if err != nil {
			return err
		}
		metrics.CoinsEarned(res.Reward)
		notices := b.Advance(ctx, userID, catalog.MetricObservations, 1, birdhunter.Earned(res.Reward))

		sp, _ := catalog.SpeciesByID(res.Bird.SpeciesID)
		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("🔍 %d minutes with %s", res.Minutes, res.Bird.DisplayName())).
			SetDescription("> "+utils.Truncate(notes, 300)).
			SetColor(sp.Rarity.Info().Color).
			AddField("Bond", fmt.Sprintf("+%d → %s Lv %d", res.BondIncrease,
				progression.StarString(res.Bird.BondLevel), res.Bird.BondLevel), true).
			AddField("Reward", utils.FormatCoins(res.Reward)+" 🪙", true).
			SetFooter(fmt.Sprintf("%s needs to rest for %s", res.Bird.DisplayName(),
				utils.FormatDuration(collection.RestPeriod)), "")
		if res.Camera != "" {
			embed.AddField("Camera", res.Camera, true)
		}
		if thumb := b.Thumbnail(ctx, sp); thumb != "" {
			embed.SetThumbnail(thumb)
		}
		utils.AddNotices(embed, notices)

		return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(embed.Build()).Build())
	}
}
