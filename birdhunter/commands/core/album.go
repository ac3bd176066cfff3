package core

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
)

var Album = discord.SlashCommandCreate{
	Name:        "album",
	Description: "📒 Browse the birds you have captured",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "rarity",
			Description: "Only show one rarity",
			Choices:     rarityChoices(),
		},
		discord.ApplicationCommandOptionString{
			Name:        "search",
			Description: "Filter by species or nickname",
		},
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Look at someone else's album",
		},
	},
}

func rarityChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(catalog.Rarities))
	for _, r := range catalog.Rarities {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{Name: utils.RarityLabel(r), Value: string(r)})
	}
	return choices
}

func AlbumHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		target := e.User()
		if u, ok := data.OptUser("user"); ok {
			target = u
		}
		if _, err := b.Player(ctx, target); err != nil {
			return err
		}

		filter := collection.AlbumFilter{Search: strings.TrimSpace(data.String("search"))}
		if raw := data.String("rarity"); raw != "" {
			r, ok := catalog.ParseRarity(raw)
			if !ok {
				return gameerr.Invalid("rarity", "unknown rarity %q", raw)
			}
			filter.Rarity = r
		}

		birds, err := b.Collection.Album(ctx, target.ID.String(), filter)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("📒 %s's Album", target.Username)
		if len(birds) == 0 {
			desc := "No birds here yet. Try `/hunt`!"
			if filter.Rarity != "" || filter.Search != "" {
				desc = "No birds match that filter."
			}
			return e.CreateMessage(discord.NewMessageCreateBuilder().
				SetEmbeds(discord.NewEmbedBuilder().
					SetTitle(title).
					SetDescription(desc).
					SetColor(config.NeutralColor).
					Build()).
				Build())
		}

		breakdown := progression.RarityBreakdown(birds)
		var summary strings.Builder
		for _, r := range catalog.Rarities {
			if n := breakdown[r]; n > 0 {
				fmt.Fprintf(&summary, "%s %d  ", r.Info().Emoji, n)
			}
		}

		now := b.Clock.Now()
		totalPages := int(math.Ceil(float64(len(birds)) / float64(config.BirdsPerPage)))

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.BirdsPerPage
				end := min(start+config.BirdsPerPage, len(birds))

				var desc strings.Builder
				desc.WriteString(summary.String())
				desc.WriteString("\n\n")
				for _, bird := range birds[start:end] {
					desc.WriteString(utils.BirdLine(bird, now))
					desc.WriteString("\n")
				}

				embed.
					SetTitle(title).
					SetDescription(desc.String()).
					SetColor(config.PrimaryColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %s", page+1, totalPages,
						utils.Plural(int64(len(birds)), "bird", "birds")), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
