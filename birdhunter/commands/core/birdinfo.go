package core

import (
	"context"
	"fmt"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var BirdInfo = discord.SlashCommandCreate{
	Name:        "birdinfo",
	Description: "📖 Look a species up in the field guide",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "name",
			Description:  "Species name",
			Required:     true,
			Autocomplete: true,
		},
	},
}

func BirdInfoHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		query := e.SlashCommandInteractionData().String("name")
		sp, ok := b.SpeciesSearch.Resolve(query)
		if !ok {
			return fmt.Errorf("no species called %q: %w", query, gameerr.ErrNotFound)
		}

		embed := utils.SpeciesEmbed(sp, b.Thumbnail(ctx, sp))
		birds, err := b.Collection.Album(ctx, e.User().ID.String(), collection.AlbumFilter{})
		if err != nil {
			return err
		}
		owned := 0
		for _, bird := range birds {
			if bird.SpeciesID == sp.ID {
				owned++
			}
		}
		if owned > 0 {
			embed.SetFooter(fmt.Sprintf("You have %d of these", owned), "")
		} else {
			embed.SetFooter("Not in your album yet", "")
		}

		return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(embed.Build()).Build())
	}
}

func BirdInfoAutocomplete(b *birdhunter.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		matches := b.SpeciesSearch.Search(e.Data.String("name"), 25)
		choices := make([]discord.AutocompleteChoice, 0, len(matches))
		for _, sp := range matches {
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  fmt.Sprintf("%s %s", sp.Rarity.Info().Emoji, sp.Name),
				Value: sp.ID,
			})
		}
		return e.AutocompleteResult(choices)
	}
}
