package core

import (
	"context"
	"fmt"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Rename = discord.SlashCommandCreate{
	Name:        "rename",
	Description: "🏷️ Give one of your birds a nickname",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "bird_id",
			Description: "Album number of the bird",
			Required:    true,
			MinValue:    utils.Ptr(1),
		},
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "New nickname (leave empty to clear)",
			MaxLength:   utils.Ptr(collection.MaxNameLength),
		},
	},
}

func RenameHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		data := e.SlashCommandInteractionData()
		birdID := int64(data.Int("bird_id"))
		name := data.String("name")

		if err := b.Collection.Rename(ctx, user.UserID, birdID, name); err != nil {
			return err
		}
		bird, err := b.Collection.Bird(ctx, user.UserID, birdID)
		if err != nil {
			return err
		}

		desc := fmt.Sprintf("Bird `#%d` is now called **%s**.", birdID, bird.DisplayName())
		if bird.CustomName == "" {
			desc = fmt.Sprintf("Bird `#%d` no longer has a nickname.", birdID)
		}
		return utils.EH.CreateSuccessEmbed(e, "✏️ Nickname updated", desc)
	}
}
