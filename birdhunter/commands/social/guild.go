package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/social"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Guild = discord.SlashCommandCreate{
	Name:        "guild",
	Description: "🏰 Birding guilds",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "create",
			Description: "Found a new guild",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "name",
					Description: "Guild name",
					Required:    true,
					MinLength:   utils.Ptr(social.MinGuildName),
					MaxLength:   utils.Ptr(social.MaxGuildName),
				},
				discord.ApplicationCommandOptionString{
					Name:        "description",
					Description: "What your guild is about",
					MaxLength:   utils.Ptr(social.MaxGuildDescription),
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "join",
			Description: "Join an existing guild",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "name",
					Description: "Guild name",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "info",
			Description: "Show a guild (yours by default)",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "name",
					Description: "Guild name",
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "members",
			Description: "List a guild's members (yours by default)",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "name",
					Description: "Guild name",
				},
			},
		},
	},
}

var roleBadge = map[string]string{
	models.GuildRoleOwner:  "👑",
	models.GuildRoleAdmin:  "🛡️",
	models.GuildRoleMember: "🐦",
}

func guildEmbed(g *models.Guild, members int) discord.Embed {
	desc := g.Description
	if desc == "" {
		desc = "*No description*"
	}
	return discord.NewEmbedBuilder().
		SetTitle("🏰 " + g.Name).
		SetDescription(desc).
		SetColor(config.PrimaryColor).
		AddField("Owner", fmt.Sprintf("<@%s>", g.OwnerID), true).
		AddField("Members", fmt.Sprintf("%d", members), true).
		AddField("Founded", utils.Timestamp(g.CreatedAt), true).
		Build()
}

func GuildCreateHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		data := e.SlashCommandInteractionData()
		guild, err := b.Social.CreateGuild(ctx, user.UserID, data.String("name"), data.String("description"))
		if err != nil {
			return err
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetContent("Your guild is ready. Friends can join with `/guild join " + guild.Name + "`.").
			SetEmbeds(guildEmbed(guild, 1)).
			Build())
	}
}

func GuildJoinHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		guild, err := b.Social.JoinGuild(ctx, user.UserID, e.SlashCommandInteractionData().String("name"))
		if err != nil {
			return err
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetDescription(fmt.Sprintf("Welcome to **%s**, %s!", guild.Name, e.User().Mention())).
				SetColor(config.SuccessColor).
				Build()).
			Build())
	}
}

func GuildInfoHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		guild, err := b.Social.Guild(ctx, e.User().ID.String(), e.SlashCommandInteractionData().String("name"))
		if err != nil {
			return err
		}
		members, err := b.Social.Members(ctx, guild.ID)
		if err != nil {
			return err
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(guildEmbed(guild, len(members))).Build())
	}
}

func GuildMembersHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		guild, err := b.Social.Guild(ctx, e.User().ID.String(), e.SlashCommandInteractionData().String("name"))
		if err != nil {
			return err
		}
		members, err := b.Social.Members(ctx, guild.ID)
		if err != nil {
			return err
		}

		var desc strings.Builder
		for i, m := range members {
			if i == 50 {
				fmt.Fprintf(&desc, "…and %d more", len(members)-i)
				break
			}
			fmt.Fprintf(&desc, "%s <@%s> • joined %s\n", roleBadge[m.Role], m.UserID, utils.Timestamp(m.JoinedAt))
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle(fmt.Sprintf("🏰 %s • %s", guild.Name, utils.Plural(int64(len(members)), "member", "members"))).
				SetDescription(desc.String()).
				SetColor(config.PrimaryColor).
				Build()).
			SetAllowedMentions(&discord.AllowedMentions{}).
			Build())
	}
}
