package utility

import (
	"fmt"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// HelpSection groups the commands of one package for /help.
type HelpSection struct {
	Key      string
	Title    string
	Commands []discord.ApplicationCommandCreate
}

// SectionKeys are the /help section choices, in display order.
var SectionKeys = []string{"core", "economy", "social", "progression", "utility", "minigames"}

var Help = discord.SlashCommandCreate{
	Name:        "help",
	Description: "📖 How to play",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "section",
			Description: "Show one group of commands in detail",
			Choices:     sectionChoices(),
		},
	},
}

func sectionChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(SectionKeys))
	for _, k := range SectionKeys {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{Name: k, Value: k})
	}
	return choices
}

// usageLines lists each slash command, expanding subcommands.
func usageLines(cmds []discord.ApplicationCommandCreate) []string {
	var lines []string
	for _, c := range cmds {
		slash, ok := c.(discord.SlashCommandCreate)
		if !ok {
			continue
		}
		var subs []string
		for _, opt := range slash.Options {
			if sub, ok := opt.(discord.ApplicationCommandOptionSubCommand); ok {
				lines = append(lines, fmt.Sprintf("`/%s %s` %s", slash.Name, sub.Name, sub.Description))
				subs = append(subs, sub.Name)
			}
		}
		if len(subs) == 0 {
			lines = append(lines, fmt.Sprintf("`/%s` %s", slash.Name, slash.Description))
		}
	}
	return lines
}

func commandNames(cmds []discord.ApplicationCommandCreate) string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if slash, ok := c.(discord.SlashCommandCreate); ok {
			names = append(names, "`/"+slash.Name+"`")
		}
	}
	return strings.Join(names, " ")
}

func helpEmbed(sections []HelpSection, key, version string) discord.Embed {
	eb := discord.NewEmbedBuilder().
		SetColor(config.InfoColor).
		SetFooter("birdhunter "+version, "")

	for _, s := range sections {
		if s.Key == key {
			return eb.SetTitle(s.Title).
				SetDescription(strings.Join(usageLines(s.Commands), "\n")).
				Build()
		}
	}

	eb.SetTitle("📖 Birdhunter").
		SetDescription("Hunt wild birds, bond with them through observation and build the finest flock around.\n" +
			"Start with `/hunt`, check your flock with `/album` and earn coins with `/work`.")
	for _, s := range sections {
		eb.AddField(s.Title, commandNames(s.Commands), false)
	}
	return eb.Build()
}

func HelpHandler(b *birdhunter.Bot, sections []HelpSection) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		key := e.SlashCommandInteractionData().String("section")
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(helpEmbed(sections, key, b.Version)).
			SetEphemeral(true).
			Build())
	}
}
