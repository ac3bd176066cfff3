// Package commands collects every slash command group and wires their routes.
package commands

import (
	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/commands/core"
	"github.com/birdwatchers/birdhunter/birdhunter/commands/economy"
	"github.com/birdwatchers/birdhunter/birdhunter/commands/minigames"
	"github.com/birdwatchers/birdhunter/birdhunter/commands/progression"
	"github.com/birdwatchers/birdhunter/birdhunter/commands/social"
	"github.com/birdwatchers/birdhunter/birdhunter/commands/utility"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// Sections is the /help layout, one entry per command group.
var Sections = []utility.HelpSection{
	{Key: "core", Title: "🐦 Birding", Commands: core.Commands},
	{Key: "economy", Title: "💰 Economy", Commands: economy.Commands},
	{Key: "social", Title: "🤝 Social", Commands: social.Commands},
	{Key: "progression", Title: "🏆 Progression", Commands: progression.Commands},
	{Key: "utility", Title: "🧰 Utility", Commands: utility.Commands},
	{Key: "minigames", Title: "🎮 Minigames", Commands: minigames.Commands},
}

// Commands is every command synced to Discord.
var Commands = all()

func all() []discord.ApplicationCommandCreate {
	var out []discord.ApplicationCommandCreate
	for _, s := range Sections {
		out = append(out, s.Commands...)
	}
	return out
}

func Register(r handler.Router, b *birdhunter.Bot) {
	core.Register(r, b)
	economy.Register(r, b)
	social.Register(r, b)
	progression.Register(r, b)
	utility.Register(r, b, Sections)
	minigames.Register(r, b)
}
