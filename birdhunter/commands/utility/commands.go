package utility

import (
	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/handlers"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Stats,
	Cooldowns,
	Help,
}

func Register(r handler.Router, b *birdhunter.Bot, sections []HelpSection) {
	r.Command("/stats", handlers.WrapWithLogging("stats", StatsHandler(b)))
	r.Command("/cooldowns", handlers.WrapWithLogging("cooldowns", CooldownsHandler(b)))
	r.Command("/help", handlers.WrapWithLogging("help", HelpHandler(b, sections)))
}
