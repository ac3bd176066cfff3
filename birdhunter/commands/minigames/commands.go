package minigames

import (
	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/handlers"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Minigame,
}

func Register(r handler.Router, b *birdhunter.Bot) {
	r.Command("/minigame", handlers.WrapWithLogging("minigame", MinigameHandler(b)))
	r.Component("/minigame/identify/{session}/{choice}", handlers.WrapComponentWithLogging("minigame-identify", IdentifyComponent(b)))
	r.Component("/minigame/patience/{session}", handlers.WrapComponentWithLogging("minigame-patience", PatienceComponent(b)))
}
