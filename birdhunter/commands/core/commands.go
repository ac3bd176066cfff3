package core

import (
	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/handlers"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Hunt,
	Album,
	Observe,
	Release,
	Rename,
	BirdInfo,
}

func Register(r handler.Router, b *birdhunter.Bot) {
	r.Command("/hunt", handlers.WrapWithLogging("hunt", HuntHandler(b)))
	r.Component("/hunt/{action}/{session}", handlers.WrapComponentWithLogging("hunt-encounter", EncounterComponent(b)))

	r.Command("/album", handlers.WrapWithLogging("album", AlbumHandler(b)))

	r.Command("/observe", handlers.WrapWithLogging("observe", ObserveHandler(b)))
	r.Modal("/observe/submit/{bird}", handlers.WrapModalWithLogging("observe-submit", ObserveModalHandler(b)))

	r.Command("/release", handlers.WrapWithLogging("release", ReleaseHandler(b)))
	r.Component("/release/{choice}/{session}", handlers.WrapComponentWithLogging("release-confirm", ReleaseComponent(b)))

	r.Command("/rename", handlers.WrapWithLogging("rename", RenameHandler(b)))

	r.Command("/birdinfo", handlers.WrapWithLogging("birdinfo", BirdInfoHandler(b)))
	r.Autocomplete("/birdinfo", BirdInfoAutocomplete(b))
}
