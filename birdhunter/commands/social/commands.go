package social

import (
	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/handlers"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Gift,
	Trade,
	Duel,
	Guild,
	Profile,
	ProfileEdit,
}

func Register(r handler.Router, b *birdhunter.Bot) {
	r.Command("/gift", handlers.WrapWithLogging("gift", GiftHandler(b)))
	r.Modal("/gift/submit/{session}", handlers.WrapModalWithLogging("gift-submit", GiftModalHandler(b)))

	r.Command("/trade", handlers.WrapWithLogging("trade", TradeHandler(b)))
	r.Component("/trade/{choice}/{trade}", handlers.WrapComponentWithLogging("trade-answer", TradeComponent(b)))

	r.Command("/duel", handlers.WrapWithLogging("duel", DuelHandler(b)))
	r.Component("/duel/{choice}/{session}", handlers.WrapComponentWithLogging("duel-answer", DuelComponent(b)))

	r.Route("/guild", func(r handler.Router) {
		r.Command("/create", handlers.WrapWithLogging("guild-create", GuildCreateHandler(b)))
		r.Command("/join", handlers.WrapWithLogging("guild-join", GuildJoinHandler(b)))
		r.Command("/info", handlers.WrapWithLogging("guild-info", GuildInfoHandler(b)))
		r.Command("/members", handlers.WrapWithLogging("guild-members", GuildMembersHandler(b)))
	})

	r.Command("/profile", handlers.WrapWithLogging("profile", ProfileHandler(b)))
	r.Command("/profile-edit", handlers.WrapWithLogging("profile-edit", ProfileEditHandler(b)))
	r.Modal("/profile-edit/submit", handlers.WrapModalWithLogging("profile-edit-submit", ProfileEditModalHandler(b)))
}
