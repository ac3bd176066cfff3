package progression

import (
	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/handlers"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Quests,
	Achievements,
	Leaderboard,
}

func Register(r handler.Router, b *birdhunter.Bot) {
	r.Command("/quests", handlers.WrapWithLogging("quests", QuestsHandler(b)))
	r.Component("/quests/claim/{user}/{quest}", handlers.WrapComponentWithLogging("quest-claim", QuestClaimComponent(b)))

	r.Command("/achievements", handlers.WrapWithLogging("achievements", AchievementsHandler(b)))
	r.Component("/achievements/claim/{user}", handlers.WrapComponentWithLogging("achievement-claim", AchievementClaimComponent(b)))

	r.Command("/leaderboard", handlers.WrapWithLogging("leaderboard", LeaderboardHandler(b)))
}
