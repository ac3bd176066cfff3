package progression

import (
	"context"
	"fmt"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"golang.org/x/sync/errgroup"
)

type boardInfo struct {
	Title string
	Unit  string
}

var boards = map[progression.Board]boardInfo{
	progression.BoardWealth:       {Title: "💰 Richest Birders", Unit: "🪙"},
	progression.BoardBirds:        {Title: "🐦 Biggest Flocks", Unit: "birds"},
	progression.BoardHunting:      {Title: "🏹 Most Hunts", Unit: "hunts"},
	progression.BoardObservations: {Title: "👁️ Most Observations", Unit: "observations"},
	progression.BoardAchievements: {Title: "🏆 Most Achievements", Unit: "unlocked"},
}

var Leaderboard = discord.SlashCommandCreate{
	Name:        "leaderboard",
	Description: "📊 Top birders",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "category",
			Description: "What to rank by",
			Choices:     boardChoices(),
		},
	},
}

func boardChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(progression.Boards))
	for _, board := range progression.Boards {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  boards[board].Title,
			Value: string(board),
		})
	}
	return choices
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", rank)
	}
}

func rankLine(r progression.Ranked, unit string, callerID string) string {
	name := r.Username
	if name == "" {
		name = "<@" + r.UserID + ">"
	}
	if r.UserID == callerID {
		name = "**" + name + "**"
	}
	return fmt.Sprintf("%s %s • %s %s", medal(r.Rank), name, utils.FormatCoins(r.Value), unit)
}

func LeaderboardHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.StatsQueryTimeout)
		defer cancel()

		board := progression.Board(e.SlashCommandInteractionData().String("category"))
		if board == "" {
			board = progression.BoardWealth
		}

		var ranked []progression.Ranked
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			_, err := b.Player(gctx, e.User())
			return err
		})
		g.Go(func() error {
			var err error
			ranked, err = b.Progression.Leaderboard(gctx, board)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		info := boards[board]
		callerID := e.User().ID.String()
		footer := "You are not ranked yet"
		if rank := progression.RankOf(ranked, callerID); rank > 0 {
			footer = fmt.Sprintf("Your rank: #%d of %d", rank, len(ranked))
		}
		if len(ranked) == 0 {
			return utils.EH.CreateInfoEmbed(e, fmt.Sprintf("**%s**\n*Nobody is on the board yet.*", info.Title))
		}

		totalPages := (len(ranked) + config.LeaderboardSize - 1) / config.LeaderboardSize
		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.LeaderboardSize
				end := min(start+config.LeaderboardSize, len(ranked))

				lines := make([]string, 0, end-start)
				for _, r := range ranked[start:end] {
					lines = append(lines, rankLine(r, info.Unit, callerID))
				}
				embed.
					SetTitle(info.Title).
					SetDescription(strings.Join(lines, "\n")).
					SetColor(config.GoldColor).
					SetFooter(fmt.Sprintf("%s • Page %d/%d", footer, page+1, totalPages), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
