package progression

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/birdwatchers/birdhunter/birdhunter/metrics"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

const (
	questViewActive    = "active"
	questViewCompleted = "completed"
	questViewAvailable = "available"
)

var Quests = discord.SlashCommandCreate{
	Name:        "quests",
	Description: "📜 Daily and weekly quests",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "view",
			Description: "Which quests to show",
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "🎯 Active", Value: questViewActive},
				{Name: "✅ Completed", Value: questViewCompleted},
				{Name: "📚 Available", Value: questViewAvailable},
			},
		},
	},
}

var periodLabel = map[catalog.QuestPeriod]string{
	catalog.Daily:  "☀️ Daily",
	catalog.Weekly: "📅 Weekly",
}

// filterQuests picks the statuses shown by a view. Claimable quests stay under active.
func filterQuests(statuses []progression.QuestStatus, view string) []progression.QuestStatus {
	var out []progression.QuestStatus
	for _, st := range statuses {
		switch view {
		case questViewCompleted:
			if st.Row.Status == models.QuestCompleted || st.Row.Status == models.QuestClaimed {
				out = append(out, st)
			}
		case questViewAvailable:
			out = append(out, st)
		default:
			if st.Row.Status == models.QuestActive || st.Row.Status == models.QuestCompleted {
				out = append(out, st)
			}
		}
	}
	return out
}

func questLine(st progression.QuestStatus) string {
	q := st.Quest
	var mark string
	switch st.Row.Status {
	case models.QuestClaimed:
		mark = "✅"
	case models.QuestCompleted:
		mark = "🎁"
	default:
		mark = "▫️"
	}
	return fmt.Sprintf("%s **%s** • %s\n%s `%s/%s` • %s 🪙 • resets in %s",
		mark, q.Name, q.Description,
		progression.ProgressBar(st.Row.Progress, st.Row.Target),
		utils.FormatCoins(st.Row.Progress), utils.FormatCoins(st.Row.Target),
		utils.FormatCoins(q.Reward), utils.FormatDuration(st.ExpiresIn))
}

func questsEmbed(statuses []progression.QuestStatus, view string) discord.Embed {
	eb := discord.NewEmbedBuilder().SetColor(config.PrimaryColor)

	if view == questViewAvailable {
		eb.SetTitle("📚 Available Quests")
		for _, period := range []catalog.QuestPeriod{catalog.Daily, catalog.Weekly} {
			var lines []string
			for _, q := range catalog.QuestsForPeriod(period) {
				lines = append(lines, fmt.Sprintf("**%s** • %s • %s 🪙", q.Name, q.Description, utils.FormatCoins(q.Reward)))
			}
			eb.AddField(periodLabel[period], strings.Join(lines, "\n"), false)
		}
		return eb.SetFooter("Quests are assigned automatically at the start of each period", "").Build()
	}

	shown := filterQuests(statuses, view)
	if view == questViewCompleted {
		eb.SetTitle("✅ Completed Quests")
	} else {
		eb.SetTitle("🎯 Active Quests")
	}
	if len(shown) == 0 {
		return eb.SetDescription("*Nothing here yet. Go hunt some birds!*").Build()
	}
	for _, period := range []catalog.QuestPeriod{catalog.Daily, catalog.Weekly} {
		var lines []string
		for _, st := range shown {
			if st.Quest.Period == period {
				lines = append(lines, questLine(st))
			}
		}
		if len(lines) > 0 {
			eb.AddField(periodLabel[period], strings.Join(lines, "\n\n"), false)
		}
	}
	return eb.SetFooter("Days start at midnight UTC, weeks on Monday", "").Build()
}

// questButtons offers one claim button per completed, unclaimed quest.
func questButtons(ownerID string, statuses []progression.QuestStatus) []discord.ContainerComponent {
	var buttons []discord.InteractiveComponent
	for _, st := range statuses {
		if st.Row.Status != models.QuestCompleted {
			continue
		}
		buttons = append(buttons, discord.NewSuccessButton("Claim "+st.Quest.Name, "/quests/claim/"+ownerID+"/"+st.Quest.ID))
	}
	return chunkRows(buttons)
}

func chunkRows(buttons []discord.InteractiveComponent) []discord.ContainerComponent {
	var rows []discord.ContainerComponent
	for len(buttons) > 0 && len(rows) < 5 {
		n := min(len(buttons), 5)
		rows = append(rows, discord.NewActionRow(buttons[:n]...))
		buttons = buttons[n:]
	}
	return rows
}

func QuestsHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		statuses, err := b.Progression.Assign(ctx, user.UserID)
		if err != nil {
			return err
		}

		view := e.SlashCommandInteractionData().String("view")
		msg := discord.NewMessageCreateBuilder().SetEmbeds(questsEmbed(statuses, view))
		if view != questViewAvailable {
			msg.SetContainerComponents(questButtons(user.UserID, statuses)...)
		}
		return e.CreateMessage(msg.Build())
	}
}

func QuestClaimComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		userID := e.User().ID.String()
		if e.Vars["user"] != userID {
			return gameerr.ErrPermission
		}
		quest, wallet, err := b.Progression.ClaimQuest(ctx, userID, e.Vars["quest"])
		if err != nil {
			return err
		}
		metrics.CoinsEarned(quest.Reward)
		logger.LogGame("quest_claimed", userID,
			slog.String("quest_id", quest.ID),
			slog.Int64("reward", quest.Reward))

		statuses, err := b.Progression.Assign(ctx, userID)
		if err != nil {
			return err
		}
		if err := e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{questsEmbed(statuses, questViewActive)},
			Components: utils.Ptr(questButtons(userID, statuses)),
		}); err != nil {
			return err
		}

		_, err = e.CreateFollowupMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetDescription(fmt.Sprintf("🎉 **%s** complete! +%s 🪙 (wallet: %s 🪙)",
					quest.Name, utils.FormatCoins(quest.Reward), utils.FormatCoins(wallet))).
				SetColor(config.SuccessColor).
				Build()).
			SetEphemeral(true).
			Build())
		return err
	}
}
