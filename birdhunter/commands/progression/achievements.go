package progression

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/birdwatchers/birdhunter/birdhunter/metrics"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var Achievements = discord.SlashCommandCreate{
	Name:        "achievements",
	Description: "🏆 Your achievements and rewards",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "category",
			Description: "Only show one category",
			Choices:     categoryChoices(),
		},
	},
}

var titleCase = cases.Title(language.English)

func categoryChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(catalog.AchievementCategories))
	for _, c := range catalog.AchievementCategories {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  titleCase.String(string(c)),
			Value: string(c),
		})
	}
	return choices
}

func achievementLine(st progression.AchievementStatus) string {
	a := st.Achievement
	state := progression.ProgressBar(st.Progress, a.Requirement)
	switch {
	case st.Claimed:
		state = "✅ Claimed"
	case st.Unlocked:
		state = fmt.Sprintf("🎁 Unlocked • claim %s 🪙", utils.FormatCoins(a.Reward))
	}
	return fmt.Sprintf("%s **%s** • %s\n%s", a.Emoji, a.Name, a.Description, state)
}

// achievementSummary is the unlocked count, rank and next milestone line.
func achievementSummary(all []progression.AchievementStatus) string {
	unlocked := 0
	for _, st := range all {
		if st.Unlocked {
			unlocked++
		}
	}
	percent := progression.CompletionPercent(unlocked, len(all))
	summary := fmt.Sprintf("%d/%d unlocked (%d%%) • %s", unlocked, len(all), percent, progression.AchievementRank(percent))
	if next, ok := progression.NextMilestone(percent); ok {
		summary += fmt.Sprintf(" • next milestone %d%%", next)
	}
	return summary
}

func achievementsEmbed(shown, all []progression.AchievementStatus, category catalog.AchievementCategory) discord.Embed {
	title := "🏆 Achievements"
	if category != "" {
		title += " • " + titleCase.String(string(category))
	}

	var desc strings.Builder
	for _, st := range shown {
		desc.WriteString(achievementLine(st))
		desc.WriteString("\n\n")
	}

	eb := discord.NewEmbedBuilder().
		SetTitle(title).
		SetDescription(desc.String()).
		SetColor(config.GoldColor).
		SetFooter(achievementSummary(all), "")

	var nearly []progression.Progress
	for _, st := range all {
		if !st.Unlocked {
			nearly = append(nearly, progression.Progress{
				ID:      st.Achievement.ID,
				Name:    st.Achievement.Name,
				Current: st.Progress,
				Target:  st.Achievement.Requirement,
			})
		}
	}
	if soon := progression.NearlyComplete(nearly); len(soon) > 0 {
		var lines []string
		for _, p := range soon {
			lines = append(lines, fmt.Sprintf("**%s** %d%%", p.Name, int(p.Ratio()*100)))
		}
		eb.AddField("Almost there", strings.Join(lines, "\n"), false)
	}
	return eb.Build()
}

// claimMenu lists claimable achievements, at most 25.
func claimMenu(ownerID string, statuses []progression.AchievementStatus) []discord.ContainerComponent {
	var options []discord.StringSelectMenuOption
	for _, st := range statuses {
		if !st.Claimable() || len(options) == 25 {
			continue
		}
		a := st.Achievement
		options = append(options, discord.NewStringSelectMenuOption(a.Name, a.ID).
			WithDescription(fmt.Sprintf("%s 🪙", utils.FormatCoins(a.Reward))))
	}
	if len(options) == 0 {
		return nil
	}
	return []discord.ContainerComponent{
		discord.NewActionRow(discord.NewStringSelectMenu("/achievements/claim/"+ownerID, "🎁 Claim a reward", options...)),
	}
}

func loadAchievements(ctx context.Context, b *birdhunter.Bot, userID string, category catalog.AchievementCategory) (shown, all []progression.AchievementStatus, err error) {
	all, err = b.Progression.Achievements(ctx, userID, "")
	if err != nil {
		return nil, nil, err
	}
	if category == "" {
		return all, all, nil
	}
	for _, st := range all {
		if st.Achievement.Category == category {
			shown = append(shown, st)
		}
	}
	return shown, all, nil
}

func AchievementsHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		if _, err := b.Progression.Evaluate(ctx, user.UserID); err != nil {
			return err
		}
		category := catalog.AchievementCategory(e.SlashCommandInteractionData().String("category"))
		shown, all, err := loadAchievements(ctx, b, user.UserID, category)
		if err != nil {
			return err
		}

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(achievementsEmbed(shown, all, category)).
			SetContainerComponents(claimMenu(user.UserID, shown)...).
			Build())
	}
}

func AchievementClaimComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		userID := e.User().ID.String()
		if e.Vars["user"] != userID {
			return gameerr.ErrPermission
		}
		values := e.StringSelectMenuInteractionData().Values
		if len(values) == 0 {
			return gameerr.Invalid("achievement", "pick an achievement to claim")
		}

		a, wallet, err := b.Progression.ClaimAchievement(ctx, userID, values[0])
		if err != nil {
			return err
		}
		metrics.CoinsEarned(a.Reward)
		logger.LogGame("achievement_claimed", userID,
			slog.String("achievement_id", a.ID),
			slog.Int64("reward", a.Reward))

		shown, all, err := loadAchievements(ctx, b, userID, "")
		if err != nil {
			return err
		}
		if err := e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{achievementsEmbed(shown, all, "")},
			Components: utils.Ptr(claimMenu(userID, shown)),
		}); err != nil {
			return err
		}

		_, err = e.CreateFollowupMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetDescription(fmt.Sprintf("%s **%s** claimed! +%s 🪙 (wallet: %s 🪙)",
					a.Emoji, a.Name, utils.FormatCoins(a.Reward), utils.FormatCoins(wallet))).
				SetColor(config.SuccessColor).
				Build()).
			SetEphemeral(true).
			Build())
		return err
	}
}
