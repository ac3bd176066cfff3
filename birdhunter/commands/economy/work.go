package economy

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
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Work = discord.SlashCommandCreate{
	Name:        "work",
	Description: "💼 Take a shift at one of today's birding jobs",
}

func jobButtons(sessionID string, jobs []catalog.Job, chosen string) []discord.ContainerComponent {
	buttons := make([]discord.InteractiveComponent, 0, len(jobs))
	for _, job := range jobs {
		label := fmt.Sprintf("%s %s", job.Emoji, job.Name)
		id := "/work/" + sessionID + "/" + job.ID
		if chosen == "" {
			buttons = append(buttons, discord.NewPrimaryButton(label, id))
			continue
		}
		if job.ID == chosen {
			buttons = append(buttons, discord.NewSuccessButton(label, id).WithDisabled(true))
		} else {
			buttons = append(buttons, discord.NewSecondaryButton(label, id).WithDisabled(true))
		}
	}
	return []discord.ContainerComponent{discord.NewActionRow(buttons...)}
}

func WorkHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		if err := b.Cooldowns.Check(ctx, user.UserID, cooldown.ActionWork); err != nil {
			return err
		}

		jobs := b.Economy.OfferJobs()
		session := b.JobOffers.Open(user.UserID, jobs)

		var desc strings.Builder
		desc.WriteString("Pick one job for today:\n\n")
		for _, job := range jobs {
			fmt.Fprintf(&desc, "%s **%s**: %s-%s 🪙\n", job.Emoji, job.Name,
				utils.FormatCoins(job.MinPay), utils.FormatCoins(job.MaxPay))
		}

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle("💼 Job Board").
				SetDescription(desc.String()).
				SetColor(config.InfoColor).
				SetFooter("Offers expire in "+utils.FormatDuration(config.WorkOfferTTL), "").
				Build()).
			SetContainerComponents(jobButtons(session.ID, jobs, "")...).
			Build())
	}
}

func offered(jobs []catalog.Job, id string) bool {
	for _, job := range jobs {
		if job.ID == id {
			return true
		}
	}
	return false
}

func WorkComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		sessionID, jobID := e.Vars["session"], e.Vars["job"]
		session, err := b.JobOffers.Take(sessionID, e.User().ID.String())
		if err != nil {
			return err
		}
		if !offered(session.Data, jobID) {
			return gameerr.Invalid("job", "that job is not on today's board")
		}

		res, err := b.Economy.Work(ctx, session.OwnerID, jobID)
		if err != nil {
			return err
		}
		metrics.CoinsEarned(res.Total())
		logger.LogGame("work_shift", session.OwnerID,
			slog.String("job", res.Job.ID),
			slog.Int64("pay", res.Total()))
		notices := b.Advance(ctx, session.OwnerID, catalog.MetricWorkShifts, 1, birdhunter.Earned(res.Total()))

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("%s Shift complete: %s", res.Job.Emoji, res.Job.Name)).
			SetColor(config.SuccessColor).
			AddField("Pay", utils.FormatCoins(res.Base)+" 🪙", true).
			AddField("Bonus", utils.FormatCoins(res.Bonus)+" 🪙", true).
			AddField("Wallet", utils.FormatCoins(res.Wallet)+" 🪙", true).
			SetFooter("Come back in "+utils.FormatDuration(b.Economy.Config().WorkCooldown), "")
		utils.AddNotices(embed, notices)

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.Build()},
			Components: utils.Ptr(jobButtons(sessionID, session.Data, jobID)),
		})
	}
}
