package utility

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Cooldowns = discord.SlashCommandCreate{
	Name:        "cooldowns",
	Description: "⏰ See when you can act again",
}

var actionLabels = map[string]string{
	cooldown.ActionHunt:     "🏹 Hunt",
	cooldown.ActionWork:     "💼 Work",
	cooldown.ActionObserve:  "👁️ Observe",
	cooldown.ActionTrade:    "🤝 Trade",
	cooldown.ActionMinigame: "🎮 Minigame",
	cooldown.ActionDuel:     "⚔️ Duel",
}

func cooldownPeriods(c birdhunter.CooldownConfig) map[string]time.Duration {
	return map[string]time.Duration{
		cooldown.ActionHunt:     c.Hunt.Duration,
		cooldown.ActionWork:     c.Work.Duration,
		cooldown.ActionObserve:  c.Observe.Duration,
		cooldown.ActionTrade:    c.Trade.Duration,
		cooldown.ActionMinigame: c.Minigame.Duration,
		cooldown.ActionDuel:     c.Duel.Duration,
	}
}

// cooldownLines renders every action, running ones with a relative timestamp.
func cooldownLines(active []cooldown.Active, periods map[string]time.Duration) string {
	running := make(map[string]cooldown.Active, len(active))
	for _, a := range active {
		running[a.Action] = a
	}

	var sb strings.Builder
	for _, action := range cooldown.Actions {
		label := actionLabels[action]
		if a, ok := running[action]; ok {
			fmt.Fprintf(&sb, "%s • ⏳ %s (%s)\n", label, utils.FormatDuration(a.Remaining), utils.Timestamp(a.ExpiresAt))
			continue
		}
		fmt.Fprintf(&sb, "%s • ✅ Ready", label)
		if p := periods[action]; p > 0 {
			fmt.Fprintf(&sb, " • resets after %s", utils.FormatDuration(p))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func CooldownsHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		active, err := b.Cooldowns.Active(ctx, user.UserID)
		if err != nil {
			return err
		}

		color := config.SuccessColor
		if len(active) > 0 {
			color = config.WarningColor
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle("⏰ Cooldowns").
				SetDescription(cooldownLines(active, cooldownPeriods(b.Cfg.Cooldowns))).
				SetColor(color).
				Build()).
			SetEphemeral(true).
			Build())
	}
}
