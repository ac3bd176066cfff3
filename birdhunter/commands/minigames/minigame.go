package minigames

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

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

var Minigame = discord.SlashCommandCreate{
	Name:        "minigame",
	Description: "🎮 Play a quick birding game for coins",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "game",
			Description: "Which game to play",
			Required:    true,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "🔍 Quick Identify", Value: GameQuickIdentify},
				{Name: "⏳ Patience Test", Value: GamePatienceTest},
			},
		},
	},
}

func identifyButtons(sessionID string, options []string, disabled bool) []discord.ContainerComponent {
	buttons := make([]discord.InteractiveComponent, 0, len(options))
	for i, name := range options {
		buttons = append(buttons, discord.NewPrimaryButton(name, "/minigame/identify/"+sessionID+"/"+strconv.Itoa(i)).WithDisabled(disabled))
	}
	return []discord.ContainerComponent{discord.NewActionRow(buttons...)}
}

func patienceButton(sessionID string, ready, disabled bool) []discord.ContainerComponent {
	btn := discord.NewSecondaryButton("🤫 Wait…", "/minigame/patience/"+sessionID)
	if ready {
		btn = discord.NewSuccessButton("👁️ Observe now!", "/minigame/patience/"+sessionID)
	}
	return []discord.ContainerComponent{discord.NewActionRow(btn.WithDisabled(disabled))}
}

func MinigameHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		game, ok := games[e.SlashCommandInteractionData().String("game")]
		if !ok {
			return gameerr.Invalid("game", "unknown minigame")
		}
		if err := b.Cooldowns.Check(ctx, user.UserID, cooldown.ActionMinigame); err != nil {
			return err
		}
		if err := b.Cooldowns.Start(ctx, user.UserID, cooldown.ActionMinigame, b.Cfg.Cooldowns.Minigame.Duration); err != nil {
			return err
		}
		logger.LogGame("minigame_started", user.UserID, slog.String("game", game.ID))

		if game.ID == GamePatienceTest {
			return startPatience(b, e, game)
		}
		return startIdentify(ctx, b, e, game)
	}
}

func startIdentify(ctx context.Context, b *birdhunter.Bot, e *handler.CommandEvent, game Game) error {
	answer, options := identifyRound(b.Rand, catalog.AllSpecies())
	session := b.Minigames.OpenFor(e.User().ID.String(), birdhunter.MinigameRound{
		Game:     game.ID,
		Answer:   answer.Name,
		Options:  options,
		OpenedAt: b.Clock.Now(),
	}, config.QuickIdentifyWindow)

	embed := discord.NewEmbedBuilder().
		SetTitle(game.Emoji+" "+game.Name).
		SetDescription(fmt.Sprintf("Quick! Which bird is this?\n\n**Habitat:** %s\n**Notes:** %s\n**Rarity:** %s",
			answer.Habitat, answer.Description, utils.RarityLabel(answer.Rarity))).
		SetColor(config.InfoColor).
		SetFooter(fmt.Sprintf("Answer within %s • faster answers pay more", utils.FormatDuration(config.QuickIdentifyWindow)), "")

	return e.CreateMessage(discord.NewMessageCreateBuilder().
		SetEmbeds(embed.Build()).
		SetContainerComponents(identifyButtons(session.ID, options, false)...).
		Build())
}

func startPatience(b *birdhunter.Bot, e *handler.CommandEvent, game Game) error {
	wait := rollWait(b.Rand, config.PatienceMinWait, config.PatienceMaxWait)
	userID := e.User().ID.String()
	session := b.Minigames.OpenFor(userID, birdhunter.MinigameRound{
		Game:     game.ID,
		OpenedAt: b.Clock.Now(),
		Wait:     wait,
	}, wait+config.PatienceGrace)

	embed := discord.NewEmbedBuilder().
		SetTitle(game.Emoji+" "+game.Name).
		SetDescription("A bird is settling nearby. Wait for the **Observe now!** button.\nPress too early and it flies away.").
		SetColor(config.WarningColor)
	if err := e.CreateMessage(discord.NewMessageCreateBuilder().
		SetEmbeds(embed.Build()).
		SetContainerComponents(patienceButton(session.ID, false, false)...).
		Build()); err != nil {
		return err
	}

	rest := e.Client().Rest()
	appID, token := e.ApplicationID(), e.Token()
	update := func(msg discord.MessageUpdate) {
		if _, err := rest.UpdateInteractionResponse(appID, token, msg); err != nil {
			slog.Warn("Failed to update patience test",
				slog.String("type", "minigame"),
				slog.String("session", session.ID),
				slog.Any("error", err))
		}
	}

	b.Clock.AfterFunc(wait, func() {
		if _, err := b.Minigames.Get(session.ID, userID); err != nil {
			return
		}
		update(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.SetDescription("The bird has settled. **Observe now!**").SetColor(config.SuccessColor).Build()},
			Components: utils.Ptr(patienceButton(session.ID, true, false)),
		})
	})
	b.Clock.AfterFunc(wait+config.PatienceGrace, func() {
		if _, err := b.Minigames.Take(session.ID, userID); err != nil {
			return
		}
		expire(update, embed, session.ID)
	})
	return nil
}

func expire(update func(discord.MessageUpdate), embed *discord.EmbedBuilder, sessionID string) {
	update(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{embed.SetDescription("You waited too long and the bird flew off.").SetColor(config.NeutralColor).Build()},
		Components: utils.Ptr(patienceButton(sessionID, true, true)),
	})
}

// settle pays a round. Wins count toward the minigame metric, consolation prizes only toward earnings.
func settle(ctx context.Context, b *birdhunter.Bot, userID string, game Game, amount int64, won bool) (int64, []string, error) {
	if amount <= 0 {
		return 0, nil, nil
	}
	reason := catalog.ReasonMinigame + game.Name
	if !won {
		reason = ReasonConsolation + game.Name
	}
	wallet, err := b.Economy.Credit(ctx, userID, amount, reason)
	if err != nil {
		return 0, nil, err
	}
	metrics.CoinsEarned(amount)
	logger.LogGame("minigame_paid", userID,
		slog.String("game", game.ID),
		slog.Bool("won", won),
		slog.Int64("amount", amount))

	if won {
		return wallet, b.Advance(ctx, userID, catalog.MetricMinigamesWon, 1, birdhunter.Earned(amount)), nil
	}
	return wallet, b.Advance(ctx, userID, catalog.MetricCoinsEarned, amount), nil
}

func resultEmbed(game Game, title, desc string, amount, wallet int64, mult float64, color int) *discord.EmbedBuilder {
	eb := discord.NewEmbedBuilder().
		SetTitle(game.Emoji + " " + title).
		SetDescription(desc).
		SetColor(color)
	if amount > 0 {
		eb.AddField("Coins", "+"+utils.FormatCoins(amount)+" 🪙", true).
			AddField("Reward rate", fmt.Sprintf("%d%%", int(mult*100)), true).
			AddField("Wallet", utils.FormatCoins(wallet)+" 🪙", true)
	}
	return eb
}

func IdentifyComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		sessionID := e.Vars["session"]
		session, err := b.Minigames.Take(sessionID, e.User().ID.String())
		if err != nil {
			return err
		}
		round := session.Data
		idx, err := strconv.Atoi(e.Vars["choice"])
		if err != nil || idx < 0 || idx >= len(round.Options) {
			return gameerr.Invalid("choice", "unknown answer")
		}

		game := games[GameQuickIdentify]
		elapsed := b.Clock.Since(round.OpenedAt)
		correct := round.Options[idx] == round.Answer
		mult := identifyMultiplier(correct, elapsed, config.QuickIdentifyWindow)
		amount := payout(rollBase(b.Rand, game), mult)

		wallet, notices, err := settle(ctx, b, session.OwnerID, game, amount, correct)
		if err != nil {
			return err
		}

		title, color := "Correct!", config.SuccessColor
		desc := fmt.Sprintf("It was a **%s**. Answered in %s.", round.Answer, utils.FormatDuration(elapsed))
		if !correct {
			title, color = "Not quite", config.WarningColor
			desc = fmt.Sprintf("It was a **%s**, not a %s.", round.Answer, round.Options[idx])
		}
		embed := resultEmbed(game, title, desc, amount, wallet, mult, color)
		utils.AddNotices(embed, notices)

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.Build()},
			Components: utils.Ptr(identifyButtons(sessionID, round.Options, true)),
		})
	}
}

func PatienceComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		sessionID := e.Vars["session"]
		session, err := b.Minigames.Take(sessionID, e.User().ID.String())
		if err != nil {
			return err
		}
		round := session.Data
		game := games[GamePatienceTest]
		elapsed := b.Clock.Since(round.OpenedAt)

		mult, outcome := patienceMultiplier(elapsed, round.Wait, config.PatienceGrace)
		var embed *discord.EmbedBuilder
		switch outcome {
		case patienceTooEarly:
			embed = resultEmbed(game, "Too early!", fmt.Sprintf("You moved after %s and scared the bird away.", utils.FormatDuration(elapsed)),
				0, 0, 0, config.ErrorColor)
		case patienceTooLate:
			embed = resultEmbed(game, "Too late", "The bird had already flown off.", 0, 0, 0, config.NeutralColor)
		default:
			amount := payout(rollBase(b.Rand, game), mult)
			wallet, notices, err := settle(ctx, b, session.OwnerID, game, amount, true)
			if err != nil {
				return err
			}
			embed = resultEmbed(game, "Perfect timing!", fmt.Sprintf("You observed the bird %s after it settled.",
				utils.FormatDuration(elapsed-round.Wait)), amount, wallet, mult, config.SuccessColor)
			utils.AddNotices(embed, notices)
		}

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed.Build()},
			Components: utils.Ptr(patienceButton(sessionID, outcome != patienceTooEarly, true)),
		})
	}
}
