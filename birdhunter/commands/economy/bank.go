package economy

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Balance = discord.SlashCommandCreate{
	Name:        "balance",
	Description: "💰 Check your wallet and bank",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Check someone else's balance",
		},
	},
}

var Deposit = discord.SlashCommandCreate{
	Name:        "deposit",
	Description: "🏦 Move coins from your wallet into the bank",
}

var Withdraw = discord.SlashCommandCreate{
	Name:        "withdraw",
	Description: "🏦 Take coins out of the bank",
}

func BalanceHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		target := e.User()
		if u, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			target = u
		}
		user, err := b.Player(ctx, target)
		if err != nil {
			return err
		}

		rules := b.Economy.Config()
		interest := economy.DailyInterest(user.BankBalance, rules.InterestRate)

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("💰 %s's Balance", target.Username)).
			SetColor(config.GoldColor).
			AddField("Wallet", utils.FormatCoins(user.WalletBalance)+" 🪙", true).
			AddField("Bank", fmt.Sprintf("%s / %s 🪙", utils.FormatCoins(user.BankBalance), utils.FormatCoins(rules.MaxBankBalance)), true).
			AddField("Net Worth", utils.FormatCoins(user.NetWorth())+" 🪙", true).
			AddField("Bank Interest", fmt.Sprintf("%.1f%% daily • about %s 🪙/day, %s 🪙/week",
				rules.InterestRate*100, utils.FormatCoins(interest),
				utils.FormatCoins(economy.ProjectedInterest(user.BankBalance, rules.InterestRate, 7))), false)
		if user.IsPremium(b.Clock.Now()) {
			embed.AddField("Birdwatcher Pass", "Active until "+utils.Timestamp(user.PremiumUntil), false)
		}

		return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(embed.Build()).Build())
	}
}

// parseAmount accepts a positive number (commas allowed) or "all".
func parseAmount(text string, all int64) (int64, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "all") {
		return all, nil
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(text, ",", ""), 10, 64)
	if err != nil || n <= 0 {
		return 0, gameerr.Invalid("amount", "enter a positive number or \"all\"")
	}
	return n, nil
}

func bankModal(customID, title string, confirm bool) discord.ModalCreate {
	rows := []discord.ContainerComponent{
		discord.NewActionRow(discord.TextInputComponent{
			CustomID:    "amount",
			Style:       discord.TextInputStyleShort,
			Label:       "Amount",
			MaxLength:   16,
			Required:    true,
			Placeholder: "500 or all",
		}),
	}
	if confirm {
		rows = append(rows, discord.NewActionRow(discord.TextInputComponent{
			CustomID:    "confirm",
			Style:       discord.TextInputStyleShort,
			Label:       fmt.Sprintf("Type %s to confirm", config.DepositConfirmWord),
			MaxLength:   len(config.DepositConfirmWord),
			Required:    true,
			Placeholder: config.DepositConfirmWord,
		}))
	}
	return discord.ModalCreate{CustomID: customID, Title: title, Components: rows}
}

func DepositHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if _, err := b.Player(ctx, e.User()); err != nil {
			return err
		}
		return e.Modal(bankModal("/deposit/submit", "Deposit to Bank", true))
	}
}

func WithdrawHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if _, err := b.Player(ctx, e.User()); err != nil {
			return err
		}
		return e.Modal(bankModal("/withdraw/submit", "Withdraw from Bank", false))
	}
}

func DepositModalHandler(b *birdhunter.Bot) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if strings.TrimSpace(e.Data.Text("confirm")) != config.DepositConfirmWord {
			return gameerr.Invalid("confirmation", "type %s to confirm the deposit", config.DepositConfirmWord)
		}
		amount, err := parseAmount(e.Data.Text("amount"), economy.DepositAll)
		if err != nil {
			return err
		}
		res, err := b.Economy.Deposit(ctx, e.User().ID.String(), amount)
		if err != nil {
			return err
		}
		return e.CreateMessage(bankReceipt("🏦 Deposit complete", res))
	}
}

func WithdrawModalHandler(b *birdhunter.Bot) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		amount, err := parseAmount(e.Data.Text("amount"), economy.WithdrawAll)
		if err != nil {
			return err
		}
		res, err := b.Economy.Withdraw(ctx, e.User().ID.String(), amount)
		if err != nil {
			return err
		}
		return e.CreateMessage(bankReceipt("🏦 Withdrawal complete", res))
	}
}

func bankReceipt(title string, res *economy.BankResult) discord.MessageCreate {
	return discord.NewMessageCreateBuilder().
		SetEmbeds(discord.NewEmbedBuilder().
			SetTitle(title).
			SetDescription(fmt.Sprintf("Moved **%s 🪙**", utils.FormatCoins(res.Amount))).
			SetColor(config.SuccessColor).
			AddField("Wallet", utils.FormatCoins(res.Wallet)+" 🪙", true).
			AddField("Bank", utils.FormatCoins(res.Bank)+" 🪙", true).
			AddField("Daily Interest", utils.FormatCoins(res.DailyInterest)+" 🪙", true).
			Build()).
		Build()
}
