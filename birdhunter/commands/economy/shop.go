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
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var categoryEmoji = map[catalog.ItemCategory]string{
	catalog.CategoryEquipment:   "🪤",
	catalog.CategoryAttractants: "🌾",
	catalog.CategoryCameras:     "📷",
	catalog.CategoryBoosters:    "⚡",
	catalog.CategoryCosmetic:    "🎨",
}

func categoryChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(catalog.ItemCategories))
	for _, c := range catalog.ItemCategories {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{Name: categoryTitle(c), Value: string(c)})
	}
	return choices
}

func categoryName(c catalog.ItemCategory) string {
	name := string(c)
	return strings.ToUpper(name[:1]) + name[1:]
}

func categoryTitle(c catalog.ItemCategory) string {
	return categoryEmoji[c] + " " + categoryName(c)
}

func itemChoices(filter func(catalog.Item) bool) []discord.ApplicationCommandOptionChoiceString {
	var choices []discord.ApplicationCommandOptionChoiceString
	for _, it := range catalog.AllItems() {
		if filter != nil && !filter(it) {
			continue
		}
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  fmt.Sprintf("%s %s (%s 🪙)", it.Emoji, it.Name, utils.FormatCoins(it.Price)),
			Value: it.ID,
		})
	}
	return choices
}

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "🛒 Browse birding gear",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "category",
			Description: "Section of the shop",
			Choices:     categoryChoices(),
		},
	},
}

var Buy = discord.SlashCommandCreate{
	Name:        "buy",
	Description: "🛒 Buy an item from the shop",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "item",
			Description: "What to buy",
			Required:    true,
			Choices:     itemChoices(nil),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "quantity",
			Description: "How many (1-10)",
			MinValue:    utils.Ptr(1),
			MaxValue:    utils.Ptr(economy.MaxPurchaseCount),
		},
	},
}

var Inventory = discord.SlashCommandCreate{
	Name:        "inventory",
	Description: "🎒 See the gear you own",
}

var Use = discord.SlashCommandCreate{
	Name:        "use",
	Description: "⚡ Use a booster item",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "item",
			Description: "Booster to use",
			Required:    true,
			Choices:     itemChoices(catalog.Item.Usable),
		},
		discord.ApplicationCommandOptionString{
			Name:        "cooldown",
			Description: "Cooldown to reset (Energy Drink)",
			Choices:     cooldownChoices(),
		},
	},
}

func cooldownChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(cooldown.Actions))
	for _, a := range cooldown.Actions {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{Name: a, Value: a})
	}
	return choices
}

func shopEmbed(category catalog.ItemCategory) discord.Embed {
	embed := discord.NewEmbedBuilder().
		SetTitle("🛒 Birding Shop").
		SetColor(config.PrimaryColor).
		SetFooter("Buy with /buy item quantity", "")

	categories := catalog.ItemCategories
	if category != "" {
		categories = []catalog.ItemCategory{category}
	}
	for _, c := range categories {
		var lines strings.Builder
		for _, it := range catalog.ItemsInCategory(c) {
			fmt.Fprintf(&lines, "%s **%s** • %s 🪙\n%s\n", it.Emoji, it.Name, utils.FormatCoins(it.Price), it.Description)
		}
		embed.AddField(categoryTitle(c), lines.String(), false)
	}
	return embed.Build()
}

func shopMenu(selected catalog.ItemCategory) []discord.ContainerComponent {
	options := make([]discord.StringSelectMenuOption, 0, len(catalog.ItemCategories))
	for _, c := range catalog.ItemCategories {
		options = append(options, discord.StringSelectMenuOption{
			Label:   categoryName(c),
			Value:   string(c),
			Emoji:   &discord.ComponentEmoji{Name: categoryEmoji[c]},
			Default: c == selected,
		})
	}
	return []discord.ContainerComponent{
		discord.NewActionRow(discord.NewStringSelectMenu("/shop/category", "Jump to a section", options...)),
	}
}

func ShopHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		category := catalog.ItemCategory(e.SlashCommandInteractionData().String("category"))
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(shopEmbed(category)).
			SetContainerComponents(shopMenu(category)...).
			Build())
	}
}

func ShopCategoryComponent(b *birdhunter.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		values := e.StringSelectMenuInteractionData().Values
		if len(values) == 0 {
			return gameerr.Invalid("category", "pick a section")
		}
		category := catalog.ItemCategory(values[0])
		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{shopEmbed(category)},
			Components: utils.Ptr(shopMenu(category)),
		})
	}
}

func BuyHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		data := e.SlashCommandInteractionData()
		quantity := 1
		if q, ok := data.OptInt("quantity"); ok {
			quantity = q
		}

		res, err := b.Economy.Purchase(ctx, user.UserID, data.String("item"), quantity)
		if err != nil {
			return err
		}
		metrics.CoinsSpent(res.Total)
		logger.LogGame("item_purchased", user.UserID,
			slog.String("item", res.Item.ID),
			slog.Int("quantity", res.Quantity),
			slog.Int64("total", res.Total))

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle("🛒 Purchase complete").
				SetDescription(fmt.Sprintf("Bought **%dx %s %s** for **%s 🪙**.",
					res.Quantity, res.Item.Emoji, res.Item.Name, utils.FormatCoins(res.Total))).
				SetColor(config.SuccessColor).
				SetFooter("Wallet: "+utils.FormatCoins(res.Wallet)+" 🪙", "").
				Build()).
			Build())
	}
}

func InventoryHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		owned, err := b.Economy.Inventory(ctx, user.UserID)
		if err != nil {
			return err
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("🎒 %s's Gear", e.User().Username)).
			SetColor(config.PrimaryColor)
		for _, c := range catalog.ItemCategories {
			var lines strings.Builder
			for _, it := range catalog.ItemsInCategory(c) {
				if n := owned[it.ID]; n > 0 {
					fmt.Fprintf(&lines, "%s %s ×%d\n", it.Emoji, it.Name, n)
				}
			}
			if lines.Len() > 0 {
				embed.AddField(categoryTitle(c), lines.String(), true)
			}
		}
		if len(embed.Fields) == 0 {
			embed.SetDescription("Nothing yet. Visit `/shop`!")
		}
		if user.IsPremium(b.Clock.Now()) {
			embed.SetFooter("🎫 Birdwatcher Pass active", "")
		}

		return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(embed.Build()).Build())
	}
}

func UseHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		data := e.SlashCommandInteractionData()
		action := data.String("cooldown")

		res, err := b.Economy.UseItem(ctx, user.UserID, data.String("item"), action)
		if err != nil {
			return err
		}

		desc := fmt.Sprintf("Your **%s** cooldown is ready again.", action)
		if res.Item.Effect.SkipsCooldowns {
			desc = fmt.Sprintf("Cleared %s.", utils.Plural(res.Cleared, "cooldown", "cooldowns"))
		}
		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle(fmt.Sprintf("%s Used %s", res.Item.Emoji, res.Item.Name)).
				SetDescription(desc).
				SetColor(config.SuccessColor).
				Build()).
			Build())
	}
}
