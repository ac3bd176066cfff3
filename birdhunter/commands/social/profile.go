package social

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"golang.org/x/sync/errgroup"
)

var Profile = discord.SlashCommandCreate{
	Name:        "profile",
	Description: "🪪 Show a birder's profile",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Whose profile to show",
		},
	},
}

var ProfileEdit = discord.SlashCommandCreate{
	Name:        "profile-edit",
	Description: "✏️ Change your profile title and bio",
}

type profileView struct {
	snapshot     *progression.Snapshot
	guild        *models.Guild
	items        map[string]int
	achievements []progression.AchievementStatus
}

func loadProfile(ctx context.Context, b *birdhunter.Bot, userID string) (*profileView, error) {
	var v profileView
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v.snapshot, err = b.Progression.Snapshot(ctx, userID)
		return err
	})
	g.Go(func() error {
		guild, err := b.Social.Guild(ctx, userID, "")
		if errors.Is(err, gameerr.ErrNotFound) {
			return nil
		}
		v.guild = guild
		return err
	})
	g.Go(func() error {
		var err error
		v.items, err = b.Economy.Inventory(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		v.achievements, err = b.Progression.Achievements(ctx, userID, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &v, nil
}

func ProfileHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.StatsQueryTimeout)
		defer cancel()

		target := e.User()
		if u, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			target = u
		}
		if _, err := b.Player(ctx, target); err != nil {
			return err
		}
		v, err := loadProfile(ctx, b, target.ID.String())
		if err != nil {
			return err
		}
		user := v.snapshot.User

		name := target.Username
		if v.items["golden_badge"] > 0 {
			name = "🏅 " + name
		}
		if user.IsPremium(b.Clock.Now()) {
			name += " 🎫"
		}

		var header strings.Builder
		if user.Title != "" {
			fmt.Fprintf(&header, "*%s*\n", user.Title)
		}
		if user.Bio != "" {
			header.WriteString(user.Bio)
		}
		if header.Len() == 0 {
			header.WriteString("*This birder has not written a bio yet.*")
		}

		unlocked := 0
		for _, a := range v.achievements {
			if a.Unlocked {
				unlocked++
			}
		}
		percent := progression.CompletionPercent(unlocked, len(v.achievements))

		guild := "None"
		if v.guild != nil {
			guild = v.guild.Name
		}

		var breakdown strings.Builder
		counts := v.snapshot.Breakdown()
		for _, r := range catalog.Rarities {
			fmt.Fprintf(&breakdown, "%s %d  ", r.Info().Emoji, counts[r])
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(name).
			SetDescription(header.String()).
			SetColor(config.PrimaryColor).
			SetThumbnail(target.EffectiveAvatarURL()).
			AddField("Net Worth", utils.FormatCoins(v.snapshot.NetWorth())+" 🪙", true).
			AddField("Birds", fmt.Sprintf("%d (%d species)", len(v.snapshot.Birds), v.snapshot.Metrics[catalog.MetricDistinctBirds]), true).
			AddField("Guild", guild, true).
			AddField("Collection", breakdown.String(), false).
			AddField("Achievements", fmt.Sprintf("%d/%d • %s", unlocked, len(v.achievements), progression.AchievementRank(percent)), true).
			AddField("Hunts", utils.FormatCoins(user.TotalHunts), true).
			AddField("Observations", utils.FormatCoins(user.TotalObservations), true).
			SetFooter("Birding since", "").
			SetTimestamp(user.CreatedAt)

		return e.CreateMessage(discord.NewMessageCreateBuilder().SetEmbeds(embed.Build()).Build())
	}
}

func ProfileEditHandler(b *birdhunter.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		user, err := b.Player(ctx, e.User())
		if err != nil {
			return err
		}
		return e.Modal(discord.ModalCreate{
			CustomID: "/profile-edit/submit",
			Title:    "Edit Profile",
			Components: []discord.ContainerComponent{
				discord.NewActionRow(discord.TextInputComponent{
					CustomID:    "title",
					Style:       discord.TextInputStyleShort,
					Label:       "Title (needs a Custom Title permit)",
					MaxLength:   economy.MaxTitleLength,
					Placeholder: "Owl Whisperer",
					Value:       user.Title,
				}),
				discord.NewActionRow(discord.TextInputComponent{
					CustomID:    "bio",
					Style:       discord.TextInputStyleParagraph,
					Label:       "Bio",
					MaxLength:   economy.MaxBioLength,
					Placeholder: "Tell other birders about yourself",
					Value:       user.Bio,
				}),
			},
		})
	}
}

func ProfileEditModalHandler(b *birdhunter.Bot) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		title := strings.TrimSpace(e.Data.Text("title"))
		bio := strings.TrimSpace(e.Data.Text("bio"))
		user, err := b.Economy.UpdateProfile(ctx, e.User().ID.String(), economy.ProfileUpdate{Title: &title, Bio: &bio})
		if err != nil {
			return err
		}

		return e.CreateMessage(discord.NewMessageCreateBuilder().
			SetEmbeds(discord.NewEmbedBuilder().
				SetTitle("✏️ Profile updated").
				SetDescription(fmt.Sprintf("**Title:** %s\n**Bio:** %s", orDash(user.Title), orDash(user.Bio))).
				SetColor(config.SuccessColor).
				Build()).
			SetEphemeral(true).
			Build())
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
