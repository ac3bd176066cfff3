package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
)

// RarityLabel renders "🔵 Rare".
func RarityLabel(r catalog.Rarity) string {
	info := r.Info()
	return info.Emoji + " " + info.Label
}

// BirdLine is the one-line album entry for an owned bird.
func BirdLine(b *models.OwnedBird, now time.Time) string {
	sp, _ := catalog.SpeciesByID(b.SpeciesID)
	name := "**" + sp.Name + "**"
	if b.CustomName != "" {
		name = fmt.Sprintf("**%s** (%s)", b.CustomName, sp.Name)
	}
	line := fmt.Sprintf("`#%d` %s %s • %s Lv %d",
		b.ID, sp.Rarity.Info().Emoji, name, progression.StarString(b.BondLevel), b.BondLevel)
	if rest := collection.RestRemaining(b.LastObservedAt, now); rest > 0 {
		line += " • 💤 " + FormatDuration(rest)
	}
	return line
}

// SpeciesFields lists the field-guide facts shown for a species.
func SpeciesFields(sp catalog.Species) []discord.EmbedField {
	inline := true
	return []discord.EmbedField{
		{Name: "Rarity", Value: RarityLabel(sp.Rarity), Inline: &inline},
		{Name: "Base Value", Value: FormatCoins(sp.BaseValue) + " 🪙", Inline: &inline},
		{Name: "Habitat", Value: sp.Habitat, Inline: &inline},
	}
}

// SpeciesEmbed builds the field-guide card for a species.
func SpeciesEmbed(sp catalog.Species, thumbnail string) *discord.EmbedBuilder {
	eb := discord.NewEmbedBuilder().
		SetTitle(sp.Name).
		SetDescription(fmt.Sprintf("*%s*\n\n%s", sp.ScientificName, sp.Description)).
		SetColor(sp.Rarity.Info().Color).
		SetFields(SpeciesFields(sp)...)
	if thumbnail != "" {
		eb.SetThumbnail(thumbnail)
	}
	return eb
}

// AddNotices appends quest and achievement notices as a field.
func AddNotices(eb *discord.EmbedBuilder, notices []string) *discord.EmbedBuilder {
	if len(notices) == 0 {
		return eb
	}
	return eb.AddField("Progress", strings.Join(notices, "\n"), false)
}

// ParseBirdID accepts "12" or "#12".
func ParseBirdID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ConfirmButtons renders the confirm/cancel pair routed to prefix/{choice}/{session}.
func ConfirmButtons(prefix, sessionID, label string, disabled bool) []discord.ContainerComponent {
	return []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewDangerButton(label, prefix+"/confirm/"+sessionID).WithDisabled(disabled),
			discord.NewSecondaryButton("Cancel", prefix+"/cancel/"+sessionID).WithDisabled(disabled),
		),
	}
}
