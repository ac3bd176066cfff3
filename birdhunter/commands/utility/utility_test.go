package utility

import (
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, int64(0), successRate(0, 0))
	assert.Equal(t, int64(50), successRate(10, 5))
	assert.Equal(t, int64(33), successRate(3, 1))
	assert.Equal(t, int64(100), successRate(2, 5))
}

func TestRarestBird(t *testing.T) {
	_, _, ok := rarestBird(nil)
	assert.False(t, ok)

	common := catalog.SpeciesOfRarity(catalog.Common)[0]
	epic := catalog.SpeciesOfRarity(catalog.Epic)[0]
	birds := []*models.OwnedBird{
		{ID: 1, SpeciesID: common.ID},
		{ID: 2, SpeciesID: epic.ID},
		{ID: 3, SpeciesID: "not-a-bird"},
		{ID: 4, SpeciesID: epic.ID},
	}
	bird, sp, ok := rarestBird(birds)
	require.True(t, ok)
	assert.Equal(t, int64(2), bird.ID)
	assert.Equal(t, catalog.Epic, sp.Rarity)
}

func TestCooldownLines(t *testing.T) {
	active := []cooldown.Active{{
		Action:    cooldown.ActionHunt,
		ExpiresAt: time.Unix(1700000000, 0),
		Remaining: 12 * time.Minute,
	}}
	lines := cooldownLines(active, map[string]time.Duration{cooldown.ActionWork: 24 * time.Hour})

	assert.Contains(t, lines, "🏹 Hunt • ⏳ 12m")
	assert.Contains(t, lines, "💼 Work • ✅ Ready • resets after 1d")
	assert.Contains(t, lines, "⚔️ Duel • ✅ Ready\n")
}

func TestUsageLinesExpandSubcommands(t *testing.T) {
	cmds := []discord.ApplicationCommandCreate{
		discord.SlashCommandCreate{Name: "hunt", Description: "Go hunting"},
		discord.SlashCommandCreate{
			Name:        "guild",
			Description: "Guilds",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionSubCommand{Name: "create", Description: "Found one"},
				discord.ApplicationCommandOptionSubCommand{Name: "join", Description: "Join one"},
			},
		},
	}
	assert.Equal(t, []string{
		"`/hunt` Go hunting",
		"`/guild create` Found one",
		"`/guild join` Join one",
	}, usageLines(cmds))
	assert.Equal(t, "`/hunt` `/guild`", commandNames(cmds))
}

func TestHelpEmbedSections(t *testing.T) {
	sections := []HelpSection{
		{Key: "utility", Title: "🧰 Utility", Commands: Commands},
	}

	overview := helpEmbed(sections, "", "v1")
	require.Len(t, overview.Fields, 1)
	assert.Equal(t, "🧰 Utility", overview.Fields[0].Name)

	detail := helpEmbed(sections, "utility", "v1")
	assert.Equal(t, "🧰 Utility", detail.Title)
	assert.Contains(t, detail.Description, "`/cooldowns`")
}
