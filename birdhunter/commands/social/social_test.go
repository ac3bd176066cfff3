package social

import (
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonIDs(t *testing.T, rows []discord.ContainerComponent) ([]string, []bool) {
	t.Helper()
	require.Len(t, rows, 1)
	row, ok := rows[0].(discord.ActionRowComponent)
	require.True(t, ok)

	var ids []string
	var disabled []bool
	for _, c := range row.Components() {
		btn, ok := c.(discord.ButtonComponent)
		require.True(t, ok)
		ids = append(ids, btn.CustomID)
		disabled = append(disabled, btn.Disabled)
	}
	return ids, disabled
}

func TestTradeButtons(t *testing.T) {
	ids, disabled := buttonIDs(t, tradeButtons(42, false))
	assert.Equal(t, []string{"/trade/accept/42", "/trade/decline/42"}, ids)
	assert.Equal(t, []bool{false, false}, disabled)

	_, disabled = buttonIDs(t, tradeButtons(42, true))
	assert.Equal(t, []bool{true, true}, disabled)
}

func TestDuelButtons(t *testing.T) {
	ids, _ := buttonIDs(t, duelButtons("s1", false))
	assert.Equal(t, []string{"/duel/accept/s1", "/duel/decline/s1"}, ids)
}

func TestGuildEmbed(t *testing.T) {
	g := &models.Guild{Name: "Owl Club", OwnerID: "123", CreatedAt: time.Unix(1700000000, 0)}

	embed := guildEmbed(g, 7)
	assert.Equal(t, "🏰 Owl Club", embed.Title)
	assert.Equal(t, "*No description*", embed.Description)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "<@123>", embed.Fields[0].Value)
	assert.Equal(t, "7", embed.Fields[1].Value)

	g.Description = "Night watchers"
	assert.Equal(t, "Night watchers", guildEmbed(g, 1).Description)
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "Owl Whisperer", orDash("Owl Whisperer"))
}
