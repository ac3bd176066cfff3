package progression

import (
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questStatus(t *testing.T, id, status string) progression.QuestStatus {
	t.Helper()
	q, ok := catalog.QuestByID(id)
	require.True(t, ok, id)
	return progression.QuestStatus{
		Quest:     q,
		Row:       &models.UserQuest{QuestID: id, Target: q.Target, Status: status},
		ExpiresIn: time.Hour,
	}
}

func TestFilterQuests(t *testing.T) {
	statuses := []progression.QuestStatus{
		questStatus(t, "daily_hunter", models.QuestActive),
		questStatus(t, "daily_catch", models.QuestCompleted),
		questStatus(t, "weekly_hunter", models.QuestClaimed),
	}

	ids := func(in []progression.QuestStatus) []string {
		var out []string
		for _, st := range in {
			out = append(out, st.Quest.ID)
		}
		return out
	}

	tests := []struct {
		view string
		want []string
	}{
		{view: questViewActive, want: []string{"daily_hunter", "daily_catch"}},
		{view: "", want: []string{"daily_hunter", "daily_catch"}},
		{view: questViewCompleted, want: []string{"daily_catch", "weekly_hunter"}},
		{view: questViewAvailable, want: []string{"daily_hunter", "daily_catch", "weekly_hunter"}},
	}
	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(filterQuests(statuses, tt.view)))
		})
	}
}

func TestQuestButtonsOnlyForCompleted(t *testing.T) {
	statuses := []progression.QuestStatus{
		questStatus(t, "daily_hunter", models.QuestActive),
		questStatus(t, "daily_catch", models.QuestCompleted),
		questStatus(t, "weekly_hunter", models.QuestClaimed),
	}

	rows := questButtons("42", statuses)
	require.Len(t, rows, 1)
	row, ok := rows[0].(discord.ActionRowComponent)
	require.True(t, ok)
	buttons := row.Components()
	require.Len(t, buttons, 1)
	btn, ok := buttons[0].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, "/quests/claim/42/daily_catch", btn.CustomID)

	assert.Empty(t, questButtons("42", statuses[:1]))
}

func TestChunkRows(t *testing.T) {
	var buttons []discord.InteractiveComponent
	for i := 0; i < 12; i++ {
		buttons = append(buttons, discord.NewPrimaryButton("b", "id"))
	}
	rows := chunkRows(buttons)
	require.Len(t, rows, 3)
	assert.Len(t, rows[2].(discord.ActionRowComponent).Components(), 2)
}

func TestClaimMenu(t *testing.T) {
	a, ok := catalog.AchievementByID("first_hunt")
	require.True(t, ok)
	b, ok := catalog.AchievementByID("hunter_50")
	require.True(t, ok)

	statuses := []progression.AchievementStatus{
		{Achievement: a, Progress: 1, Unlocked: true},
		{Achievement: b, Progress: 10},
	}
	rows := claimMenu("7", statuses)
	require.Len(t, rows, 1)
	menu, ok := rows[0].(discord.ActionRowComponent).Components()[0].(discord.StringSelectMenuComponent)
	require.True(t, ok)
	assert.Equal(t, "/achievements/claim/7", menu.CustomID)
	require.Len(t, menu.Options, 1)
	assert.Equal(t, "first_hunt", menu.Options[0].Value)

	statuses[0].Claimed = true
	assert.Nil(t, claimMenu("7", statuses))
}

func TestAchievementSummary(t *testing.T) {
	statuses := make([]progression.AchievementStatus, 4)
	statuses[0].Unlocked = true
	assert.Equal(t, "1/4 unlocked (25%) • Bird Seeker • next milestone 50%", achievementSummary(statuses))

	for i := range statuses {
		statuses[i].Unlocked = true
	}
	assert.Equal(t, "4/4 unlocked (100%) • Master Birder", achievementSummary(statuses))
}

func TestRankLine(t *testing.T) {
	r := progression.Ranked{Entry: progression.Entry{UserID: "1", Username: "robin", Value: 12500}, Rank: 1}
	assert.Equal(t, "🥇 **robin** • 12,500 🪙", rankLine(r, "🪙", "1"))

	r.Rank = 11
	r.Username = ""
	assert.Equal(t, "`#11` <@1> • 12,500 birds", rankLine(r, "birds", "2"))
}

func TestBoardChoicesCoverEveryBoard(t *testing.T) {
	choices := boardChoices()
	require.Len(t, choices, len(progression.Boards))
	for _, c := range choices {
		_, ok := boards[progression.Board(c.Value)]
		assert.True(t, ok, c.Value)
	}
}
