package progression

import (
	"strings"
	"testing"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
)

func flock(ids ...string) []*models.OwnedBird {
	out := make([]*models.OwnedBird, len(ids))
	for i, id := range ids {
		out[i] = &models.OwnedBird{ID: int64(i + 1), SpeciesID: id, BondLevel: i + 1}
	}
	return out
}

func TestRarityBreakdown(t *testing.T) {
	got := RarityBreakdown(flock("mallard", "mallard", "snowy_owl", "bald_eagle"))

	assert.Equal(t, 2, got[catalog.Common])
	assert.Equal(t, 0, got[catalog.Uncommon])
	assert.Equal(t, 1, got[catalog.Rare])
	assert.Equal(t, 1, got[catalog.Epic])
	assert.Equal(t, 0, got[catalog.Legendary])
	assert.Len(t, got, len(catalog.Rarities))
}

func TestCollectionAggregates(t *testing.T) {
	birds := flock("mallard", "mallard", "snowy_owl")

	assert.Equal(t, int64(30+30+150), CollectionValue(birds))
	assert.Equal(t, 2, DistinctSpecies(birds))
	assert.Equal(t, 1, CountAtLeast(birds, catalog.Rare))
	assert.Equal(t, 3, CountAtLeast(birds, catalog.Common))
	assert.Equal(t, 3, MaxBond(birds))
	assert.Zero(t, MaxBond(nil))
	assert.Equal(t, int64(150), NetWorth(&models.User{WalletBalance: 100, BankBalance: 50}))
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(0, 0))
	assert.Equal(t, 33, CompletionPercent(5, 15))
	assert.Equal(t, 100, CompletionPercent(15, 15))
}

func TestNearlyComplete(t *testing.T) {
	items := []Progress{
		{ID: "a", Current: 7, Target: 10},
		{ID: "b", Current: 10, Target: 10},
		{ID: "c", Current: 9, Target: 10},
		{ID: "d", Current: 69, Target: 100},
		{ID: "e", Current: 8, Target: 10},
		{ID: "f", Current: 75, Target: 100},
		{ID: "g", Current: 1, Target: 0},
	}

	got := NearlyComplete(items)
	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"c", "e", "f"}, ids)
}

func TestLeaderboardStableTies(t *testing.T) {
	board := Leaderboard([]Entry{
		{UserID: "a", Value: 10},
		{UserID: "b", Value: 30},
		{UserID: "c", Value: 10},
		{UserID: "d", Value: 30},
		{UserID: "e", Value: 0},
	})

	order := make([]string, len(board))
	for i, r := range board {
		order[i] = r.UserID
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, order)
	assert.Equal(t, 3, RankOf(board, "a"))
	assert.Equal(t, 0, RankOf(board, "zz"))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		current, total int64
		filled         int
		suffix         string
	}{
		{0, 10, 0, " 0%"},
		{5, 10, 10, " 50%"},
		{10, 10, 20, " 100%"},
		{15, 10, 20, " 100%"},
		{1, 3, 6, " 33%"},
		{3, 0, 0, " 0%"},
	}

	for _, tt := range tests {
		got := ProgressBar(tt.current, tt.total)
		assert.Equal(t, tt.filled, strings.Count(got, "▓"), got)
		assert.Equal(t, progressCells-tt.filled, strings.Count(got, "░"), got)
		assert.True(t, strings.HasSuffix(got, tt.suffix), got)
	}
}

func TestAchievementRank(t *testing.T) {
	tests := map[int]string{
		0:   "Novice Birder",
		24:  "Novice Birder",
		25:  "Bird Seeker",
		50:  "Bird Hunter",
		75:  "Expert Birder",
		89:  "Expert Birder",
		90:  "Master Birder",
		100: "Master Birder",
	}
	for pct, want := range tests {
		assert.Equal(t, want, AchievementRank(pct), "percent %d", pct)
	}
}

func TestNextMilestone(t *testing.T) {
	m, ok := NextMilestone(0)
	assert.True(t, ok)
	assert.Equal(t, 25, m)

	m, ok = NextMilestone(75)
	assert.True(t, ok)
	assert.Equal(t, 90, m)

	_, ok = NextMilestone(100)
	assert.False(t, ok)
}

func TestStarString(t *testing.T) {
	assert.Equal(t, "", StarString(0))
	assert.Equal(t, "⭐⭐⭐", StarString(3))
	assert.Equal(t, "⭐⭐⭐⭐⭐", StarString(12))
	assert.Equal(t, "", StarString(-1))
}
