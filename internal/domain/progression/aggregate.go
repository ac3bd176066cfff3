// Package progression turns raw player state into stats, ranks,
// leaderboards, quests and achievements.
package progression

import (
	"fmt"
	"sort"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
)

const (
	progressCells = 20
	maxStars      = 5
)

// Milestones are the completion percentages called out on the profile.
var Milestones = []int{25, 50, 75, 90, 100}

func speciesOf(b *models.OwnedBird) catalog.Species {
	sp, _ := catalog.SpeciesByID(b.SpeciesID)
	return sp
}

// RarityBreakdown counts birds per tier. Every tier is present, even at zero.
func RarityBreakdown(birds []*models.OwnedBird) map[catalog.Rarity]int {
	out := make(map[catalog.Rarity]int, len(catalog.Rarities))
	for _, r := range catalog.Rarities {
		out[r] = 0
	}
	for _, b := range birds {
		if sp := speciesOf(b); sp.Rarity.Valid() {
			out[sp.Rarity]++
		}
	}
	return out
}

func NetWorth(u *models.User) int64 {
	if u == nil {
		return 0
	}
	return u.WalletBalance + u.BankBalance
}

// CollectionValue sums the flat per-tier value of each bird.
func CollectionValue(birds []*models.OwnedBird) int64 {
	var total int64
	for _, b := range birds {
		if sp := speciesOf(b); sp.Rarity.Valid() {
			total += sp.Rarity.Info().CollectionValue
		}
	}
	return total
}

func DistinctSpecies(birds []*models.OwnedBird) int {
	seen := make(map[string]struct{}, len(birds))
	for _, b := range birds {
		seen[b.SpeciesID] = struct{}{}
	}
	return len(seen)
}

// CountAtLeast counts birds whose tier is r or rarer.
func CountAtLeast(birds []*models.OwnedBird, r catalog.Rarity) int {
	lowest := tierIndex(r)
	n := 0
	for _, b := range birds {
		if tierIndex(speciesOf(b).Rarity) >= lowest {
			n++
		}
	}
	return n
}

func tierIndex(r catalog.Rarity) int {
	for i, t := range catalog.Rarities {
		if t == r {
			return i
		}
	}
	return -1
}

func MaxBond(birds []*models.OwnedBird) int {
	best := 0
	for _, b := range birds {
		best = max(best, b.BondLevel)
	}
	return best
}

// CompletionPercent is floor(unlocked*100/total), 0 when total is 0.
func CompletionPercent(unlocked, total int) int {
	if total <= 0 {
		return 0
	}
	return unlocked * 100 / total
}

type Progress struct {
	ID      string
	Name    string
	Current int64
	Target  int64
}

func (p Progress) Ratio() float64 {
	if p.Target <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Target)
}

// NearlyComplete returns up to three entries at 70% or more but not done, closest first.
func NearlyComplete(items []Progress) []Progress {
	var out []Progress
	for _, p := range items {
		if r := p.Ratio(); r >= 0.7 && r < 1 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ratio() > out[j].Ratio() })
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

type Entry struct {
	UserID   string
	Username string
	Value    int64
}

type Ranked struct {
	Entry
	Rank int
}

// Leaderboard sorts by value descending. Equal values keep their input order and ranks are positional.
func Leaderboard(entries []Entry) []Ranked {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	out := make([]Ranked, len(sorted))
	for i, e := range sorted {
		out[i] = Ranked{Entry: e, Rank: i + 1}
	}
	return out
}

// RankOf returns the user's 1-based position, or 0 when absent.
func RankOf(board []Ranked, userID string) int {
	for _, r := range board {
		if r.UserID == userID {
			return r.Rank
		}
	}
	return 0
}

// ProgressBar renders twenty ▓/░ cells followed by the percentage.
func ProgressBar(current, total int64) string {
	pct := 0
	if total > 0 {
		pct = int(min(current, total) * 100 / total)
	}
	if pct < 0 {
		pct = 0
	}
	filled := pct * progressCells / 100
	return fmt.Sprintf("%s%s %d%%", strings.Repeat("▓", filled), strings.Repeat("░", progressCells-filled), pct)
}

func AchievementRank(percent int) string {
	switch {
	case percent >= 90:
		return "Master Birder"
	case percent >= 75:
		return "Expert Birder"
	case percent >= 50:
		return "Bird Hunter"
	case percent >= 25:
		return "Bird Seeker"
	default:
		return "Novice Birder"
	}
}

// NextMilestone is the first milestone above percent; false once everything is unlocked.
func NextMilestone(percent int) (int, bool) {
	for _, m := range Milestones {
		if percent < m {
			return m, true
		}
	}
	return 0, false
}

func StarString(bond int) string {
	n := min(max(bond, 0), maxStars)
	return strings.Repeat("⭐", n)
}
