package minigames

import (
	"math"
	"time"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
)

const (
	GameQuickIdentify = "quick_identify"
	GamePatienceTest  = "patience_test"

	identifyOptions   = 4
	consolationFactor = 0.1
	// ReasonConsolation is kept apart from catalog.ReasonMinigame so it is not counted as a win.
	ReasonConsolation = "Minigame consolation: "
)

type Game struct {
	ID          string
	Name        string
	Emoji       string
	Description string
	MinReward   int64
	MaxReward   int64
}

var games = map[string]Game{
	GameQuickIdentify: {
		ID:          GameQuickIdentify,
		Name:        "Quick Identify",
		Emoji:       "🔍",
		Description: "Name the species from its field notes",
		MinReward:   30,
		MaxReward:   100,
	},
	GamePatienceTest: {
		ID:          GamePatienceTest,
		Name:        "Patience Test",
		Emoji:       "⏳",
		Description: "Wait for the perfect moment to observe",
		MinReward:   60,
		MaxReward:   180,
	},
}

// identifyMultiplier pays 70% plus up to 30% for speed when correct, a flat 10% otherwise.
func identifyMultiplier(correct bool, elapsed, window time.Duration) float64 {
	if !correct {
		return consolationFactor
	}
	bonus := 0.0
	if window > 0 && elapsed < window {
		bonus = float64(window-elapsed) / float64(window)
	}
	return 0.7 + 0.3*max(bonus, 0)
}

type patienceOutcome int

const (
	patienceTooEarly patienceOutcome = iota
	patienceOnTime
	patienceTooLate
)

// patienceMultiplier scores a press against the moment the bird settled.
// Pressing right at the moment pays in full and the payout fades to 70% at the end of the grace window.
func patienceMultiplier(elapsed, wait, grace time.Duration) (float64, patienceOutcome) {
	switch {
	case elapsed < wait:
		return 0, patienceTooEarly
	case elapsed > wait+grace:
		return 0, patienceTooLate
	}
	late := 0.0
	if grace > 0 {
		late = float64(elapsed-wait) / float64(grace)
	}
	return 1 - 0.3*late, patienceOnTime
}

// payout scales a base reward, flooring to whole coins.
func payout(base int64, mult float64) int64 {
	if mult <= 0 {
		return 0
	}
	return int64(math.Floor(float64(base) * mult))
}

// dice is satisfied by *rand.Rand and the bot's shared *birdhunter.Rand.
type dice interface {
	Int64N(n int64) int64
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

func rollBase(r dice, g Game) int64 {
	return g.MinReward + r.Int64N(g.MaxReward-g.MinReward+1)
}

func rollWait(r dice, lo, hi time.Duration) time.Duration {
	return lo + time.Duration(r.Int64N(int64(hi-lo)+1))
}

// identifyRound draws the answer and three distinct decoys, shuffled.
func identifyRound(r dice, pool []catalog.Species) (catalog.Species, []string) {
	picks := r.Perm(len(pool))[:min(identifyOptions, len(pool))]
	answer := pool[picks[0]]
	options := make([]string, len(picks))
	for i, p := range picks {
		options[i] = pool[p].Name
	}
	r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return answer, options
}
