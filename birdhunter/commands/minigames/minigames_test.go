package minigames

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyMultiplier(t *testing.T) {
	window := 30 * time.Second
	tests := []struct {
		name    string
		correct bool
		elapsed time.Duration
		want    float64
	}{
		{name: "instant", correct: true, elapsed: 0, want: 1.0},
		{name: "halfway", correct: true, elapsed: 15 * time.Second, want: 0.85},
		{name: "at deadline", correct: true, elapsed: window, want: 0.7},
		{name: "past deadline", correct: true, elapsed: 2 * window, want: 0.7},
		{name: "wrong", correct: false, elapsed: time.Second, want: 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, identifyMultiplier(tt.correct, tt.elapsed, window), 1e-9)
		})
	}
}

func TestPatienceMultiplier(t *testing.T) {
	wait, grace := 10*time.Second, 5*time.Second
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
		outcome patienceOutcome
	}{
		{name: "too early", elapsed: 9 * time.Second, outcome: patienceTooEarly},
		{name: "right on time", elapsed: wait, want: 1.0, outcome: patienceOnTime},
		{name: "end of grace", elapsed: wait + grace, want: 0.7, outcome: patienceOnTime},
		{name: "too late", elapsed: wait + grace + time.Millisecond, outcome: patienceTooLate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := patienceMultiplier(tt.elapsed, wait, grace)
			assert.Equal(t, tt.outcome, outcome)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPayout(t *testing.T) {
	assert.Equal(t, int64(0), payout(100, 0))
	assert.Equal(t, int64(10), payout(100, 0.1))
	assert.Equal(t, int64(50), payout(100, 0.5))
	assert.Equal(t, int64(127), payout(170, 0.75))
	assert.Equal(t, int64(3), payout(30, 0.1))
}

func TestRollsStayInRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g := games[GamePatienceTest]
	for i := 0; i < 500; i++ {
		base := rollBase(r, g)
		assert.GreaterOrEqual(t, base, g.MinReward)
		assert.LessOrEqual(t, base, g.MaxReward)

		wait := rollWait(r, 5*time.Second, 20*time.Second)
		assert.GreaterOrEqual(t, wait, 5*time.Second)
		assert.LessOrEqual(t, wait, 20*time.Second)
	}
}

func TestIdentifyRound(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	pool := catalog.AllSpecies()
	for i := 0; i < 50; i++ {
		answer, options := identifyRound(r, pool)
		require.Len(t, options, identifyOptions)
		assert.Contains(t, options, answer.Name)

		seen := map[string]bool{}
		for _, o := range options {
			assert.False(t, seen[o], "duplicate option %s", o)
			seen[o] = true
		}
	}
}

func TestSharedRandReplaysRounds(t *testing.T) {
	pool := catalog.AllSpecies()
	a := birdhunter.NewRand(rand.NewPCG(9, 10))
	b := birdhunter.NewRand(rand.NewPCG(9, 10))

	answerA, optionsA := identifyRound(a, pool)
	answerB, optionsB := identifyRound(b, pool)
	assert.Equal(t, answerA.ID, answerB.ID)
	assert.Equal(t, optionsA, optionsB)
	assert.Equal(t, rollBase(a, games[GameQuickIdentify]), rollBase(b, games[GameQuickIdentify]))
}

func TestIdentifyButtons(t *testing.T) {
	rows := identifyButtons("s1", []string{"Robin", "Owl"}, false)
	require.Len(t, rows, 1)
	buttons := rows[0].(discord.ActionRowComponent).Components()
	require.Len(t, buttons, 2)
	assert.Equal(t, "/minigame/identify/s1/1", buttons[1].(discord.ButtonComponent).CustomID)
}

func TestPatienceButton(t *testing.T) {
	waiting := patienceButton("s1", false, false)[0].(discord.ActionRowComponent).Components()[0].(discord.ButtonComponent)
	assert.Equal(t, discord.ButtonStyleSecondary, waiting.Style)
	assert.Equal(t, "/minigame/patience/s1", waiting.CustomID)

	ready := patienceButton("s1", true, true)[0].(discord.ActionRowComponent).Components()[0].(discord.ButtonComponent)
	assert.Equal(t, discord.ButtonStyleSuccess, ready.Style)
	assert.True(t, ready.Disabled)
}
