package birdhunter

import (
	"time"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/social"
)

// Encounter is a bird spotted on a hunt and waiting for the hunter's decision.
type Encounter struct {
	Species catalog.Species
	Bonus   float64
}

// DuelChallenge waits for the opponent to accept within the accept window.
type DuelChallenge struct {
	Challenger social.Duelist
	Opponent   social.Duelist
	Wager      int64
}

// MinigameRound is one running minigame.
type MinigameRound struct {
	Game     string
	Answer   string
	Options  []string
	OpenedAt time.Time
	// Wait is when the patience test's perfect moment starts, relative to OpenedAt.
	Wait time.Duration
}

const (
	ActionRelease = "release"
	ActionSell    = "sell"
	ActionGift    = "gift"
)

// PendingAction is a confirmation prompt for an irreversible action.
type PendingAction struct {
	Kind       string
	BirdID     int64
	BirdName   string
	Amount     int64
	TargetID   string
	TargetName string
	Message    string
}
