package social

import (
	"context"
	"fmt"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
)

const (
	MaxWager = 10000
	// DuelPrize is paid to the winner on top of the pot.
	DuelPrize = 25
	// baseStrength keeps a player without birds in the fight.
	baseStrength = 100
)

type Duelist struct {
	UserID string
	Name   string
}

type DuelResult struct {
	Winner         Duelist
	Loser          Duelist
	Wager          int64
	Payout         int64
	WinnerStrength int64
	LoserStrength  int64
}

// Strength is the base strength plus each bird's collection value scaled by its bond.
func Strength(birds []*models.OwnedBird) int64 {
	total := int64(baseStrength)
	for _, b := range birds {
		sp, ok := catalog.SpeciesByID(b.SpeciesID)
		if !ok {
			continue
		}
		total += sp.Rarity.Info().CollectionValue * int64(max(b.BondLevel, 1)) / 10
	}
	return total
}

// CheckDuel validates a challenge before it is offered to the opponent.
func (s *Service) CheckDuel(ctx context.Context, challengerID, opponentID string, wager int64) error {
	if challengerID == opponentID {
		return gameerr.Invalid("opponent", "you cannot duel yourself")
	}
	if wager < 0 || wager > MaxWager {
		return gameerr.Invalid("wager", "must be between 0 and %d", MaxWager)
	}
	if err := s.cooldowns.Check(ctx, challengerID, cooldown.ActionDuel); err != nil {
		return err
	}
	challenger, err := s.repo.GetUser(ctx, challengerID)
	if err != nil {
		return err
	}
	if challenger.WalletBalance < wager {
		return gameerr.ErrInsufficientFunds
	}
	if _, err := s.repo.GetUser(ctx, opponentID); err != nil {
		return err
	}
	return nil
}

// ResolveDuel escrows both wagers, rolls the winner weighted by strength and pays the pot in one transaction.
func (s *Service) ResolveDuel(ctx context.Context, challenger, opponent Duelist, wager int64) (*DuelResult, error) {
	if err := s.cooldowns.Check(ctx, opponent.UserID, cooldown.ActionDuel); err != nil {
		return nil, err
	}
	cBirds, err := s.repo.ListBirds(ctx, challenger.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load birds: %w", err)
	}
	oBirds, err := s.repo.ListBirds(ctx, opponent.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load birds: %w", err)
	}
	cStrength, oStrength := Strength(cBirds), Strength(oBirds)

	s.mu.Lock()
	challengerWins := s.rng.Int64N(cStrength+oStrength) < cStrength
	s.mu.Unlock()

	res := &DuelResult{Wager: wager, Payout: 2*wager + DuelPrize}
	if challengerWins {
		res.Winner, res.Loser = challenger, opponent
		res.WinnerStrength, res.LoserStrength = cStrength, oStrength
	} else {
		res.Winner, res.Loser = opponent, challenger
		res.WinnerStrength, res.LoserStrength = oStrength, cStrength
	}

	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if wager > 0 {
			if _, err := s.wallet.Debit(ctx, res.Winner.UserID, wager, "Duel wager"); err != nil {
				return err
			}
			if _, err := s.wallet.Debit(ctx, res.Loser.UserID, wager, catalog.ReasonDuelLost+res.Winner.Name); err != nil {
				return err
			}
		}
		if _, err := s.wallet.Credit(ctx, res.Winner.UserID, res.Payout, catalog.ReasonDuelWon+res.Loser.Name); err != nil {
			return err
		}
		for _, id := range []string{challenger.UserID, opponent.UserID} {
			if err := s.cooldowns.Start(ctx, id, cooldown.ActionDuel, s.cfg.DuelCooldown); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
