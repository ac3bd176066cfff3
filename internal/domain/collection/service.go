package collection

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/jonboulle/clockwork"
)

const (
	HuntReason        = "Hunt expedition cost"
	LuckyCharmID      = "lucky_charm"
	PremiumCooldownX  = 0.75
	DefaultMissChance = 0.2
)

type Config struct {
	HuntCost        int64
	HuntCooldown    time.Duration
	ObserveCooldown time.Duration
	MissChance      float64
	Weights         Weights
}

type Service struct {
	repo      Repository
	wallet    Wallet
	cooldowns Cooldowns
	clock     clockwork.Clock
	cfg       Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(repo Repository, wallet Wallet, cooldowns Cooldowns, clock clockwork.Clock, rng *rand.Rand, cfg Config) *Service {
	if cfg.Weights == nil {
		cfg.Weights = DefaultWeights
	}
	if cfg.MissChance < 0 || cfg.MissChance >= 1 {
		cfg.MissChance = DefaultMissChance
	}
	return &Service{
		repo:      repo,
		wallet:    wallet,
		cooldowns: cooldowns,
		clock:     clock,
		cfg:       cfg,
		rng:       rng,
	}
}

func (s *Service) Config() Config {
	return s.cfg
}

type HuntRequest struct {
	UserID     string
	Equipment  string
	LuckyCharm bool
}

type HuntResult struct {
	Missed   bool
	Species  catalog.Species
	Bonus    float64
	Cost     int64
	Wallet   int64
	Cooldown time.Duration
	Consumed []string
}

// Hunt pays for an expedition and rolls an encounter. A miss still costs coins and starts the cooldown.
func (s *Service) Hunt(ctx context.Context, req HuntRequest) (*HuntResult, error) {
	if err := s.cooldowns.Check(ctx, req.UserID, cooldown.ActionHunt); err != nil {
		return nil, err
	}

	res := &HuntResult{Cost: s.cfg.HuntCost, Cooldown: s.cfg.HuntCooldown}
	var equipment []catalog.Item
	if req.Equipment != "" && req.Equipment != "none" {
		item, ok := catalog.ItemByID(req.Equipment)
		if !ok || item.Effect.HuntBonus <= 0 || item.ID == LuckyCharmID {
			return nil, gameerr.Invalid("equipment", "%s cannot be used on a hunt", req.Equipment)
		}
		equipment = append(equipment, item)
	}
	if req.LuckyCharm {
		charm, _ := catalog.ItemByID(LuckyCharmID)
		equipment = append(equipment, charm)
	}
	if len(equipment) > 0 {
		owned, err := s.wallet.Inventory(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load inventory: %w", err)
		}
		for _, it := range equipment {
			if owned[it.ID] <= 0 {
				return nil, fmt.Errorf("%s: %w", it.Name, gameerr.ErrItemNotFound)
			}
			res.Bonus += it.Effect.HuntBonus
		}
	}

	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.repo.GetUser(ctx, req.UserID)
		if err != nil {
			return err
		}
		if res.Wallet, err = s.wallet.Debit(ctx, req.UserID, s.cfg.HuntCost, HuntReason); err != nil {
			return err
		}
		for _, it := range equipment {
			if !it.Effect.Consumable {
				continue
			}
			if err := s.wallet.Consume(ctx, req.UserID, it.ID, 1); err != nil {
				return err
			}
			res.Consumed = append(res.Consumed, it.ID)
		}
		if err := s.repo.IncrementHunts(ctx, req.UserID); err != nil {
			return err
		}
		if user.IsPremium(s.clock.Now()) {
			res.Cooldown = time.Duration(float64(res.Cooldown) * PremiumCooldownX)
		}
		return s.cooldowns.Start(ctx, req.UserID, cooldown.ActionHunt, res.Cooldown)
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	res.Missed = s.rng.Float64() < s.cfg.MissChance
	if !res.Missed {
		res.Species = DrawSpecies(s.rng, s.cfg.Weights, res.Bonus)
	}
	s.mu.Unlock()

	slog.Debug("Hunt rolled",
		slog.String("type", "game"),
		slog.String("user_id", req.UserID),
		slog.Bool("missed", res.Missed),
		slog.String("species", res.Species.ID),
		slog.Float64("bonus", res.Bonus),
	)
	return res, nil
}

// Capture adds a spotted species to the user's album.
func (s *Service) Capture(ctx context.Context, userID, speciesID string) (*models.OwnedBird, error) {
	sp, ok := catalog.SpeciesByID(speciesID)
	if !ok {
		return nil, gameerr.ErrBirdNotFound
	}

	bird := &models.OwnedBird{
		OwnerID:    userID,
		SpeciesID:  sp.ID,
		BondLevel:  1,
		CapturedAt: s.clock.Now(),
	}
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.InsertBird(ctx, bird); err != nil {
			return err
		}
		return s.repo.IncrementCaught(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	bird.Species = speciesModel(sp)
	return bird, nil
}

type ObserveResult struct {
	Bird         *models.OwnedBird
	Minutes      int
	BondIncrease int
	Reward       int64
	Camera       string
}

// Observe spends time with a bird to raise its bond and earn coins.
func (s *Service) Observe(ctx context.Context, ownerID string, birdID int64, minutes int) (*ObserveResult, error) {
	if minutes < MinObserveMinutes || minutes > MaxObserveMinutes {
		return nil, gameerr.Invalid("minutes", "must be between %d and %d", MinObserveMinutes, MaxObserveMinutes)
	}
	if err := s.cooldowns.Check(ctx, ownerID, cooldown.ActionObserve); err != nil {
		return nil, err
	}

	bird, err := s.repo.GetBird(ctx, ownerID, birdID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if rest := RestRemaining(bird.LastObservedAt, now); rest > 0 {
		return nil, &gameerr.RestingError{Remaining: rest}
	}

	sp, ok := catalog.SpeciesByID(bird.SpeciesID)
	if !ok {
		return nil, gameerr.ErrBirdNotFound
	}
	owned, err := s.wallet.Inventory(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	res := &ObserveResult{Bird: bird, Minutes: minutes}
	multiplier := 1.0
	if cam, ok := catalog.BestCamera(owned); ok {
		multiplier = cam.Effect.BondMultiplier
		res.Camera = cam.Name
	}
	res.BondIncrease = BondIncrease(minutes, sp.Rarity, multiplier)
	res.Reward = ObservationReward(minutes, sp.BaseValue)

	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.RecordObservation(ctx, bird.ID, bird.Version, res.BondIncrease, now); err != nil {
			return err
		}
		if res.Reward > 0 {
			if _, err := s.wallet.Credit(ctx, ownerID, res.Reward, "Observed "+bird.DisplayName()); err != nil {
				return err
			}
		}
		if err := s.repo.IncrementObservations(ctx, ownerID); err != nil {
			return err
		}
		return s.cooldowns.Start(ctx, ownerID, cooldown.ActionObserve, s.cfg.ObserveCooldown)
	})
	if err != nil {
		return nil, err
	}

	bird.BondLevel += res.BondIncrease
	bird.TimesObserved++
	bird.Version++
	bird.LastObservedAt = now
	return res, nil
}

type PartResult struct {
	Bird   *models.OwnedBird
	Amount int64
	Wallet int64
}

// Release frees a bird for a refund. Releasing twice fails with ErrBirdNotFound.
func (s *Service) Release(ctx context.Context, ownerID string, birdID int64) (*PartResult, error) {
	return s.part(ctx, ownerID, birdID, false)
}

// Sell parts with a bird at its sale value.
func (s *Service) Sell(ctx context.Context, ownerID string, birdID int64) (*PartResult, error) {
	return s.part(ctx, ownerID, birdID, true)
}

func (s *Service) part(ctx context.Context, ownerID string, birdID int64, sold bool) (*PartResult, error) {
	res := &PartResult{}
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		bird, err := s.repo.GetBird(ctx, ownerID, birdID)
		if err != nil {
			return err
		}
		sp, ok := catalog.SpeciesByID(bird.SpeciesID)
		if !ok {
			return gameerr.ErrBirdNotFound
		}

		reason := "Released " + bird.DisplayName()
		res.Amount = ReleaseRefund(sp.BaseValue, bird.BondLevel)
		if sold {
			reason = "Sold " + bird.DisplayName()
			res.Amount = SaleValue(sp.BaseValue, bird.BondLevel)
		}
		if err := s.repo.ReleaseBird(ctx, ownerID, birdID, s.clock.Now(), sold); err != nil {
			return err
		}
		res.Bird = bird
		if res.Amount <= 0 {
			return nil
		}
		res.Wallet, err = s.wallet.Credit(ctx, ownerID, res.Amount, reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Rename sets a custom name; an empty name restores the species name.
func (s *Service) Rename(ctx context.Context, ownerID string, birdID int64, name string) error {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return gameerr.Invalid("name", "must be at most %d characters", MaxNameLength)
	}
	return s.repo.RenameBird(ctx, ownerID, birdID, name)
}

type AlbumFilter struct {
	Rarity catalog.Rarity
	Search string
}

// Album lists the user's active birds, optionally narrowed by rarity or name.
func (s *Service) Album(ctx context.Context, userID string, f AlbumFilter) ([]*models.OwnedBird, error) {
	birds, err := s.repo.ListBirds(ctx, userID)
	if err != nil {
		return nil, err
	}
	if f.Rarity == "" && f.Search == "" {
		return birds, nil
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := birds[:0:0]
	for _, b := range birds {
		sp, _ := catalog.SpeciesByID(b.SpeciesID)
		if f.Rarity != "" && sp.Rarity != f.Rarity {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.DisplayName()), search) &&
			!strings.Contains(strings.ToLower(sp.Name), search) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *Service) Bird(ctx context.Context, ownerID string, birdID int64) (*models.OwnedBird, error) {
	return s.repo.GetBird(ctx, ownerID, birdID)
}

func speciesModel(sp catalog.Species) *models.BirdSpecies {
	return &models.BirdSpecies{
		ID:             sp.ID,
		Name:           sp.Name,
		ScientificName: sp.ScientificName,
		Rarity:         string(sp.Rarity),
		BaseValue:      sp.BaseValue,
		Habitat:        sp.Habitat,
		Description:    sp.Description,
	}
}
