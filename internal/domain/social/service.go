// Package social covers everything two players do together: guilds, trades and duels.
package social

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type Config struct {
	TradeFee      float64
	TradeExpiry   time.Duration
	TradeCooldown time.Duration
	DuelCooldown  time.Duration
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

// DefaultTradeExpiry is how long a trade offer stays open.
const DefaultTradeExpiry = 10 * time.Minute

func NewService(repo Repository, wallet Wallet, cooldowns Cooldowns, clock clockwork.Clock, rng *rand.Rand, cfg Config) *Service {
	if cfg.TradeExpiry <= 0 {
		cfg.TradeExpiry = DefaultTradeExpiry
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
