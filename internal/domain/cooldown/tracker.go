package cooldown

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	lru "github.com/hashicorp/golang-lru"
	"github.com/jonboulle/clockwork"
)

const (
	ActionHunt     = "hunt"
	ActionWork     = "work"
	ActionObserve  = "observe"
	ActionTrade    = "trade"
	ActionMinigame = "minigame"
	ActionDuel     = "duel"
)

// Actions lists every action that can be put on cooldown.
var Actions = []string{ActionHunt, ActionWork, ActionObserve, ActionTrade, ActionMinigame, ActionDuel}

const defaultCacheSize = 4096

// Active is one running cooldown.
type Active struct {
	Action    string
	ExpiresAt time.Time
	Remaining time.Duration
}

// Tracker answers "may this user do this action yet". Storage is authoritative;
// the LRU only saves a round trip for repeated reads and is dropped on every write.
type Tracker struct {
	repo  Repository
	clock clockwork.Clock
	cache *lru.Cache
}

func NewTracker(repo Repository, clock clockwork.Clock, cacheSize int) (*Tracker, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cooldown cache: %w", err)
	}
	return &Tracker{repo: repo, clock: clock, cache: cache}, nil
}

func cacheKey(userID, action string) string {
	return userID + ":" + action
}

// Remaining returns zero when the action may proceed.
func (t *Tracker) Remaining(ctx context.Context, userID, action string) (time.Duration, error) {
	expiresAt, err := t.expiry(ctx, userID, action)
	if err != nil {
		return 0, err
	}
	return clamp(expiresAt.Sub(t.clock.Now())), nil
}

// Check returns a *gameerr.CooldownError while the action is still cooling down.
func (t *Tracker) Check(ctx context.Context, userID, action string) error {
	remaining, err := t.Remaining(ctx, userID, action)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return &gameerr.CooldownError{Action: action, Remaining: remaining}
	}
	return nil
}

// Start sets the expiry to now+d, replacing whatever was pending. d <= 0 means no cooldown.
func (t *Tracker) Start(ctx context.Context, userID, action string, d time.Duration) error {
	expiresAt := t.clock.Now()
	if d > 0 {
		expiresAt = expiresAt.Add(d)
	}
	if err := t.repo.SetExpiry(ctx, userID, action, expiresAt); err != nil {
		return fmt.Errorf("failed to store %s cooldown: %w", action, err)
	}
	t.cache.Remove(cacheKey(userID, action))
	return nil
}

func (t *Tracker) Clear(ctx context.Context, userID, action string) error {
	if err := t.repo.Delete(ctx, userID, action); err != nil {
		return fmt.Errorf("failed to clear %s cooldown: %w", action, err)
	}
	t.cache.Remove(cacheKey(userID, action))
	return nil
}

// ClearAll removes every cooldown of one user and reports how many were running.
func (t *Tracker) ClearAll(ctx context.Context, userID string) (int64, error) {
	n, err := t.repo.DeleteAllForUser(ctx, userID, t.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to clear cooldowns: %w", err)
	}
	prefix := userID + ":"
	for _, k := range t.cache.Keys() {
		if key, ok := k.(string); ok && strings.HasPrefix(key, prefix) {
			t.cache.Remove(key)
		}
	}
	return n, nil
}

// Active lists the user's running cooldowns.
func (t *Tracker) Active(ctx context.Context, userID string) ([]Active, error) {
	now := t.clock.Now()
	rows, err := t.repo.ListActive(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list cooldowns: %w", err)
	}
	out := make([]Active, 0, len(rows))
	for _, r := range rows {
		if remaining := clamp(r.ExpiresAt.Sub(now)); remaining > 0 {
			out = append(out, Active{Action: r.Action, ExpiresAt: r.ExpiresAt, Remaining: remaining})
		}
	}
	return out, nil
}

// Cleanup deletes expired rows. Cached entries are left alone; they already read as expired.
func (t *Tracker) Cleanup(ctx context.Context) (int64, error) {
	return t.repo.DeleteExpired(ctx, t.clock.Now())
}

func (t *Tracker) expiry(ctx context.Context, userID, action string) (time.Time, error) {
	key := cacheKey(userID, action)
	if v, ok := t.cache.Get(key); ok {
		return v.(time.Time), nil
	}
	expiresAt, err := t.repo.GetExpiry(ctx, userID, action)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load %s cooldown: %w", action, err)
	}
	t.cache.Add(key, expiresAt)
	return expiresAt, nil
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
