package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Session is a short-lived interaction state owned by one Discord user.
type Session[T any] struct {
	ID        string
	OwnerID   string
	Data      T
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore keeps pending interactive sessions (encounters, job offers,
// duels, minigames) keyed by the id embedded in component custom ids.
type SessionStore[T any] struct {
	name     string
	clock    clockwork.Clock
	ttl      time.Duration
	sessions sync.Map
}

func NewSessionStore[T any](name string, clock clockwork.Clock, ttl time.Duration) *SessionStore[T] {
	return &SessionStore[T]{
		name:  name,
		clock: clock,
		ttl:   ttl,
	}
}

// Open stores data under a fresh id.
func (s *SessionStore[T]) Open(ownerID string, data T) *Session[T] {
	return s.OpenFor(ownerID, data, s.ttl)
}

// OpenFor stores data with a custom lifetime.
func (s *SessionStore[T]) OpenFor(ownerID string, data T, ttl time.Duration) *Session[T] {
	now := s.clock.Now()
	sess := &Session[T]{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	s.sessions.Store(sess.ID, sess)
	return sess
}

// Get returns the session for the given user without consuming it.
// The empty ownerID skips the ownership check.
func (s *SessionStore[T]) Get(id, userID string) (*Session[T], error) {
	v, ok := s.sessions.Load(id)
	if !ok {
		return nil, fmt.Errorf("%s session: %w", s.name, gameerr.ErrExpired)
	}
	sess := v.(*Session[T])
	if !s.clock.Now().Before(sess.ExpiresAt) {
		s.sessions.CompareAndDelete(id, sess)
		return nil, fmt.Errorf("%s session: %w", s.name, gameerr.ErrExpired)
	}
	if userID != "" && sess.OwnerID != userID {
		return nil, fmt.Errorf("this %s belongs to someone else: %w", s.name, gameerr.ErrPermission)
	}
	return sess, nil
}

// Take consumes the session. Exactly one concurrent caller wins.
func (s *SessionStore[T]) Take(id, userID string) (*Session[T], error) {
	sess, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if !s.sessions.CompareAndDelete(id, sess) {
		return nil, fmt.Errorf("%s session: %w", s.name, gameerr.ErrExpired)
	}
	return sess, nil
}

// Drop removes a session regardless of owner.
func (s *SessionStore[T]) Drop(id string) {
	s.sessions.Delete(id)
}

func (s *SessionStore[T]) Len() int {
	n := 0
	s.sessions.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Sweep deletes expired sessions and reports how many were removed.
func (s *SessionStore[T]) Sweep() int {
	now := s.clock.Now()
	removed := 0
	s.sessions.Range(func(key, value any) bool {
		sess := value.(*Session[T])
		if !now.Before(sess.ExpiresAt) && s.sessions.CompareAndDelete(key, sess) {
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps on every tick until ctx is done.
func (s *SessionStore[T]) Run(ctx context.Context, every time.Duration) {
	ticker := s.clock.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.Sweep()
		}
	}
}
