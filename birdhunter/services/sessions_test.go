package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewSessionStore[string]("duel", clock, time.Minute)

	sess := store.Open("alice", "payload")
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, clock.Now().Add(time.Minute), sess.ExpiresAt)

	t.Run("owner check", func(t *testing.T) {
		_, err := store.Get(sess.ID, "bob")
		assert.ErrorIs(t, err, gameerr.ErrPermission)

		got, err := store.Get(sess.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "payload", got.Data)
	})

	t.Run("take consumes", func(t *testing.T) {
		got, err := store.Take(sess.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.OwnerID)

		_, err = store.Take(sess.ID, "alice")
		assert.ErrorIs(t, err, gameerr.ErrExpired)
	})

	t.Run("expiry", func(t *testing.T) {
		s := store.Open("alice", "late")
		clock.Advance(time.Minute)
		_, err := store.Get(s.ID, "alice")
		assert.ErrorIs(t, err, gameerr.ErrExpired)
		assert.Equal(t, 0, store.Len())
	})
}

func TestSessionStoreSweep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewSessionStore[int]("encounter", clock, 5*time.Minute)

	store.Open("a", 1)
	store.OpenFor("b", 2, 30*time.Second)
	store.OpenFor("c", 3, time.Second)

	clock.Advance(time.Minute)
	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreTakeIsExclusive(t *testing.T) {
	store := NewSessionStore[int]("minigame", clockwork.NewFakeClock(), time.Minute)
	sess := store.Open("alice", 7)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Take(sess.ID, "alice"); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}
