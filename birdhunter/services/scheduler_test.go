package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	calls atomic.Int32
	err   error
}

func (c *countingJob) run(context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, c.err
}

type cleaner struct{ *countingJob }

func (c cleaner) Cleanup(ctx context.Context) (int64, error) { return c.run(ctx) }

type expirer struct{ *countingJob }

func (e expirer) ExpireTrades(ctx context.Context) (int64, error) { return e.run(ctx) }

type accruer struct{ *countingJob }

func (a accruer) AccrueInterest(ctx context.Context) (int64, error) { return a.run(ctx) }

func TestSchedulerJobs(t *testing.T) {
	t.Run("interest disabled", func(t *testing.T) {
		s, err := NewScheduler(SchedulerDeps{
			Cooldowns: cleaner{&countingJob{}},
			Trades:    expirer{&countingJob{}},
		})
		require.NoError(t, err)
		defer s.Stop()

		assert.ElementsMatch(t, []string{JobCooldownCleanup, JobTradeExpiry}, s.JobNames())
	})

	t.Run("interest enabled", func(t *testing.T) {
		s, err := NewScheduler(SchedulerDeps{
			Cooldowns: cleaner{&countingJob{}},
			Trades:    expirer{&countingJob{}},
			Interest:  accruer{&countingJob{}},
		})
		require.NoError(t, err)
		defer s.Stop()

		assert.Contains(t, s.JobNames(), JobBankInterest)
	})
}

func TestSchedulerRunNow(t *testing.T) {
	trades := &countingJob{err: errors.New("database is locked")}
	cooldowns := &countingJob{}

	s, err := NewScheduler(SchedulerDeps{
		Cooldowns: cleaner{cooldowns},
		Trades:    expirer{trades},
	})
	require.NoError(t, err)
	s.Start()
	defer s.Stop()

	require.NoError(t, s.RunNow(JobTradeExpiry))
	require.NoError(t, s.RunNow(JobCooldownCleanup))

	assert.Eventually(t, func() bool {
		return trades.calls.Load() == 1 && cooldowns.calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Error(t, s.RunNow("unknown"))
}
