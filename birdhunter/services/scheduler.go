package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const (
	JobCooldownCleanup = "cooldown-cleanup"
	JobTradeExpiry     = "trade-expiry"
	JobBankInterest    = "bank-interest"

	jobTimeout = time.Minute
)

type CooldownCleaner interface {
	Cleanup(ctx context.Context) (int64, error)
}

type TradeExpirer interface {
	ExpireTrades(ctx context.Context) (int64, error)
}

type InterestAccruer interface {
	AccrueInterest(ctx context.Context) (int64, error)
}

// SchedulerDeps are the maintenance targets. Interest is nil when accrual is disabled.
type SchedulerDeps struct {
	Cooldowns CooldownCleaner
	Trades    TradeExpirer
	Interest  InterestAccruer
}

type scheduledJob struct {
	name string
	def  gocron.JobDefinition
	run  func(ctx context.Context) (int64, error)
}

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	s gocron.Scheduler
}

func NewScheduler(deps SchedulerDeps, opts ...gocron.SchedulerOption) (*Scheduler, error) {
	s, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	jobs := []scheduledJob{
		{JobCooldownCleanup, gocron.DurationJob(time.Hour), deps.Cooldowns.Cleanup},
		{JobTradeExpiry, gocron.DurationJob(5 * time.Minute), deps.Trades.ExpireTrades},
	}
	if deps.Interest != nil {
		jobs = append(jobs, scheduledJob{JobBankInterest, gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))), deps.Interest.AccrueInterest})
	}

	for _, j := range jobs {
		if _, err := s.NewJob(j.def,
			gocron.NewTask(runJob, j.name, j.run),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			_ = s.Shutdown()
			return nil, fmt.Errorf("failed to schedule %s: %w", j.name, err)
		}
	}

	return &Scheduler{s: s}, nil
}

func runJob(name string, run func(ctx context.Context) (int64, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	n, err := run(ctx)
	if err != nil {
		slog.Error("Scheduled job failed",
			slog.String("type", "sys"),
			slog.String("job", name),
			slog.Any("error", err))
		return
	}
	slog.Info("Scheduled job finished",
		slog.String("type", "sys"),
		slog.String("job", name),
		slog.Int64("affected", n),
		slog.Duration("took", time.Since(start)))
}

func (s *Scheduler) Start() {
	s.s.Start()
}

// RunNow triggers a job by name outside its schedule.
func (s *Scheduler) RunNow(name string) error {
	for _, j := range s.s.Jobs() {
		if j.Name() == name {
			return j.RunNow()
		}
	}
	return fmt.Errorf("no scheduled job named %q", name)
}

func (s *Scheduler) JobNames() []string {
	jobs := s.s.Jobs()
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name())
	}
	return names
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}
