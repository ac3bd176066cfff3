package progression

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/jonboulle/clockwork"
)

type Service struct {
	repo   Repository
	wallet Wallet
	clock  clockwork.Clock
}

func NewService(repo Repository, wallet Wallet, clock clockwork.Clock) *Service {
	return &Service{repo: repo, wallet: wallet, clock: clock}
}

// Snapshot is everything profile and stats views read for one player.
type Snapshot struct {
	User    *models.User
	Birds   []*models.OwnedBird
	Metrics map[catalog.Metric]int64
}

func (s *Snapshot) Breakdown() map[catalog.Rarity]int { return RarityBreakdown(s.Birds) }

func (s *Snapshot) CollectionValue() int64 { return CollectionValue(s.Birds) }

func (s *Snapshot) NetWorth() int64 { return NetWorth(s.User) }

// Snapshot loads the user, their active birds and every metric counter.
func (s *Service) Snapshot(ctx context.Context, userID string) (*Snapshot, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	birds, err := s.repo.ListBirds(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list birds: %w", err)
	}

	m := map[catalog.Metric]int64{
		catalog.MetricHunts:          user.TotalHunts,
		catalog.MetricCaptures:       user.TotalCaught,
		catalog.MetricObservations:   user.TotalObservations,
		catalog.MetricDistinctBirds:  int64(DistinctSpecies(birds)),
		catalog.MetricRareBirds:      int64(CountAtLeast(birds, catalog.Rare)),
		catalog.MetricLegendaryBirds: int64(CountAtLeast(birds, catalog.Legendary)),
		catalog.MetricMaxBond:        int64(MaxBond(birds)),
		catalog.MetricNetWorth:       NetWorth(user),
	}
	prefixed := map[catalog.Metric]string{
		catalog.MetricWorkShifts:   catalog.ReasonWork,
		catalog.MetricGiftsSent:    catalog.ReasonGiftTo,
		catalog.MetricDuelsWon:     catalog.ReasonDuelWon,
		catalog.MetricMinigamesWon: catalog.ReasonMinigame,
	}
	for metric, prefix := range prefixed {
		if m[metric], err = s.repo.CountLedger(ctx, userID, prefix); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", metric, err)
		}
	}
	if m[catalog.MetricCoinsEarned], err = s.repo.SumEarned(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to sum earnings: %w", err)
	}
	if m[catalog.MetricTrades], err = s.repo.CountTrades(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to count trades: %w", err)
	}

	return &Snapshot{User: user, Birds: birds, Metrics: m}, nil
}

type AchievementStatus struct {
	Achievement catalog.Achievement
	Progress    int64
	Unlocked    bool
	Claimed     bool
}

func (a AchievementStatus) Claimable() bool { return a.Unlocked && !a.Claimed }

// Evaluate refreshes stored progress for every achievement and returns the ones unlocked by this call.
func (s *Service) Evaluate(ctx context.Context, userID string) ([]catalog.Achievement, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	var unlocked []catalog.Achievement
	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		rows, err := s.repo.ListAchievements(ctx, userID)
		if err != nil {
			return err
		}
		stored := make(map[string]*models.UserAchievement, len(rows))
		for _, r := range rows {
			stored[r.AchievementID] = r
		}

		now := s.clock.Now()
		for _, a := range catalog.AllAchievements() {
			row, ok := stored[a.ID]
			if !ok {
				row = &models.UserAchievement{UserID: userID, AchievementID: a.ID, Target: a.Requirement}
			}
			progress := snap.Metrics[a.Metric]
			if ok && row.Progress == progress && (row.Unlocked() || progress < a.Requirement) {
				continue
			}
			row.Progress = progress
			row.Target = a.Requirement
			if !row.Unlocked() && progress >= a.Requirement {
				row.UnlockedAt = now
				unlocked = append(unlocked, a)
			}
			if err := s.repo.UpsertAchievement(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, a := range unlocked {
		slog.Info("Achievement unlocked",
			slog.String("type", "game"),
			slog.String("user_id", userID),
			slog.String("achievement", a.ID),
		)
	}
	return unlocked, nil
}

// Achievements lists every achievement with the player's stored state.
func (s *Service) Achievements(ctx context.Context, userID string, category catalog.AchievementCategory) ([]AchievementStatus, error) {
	rows, err := s.repo.ListAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	stored := make(map[string]*models.UserAchievement, len(rows))
	for _, r := range rows {
		stored[r.AchievementID] = r
	}

	var out []AchievementStatus
	for _, a := range catalog.AllAchievements() {
		if category != "" && a.Category != category {
			continue
		}
		st := AchievementStatus{Achievement: a}
		if r, ok := stored[a.ID]; ok {
			st.Progress = r.Progress
			st.Unlocked = r.Unlocked()
			st.Claimed = r.Claimed()
		}
		out = append(out, st)
	}
	return out, nil
}

// ClaimAchievement pays the reward of an unlocked achievement exactly once.
func (s *Service) ClaimAchievement(ctx context.Context, userID, achievementID string) (catalog.Achievement, int64, error) {
	a, ok := catalog.AchievementByID(achievementID)
	if !ok {
		return catalog.Achievement{}, 0, gameerr.ErrAchievementNotFound
	}
	var wallet int64
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.ClaimAchievement(ctx, userID, a.ID, s.clock.Now()); err != nil {
			return err
		}
		var err error
		wallet, err = s.wallet.Credit(ctx, userID, a.Reward, "Achievement: "+a.Name)
		return err
	})
	return a, wallet, err
}

// PeriodStart is midnight UTC for daily quests and Monday midnight UTC for weekly ones.
func PeriodStart(p catalog.QuestPeriod, now time.Time) time.Time {
	day := now.UTC().Truncate(24 * time.Hour)
	if p == catalog.Weekly {
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	}
	return day
}

func PeriodEnd(p catalog.QuestPeriod, start time.Time) time.Time {
	if p == catalog.Weekly {
		return start.AddDate(0, 0, 7)
	}
	return start.AddDate(0, 0, 1)
}

type QuestStatus struct {
	Quest     catalog.Quest
	Row       *models.UserQuest
	ExpiresIn time.Duration
}

// Assign makes sure the player holds a fresh row for every quest of the current periods.
func (s *Service) Assign(ctx context.Context, userID string) ([]QuestStatus, error) {
	now := s.clock.Now()
	var out []QuestStatus
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		rows, err := s.repo.ListQuests(ctx, userID)
		if err != nil {
			return err
		}
		stored := make(map[string]*models.UserQuest, len(rows))
		for _, r := range rows {
			stored[r.QuestID] = r
		}

		for _, q := range catalog.AllQuests() {
			start := PeriodStart(q.Period, now)
			row, ok := stored[q.ID]
			if !ok || !row.PeriodStart.Equal(start) {
				row = &models.UserQuest{
					UserID:      userID,
					QuestID:     q.ID,
					Target:      q.Target,
					Status:      models.QuestActive,
					PeriodStart: start,
					ExpiresAt:   PeriodEnd(q.Period, start),
				}
				if err := s.repo.UpsertQuest(ctx, row); err != nil {
					return err
				}
			}
			out = append(out, QuestStatus{Quest: q, Row: row, ExpiresIn: row.ExpiresAt.Sub(now)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Track advances every active quest measured by metric. It returns the quests completed by this call.
func (s *Service) Track(ctx context.Context, userID string, metric catalog.Metric, delta int64) ([]catalog.Quest, error) {
	if delta <= 0 {
		return nil, nil
	}
	var completed []catalog.Quest
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		statuses, err := s.Assign(ctx, userID)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		for _, st := range statuses {
			if st.Quest.Metric != metric || st.Row.Status != models.QuestActive {
				continue
			}
			st.Row.Progress = min(st.Row.Progress+delta, st.Row.Target)
			if st.Row.Progress >= st.Row.Target {
				st.Row.Status = models.QuestCompleted
				st.Row.CompletedAt = now
				completed = append(completed, st.Quest)
			}
			if err := s.repo.UpsertQuest(ctx, st.Row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// ClaimQuest pays a completed quest's reward once.
func (s *Service) ClaimQuest(ctx context.Context, userID, questID string) (catalog.Quest, int64, error) {
	q, ok := catalog.QuestByID(questID)
	if !ok {
		return catalog.Quest{}, 0, gameerr.ErrQuestNotFound
	}
	var wallet int64
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.ClaimQuest(ctx, userID, q.ID, s.clock.Now()); err != nil {
			return err
		}
		var err error
		wallet, err = s.wallet.Credit(ctx, userID, q.Reward, "Quest: "+q.Name)
		return err
	})
	return q, wallet, err
}

// Leaderboard ranks every player on board.
func (s *Service) Leaderboard(ctx context.Context, board Board) ([]Ranked, error) {
	valid := false
	for _, b := range Boards {
		valid = valid || b == board
	}
	if !valid {
		return nil, gameerr.Invalid("category", "unknown leaderboard %q", board)
	}
	entries, err := s.repo.LeaderboardEntries(ctx, board)
	if err != nil {
		return nil, err
	}
	return Leaderboard(entries), nil
}
