package progression_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/birdwatchers/birdhunter/internal/domain/progression/mock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func flock(ids ...string) []*models.OwnedBird {
	out := make([]*models.OwnedBird, len(ids))
	for i, id := range ids {
		out[i] = &models.OwnedBird{ID: int64(i + 1), SpeciesID: id, BondLevel: i + 1}
	}
	return out
}

// Wednesday
var now = time.Date(2024, 6, 5, 15, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*progression.Service, *mock.MockRepository, *mock.MockWallet) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	wallet := mock.NewMockWallet(ctrl)
	repo.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()
	return progression.NewService(repo, wallet, clockwork.NewFakeClockAt(now)), repo, wallet
}

func expectSnapshot(repo *mock.MockRepository, user *models.User, birds []*models.OwnedBird, ledger map[string]int64) {
	repo.EXPECT().GetUser(gomock.Any(), user.UserID).Return(user, nil)
	repo.EXPECT().ListBirds(gomock.Any(), user.UserID).Return(birds, nil)
	repo.EXPECT().CountLedger(gomock.Any(), user.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, prefix string) (int64, error) { return ledger[prefix], nil }).
		Times(4)
	repo.EXPECT().SumEarned(gomock.Any(), user.UserID).Return(ledger["earned"], nil)
	repo.EXPECT().CountTrades(gomock.Any(), user.UserID).Return(ledger["trades"], nil)
}

func TestService_Snapshot(t *testing.T) {
	svc, repo, _ := newService(t)
	user := &models.User{UserID: "u1", WalletBalance: 300, BankBalance: 700, TotalHunts: 12, TotalCaught: 4, TotalObservations: 3}
	expectSnapshot(repo, user, flock("mallard", "snowy_owl", "california_condor"), map[string]int64{
		catalog.ReasonWork:   5,
		catalog.ReasonGiftTo: 2,
		"earned":             1234,
		"trades":             1,
	})

	snap, err := svc.Snapshot(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(12), snap.Metrics[catalog.MetricHunts])
	assert.Equal(t, int64(5), snap.Metrics[catalog.MetricWorkShifts])
	assert.Equal(t, int64(2), snap.Metrics[catalog.MetricGiftsSent])
	assert.Equal(t, int64(0), snap.Metrics[catalog.MetricDuelsWon])
	assert.Equal(t, int64(1234), snap.Metrics[catalog.MetricCoinsEarned])
	assert.Equal(t, int64(1000), snap.Metrics[catalog.MetricNetWorth])
	assert.Equal(t, int64(3), snap.Metrics[catalog.MetricDistinctBirds])
	assert.Equal(t, int64(2), snap.Metrics[catalog.MetricRareBirds])
	assert.Equal(t, int64(1), snap.Metrics[catalog.MetricLegendaryBirds])
	assert.Equal(t, int64(3), snap.Metrics[catalog.MetricMaxBond])
}

func TestService_EvaluateUnlocksOnce(t *testing.T) {
	svc, repo, _ := newService(t)
	user := &models.User{UserID: "u1", TotalHunts: 1}
	expectSnapshot(repo, user, nil, map[string]int64{})

	repo.EXPECT().ListAchievements(gomock.Any(), "u1").Return([]*models.UserAchievement{
		{UserID: "u1", AchievementID: "first_capture", Progress: 0, Target: 1},
	}, nil)

	var upserted []*models.UserAchievement
	repo.EXPECT().UpsertAchievement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.UserAchievement) error {
			upserted = append(upserted, a)
			return nil
		}).AnyTimes()

	got, err := svc.Evaluate(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "first_hunt", got[0].ID)

	for _, a := range upserted {
		assert.NotEqual(t, "first_capture", a.AchievementID, "unchanged row rewritten")
		if a.AchievementID == "first_hunt" {
			assert.True(t, a.UnlockedAt.Equal(now))
		}
	}
}

func TestService_ClaimAchievement(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		claimErr error
		wantErr  error
	}{
		{name: "pays reward", id: "first_hunt"},
		{name: "already claimed", id: "first_hunt", claimErr: gameerr.ErrAchievementNotFound, wantErr: gameerr.ErrNotFound},
		{name: "unknown", id: "moon_landing", wantErr: gameerr.ErrAchievementNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, wallet := newService(t)
			if _, ok := catalog.AchievementByID(tt.id); ok {
				repo.EXPECT().ClaimAchievement(gomock.Any(), "u1", tt.id, now).Return(tt.claimErr)
			}
			if tt.wantErr == nil {
				wallet.EXPECT().Credit(gomock.Any(), "u1", int64(50), "Achievement: First Steps").Return(int64(150), nil)
			}

			_, wal, err := svc.ClaimAchievement(context.Background(), "u1", tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ClaimAchievement() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				assert.Equal(t, int64(150), wal)
			}
		})
	}
}

func TestPeriodStart(t *testing.T) {
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), progression.PeriodStart(catalog.Daily, now))
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), progression.PeriodStart(catalog.Weekly, now))

	sunday := time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), progression.PeriodStart(catalog.Weekly, sunday))
	monday := time.Date(2024, 6, 10, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, monday.Truncate(24*time.Hour), progression.PeriodStart(catalog.Weekly, monday))
}

func TestService_AssignResetsStalePeriods(t *testing.T) {
	svc, repo, _ := newService(t)
	today := progression.PeriodStart(catalog.Daily, now)
	repo.EXPECT().ListQuests(gomock.Any(), "u1").Return([]*models.UserQuest{
		{UserID: "u1", QuestID: "daily_hunter", Progress: 2, Target: 3, Status: models.QuestActive, PeriodStart: today, ExpiresAt: today.Add(24 * time.Hour)},
		{UserID: "u1", QuestID: "daily_catch", Progress: 2, Target: 2, Status: models.QuestClaimed, PeriodStart: today.Add(-24 * time.Hour)},
	}, nil)

	fresh := map[string]bool{}
	repo.EXPECT().UpsertQuest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.UserQuest) error {
			fresh[q.QuestID] = true
			assert.Equal(t, models.QuestActive, q.Status)
			assert.Zero(t, q.Progress)
			return nil
		}).Times(len(catalog.AllQuests()) - 1)

	got, err := svc.Assign(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, len(catalog.AllQuests()))
	assert.False(t, fresh["daily_hunter"])
	assert.True(t, fresh["daily_catch"])
	assert.Equal(t, 9*time.Hour, got[0].ExpiresIn)
}

func TestService_TrackCompletesQuest(t *testing.T) {
	svc, repo, _ := newService(t)
	today := progression.PeriodStart(catalog.Daily, now)
	week := progression.PeriodStart(catalog.Weekly, now)

	var rows []*models.UserQuest
	for _, q := range catalog.AllQuests() {
		start := today
		if q.Period == catalog.Weekly {
			start = week
		}
		rows = append(rows, &models.UserQuest{UserID: "u1", QuestID: q.ID, Target: q.Target, Status: models.QuestActive, PeriodStart: start, ExpiresAt: progression.PeriodEnd(q.Period, start)})
	}
	rows[0].Progress = 2

	repo.EXPECT().ListQuests(gomock.Any(), "u1").Return(rows, nil)
	saved := map[string]int64{}
	repo.EXPECT().UpsertQuest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.UserQuest) error {
			saved[q.QuestID] = q.Progress
			return nil
		}).Times(2)

	done, err := svc.Track(context.Background(), "u1", catalog.MetricHunts, 5)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "daily_hunter", done[0].ID)
	assert.Equal(t, int64(3), saved["daily_hunter"])
	assert.Equal(t, int64(5), saved["weekly_hunter"])
	assert.Equal(t, models.QuestCompleted, rows[0].Status)
}

func TestService_ClaimQuest(t *testing.T) {
	svc, repo, wallet := newService(t)
	repo.EXPECT().ClaimQuest(gomock.Any(), "u1", "daily_watcher", now).Return(nil)
	wallet.EXPECT().Credit(gomock.Any(), "u1", int64(80), "Quest: Patient Watcher").Return(int64(80), nil)

	q, _, err := svc.ClaimQuest(context.Background(), "u1", "daily_watcher")
	require.NoError(t, err)
	assert.Equal(t, int64(80), q.Reward)

	repo.EXPECT().ClaimQuest(gomock.Any(), "u1", "daily_watcher", now).Return(gameerr.ErrQuestNotFound)
	_, _, err = svc.ClaimQuest(context.Background(), "u1", "daily_watcher")
	assert.ErrorIs(t, err, gameerr.ErrQuestNotFound)
}

func TestService_Leaderboard(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.EXPECT().LeaderboardEntries(gomock.Any(), progression.BoardWealth).Return([]progression.Entry{
		{UserID: "a", Value: 5},
		{UserID: "b", Value: 50},
	}, nil)

	board, err := svc.Leaderboard(context.Background(), progression.BoardWealth)
	require.NoError(t, err)
	assert.Equal(t, "b", board[0].UserID)

	_, err = svc.Leaderboard(context.Background(), progression.Board("karma"))
	assert.ErrorIs(t, err, gameerr.ErrValidation)
}
