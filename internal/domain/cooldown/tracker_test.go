package cooldown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown/mock"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/jonboulle/clockwork"
	"go.uber.org/mock/gomock"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTracker(t *testing.T) (*Tracker, *mock.MockRepository, *clockwork.FakeClock) {
	t.Helper()
	repo := mock.NewMockRepository(gomock.NewController(t))
	clock := clockwork.NewFakeClockAt(epoch)
	tr, err := NewTracker(repo, clock, 16)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	return tr, repo, clock
}

func TestTracker_Remaining(t *testing.T) {
	tests := []struct {
		name    string
		expiry  time.Time
		want    time.Duration
		wantErr bool
	}{
		{name: "never started", expiry: time.Time{}, want: 0},
		{name: "running", expiry: epoch.Add(10 * time.Minute), want: 10 * time.Minute},
		{name: "expired", expiry: epoch.Add(-time.Second), want: 0},
		{name: "exactly now", expiry: epoch, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, repo, _ := newTracker(t)
			repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionHunt).Return(tt.expiry, nil)

			got, err := tr.Remaining(context.Background(), "u1", ActionHunt)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Remaining() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Remaining() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTracker_StartThenElapse(t *testing.T) {
	tr, repo, clock := newTracker(t)
	ctx := context.Background()
	d := 30 * time.Minute
	expiresAt := epoch.Add(d)

	repo.EXPECT().SetExpiry(gomock.Any(), "u1", ActionHunt, expiresAt).Return(nil)
	repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionHunt).Return(expiresAt, nil).Times(1)

	if err := tr.Start(ctx, "u1", ActionHunt, d); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for _, step := range []struct {
		advance time.Duration
		want    time.Duration
	}{
		{0, d},
		{29*time.Minute + 59*time.Second, time.Second},
		{time.Second, 0},
		{time.Hour, 0},
	} {
		clock.Advance(step.advance)
		got, err := tr.Remaining(ctx, "u1", ActionHunt)
		if err != nil {
			t.Fatalf("Remaining() error = %v", err)
		}
		if got != step.want {
			t.Errorf("Remaining() after +%v = %v, want %v", step.advance, got, step.want)
		}
	}
}

func TestTracker_StartNonPositiveMeansNoCooldown(t *testing.T) {
	tr, repo, _ := newTracker(t)
	repo.EXPECT().SetExpiry(gomock.Any(), "u1", ActionWork, epoch).Return(nil)
	repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionWork).Return(epoch, nil)

	if err := tr.Start(context.Background(), "u1", ActionWork, -5*time.Minute); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := tr.Check(context.Background(), "u1", ActionWork); err != nil {
		t.Errorf("Check() error = %v, want nil", err)
	}
}

func TestTracker_StartOverwritesPending(t *testing.T) {
	tr, repo, clock := newTracker(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionObserve).Return(epoch.Add(2*time.Hour), nil),
		repo.EXPECT().SetExpiry(gomock.Any(), "u1", ActionObserve, epoch.Add(time.Minute+5*time.Minute)).Return(nil),
		repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionObserve).Return(epoch.Add(6*time.Minute), nil),
	)

	if _, err := tr.Remaining(ctx, "u1", ActionObserve); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Minute)
	if err := tr.Start(ctx, "u1", ActionObserve, 5*time.Minute); err != nil {
		t.Fatal(err)
	}
	got, err := tr.Remaining(ctx, "u1", ActionObserve)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5*time.Minute {
		t.Errorf("Remaining() = %v, want 5m", got)
	}
}

func TestTracker_Check(t *testing.T) {
	tr, repo, _ := newTracker(t)
	repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionHunt).Return(epoch.Add(90*time.Second), nil)

	err := tr.Check(context.Background(), "u1", ActionHunt)
	var cdErr *gameerr.CooldownError
	if !errors.As(err, &cdErr) {
		t.Fatalf("Check() error = %v, want CooldownError", err)
	}
	if cdErr.Remaining != 90*time.Second || cdErr.Action != ActionHunt {
		t.Errorf("CooldownError = %+v", cdErr)
	}
	if !errors.Is(err, gameerr.ErrCooldownActive) {
		t.Error("CooldownError does not match ErrCooldownActive")
	}
}

func TestTracker_RepositoryFailureIsNotCached(t *testing.T) {
	tr, repo, _ := newTracker(t)
	gomock.InOrder(
		repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionHunt).Return(time.Time{}, errors.New("database is locked")),
		repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionHunt).Return(time.Time{}, nil),
	)

	if _, err := tr.Remaining(context.Background(), "u1", ActionHunt); err == nil {
		t.Fatal("Remaining() error = nil, want error")
	}
	if _, err := tr.Remaining(context.Background(), "u1", ActionHunt); err != nil {
		t.Fatalf("Remaining() error = %v", err)
	}
}

func TestTracker_ClearAllDropsCachedEntries(t *testing.T) {
	tr, repo, _ := newTracker(t)
	ctx := context.Background()

	repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionHunt).Return(epoch.Add(time.Hour), nil).Times(1)
	repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionWork).Return(epoch.Add(time.Hour), nil).Times(1)
	repo.EXPECT().DeleteAllForUser(gomock.Any(), "u1", epoch).Return(int64(2), nil)
	repo.EXPECT().GetExpiry(gomock.Any(), "u1", ActionHunt).Return(time.Time{}, nil).Times(1)

	for _, a := range []string{ActionHunt, ActionWork} {
		if _, err := tr.Remaining(ctx, "u1", a); err != nil {
			t.Fatal(err)
		}
	}
	n, err := tr.ClearAll(ctx, "u1")
	if err != nil || n != 2 {
		t.Fatalf("ClearAll() = %d, %v", n, err)
	}
	got, err := tr.Remaining(ctx, "u1", ActionHunt)
	if err != nil || got != 0 {
		t.Errorf("Remaining() after ClearAll = %v, %v", got, err)
	}
}

func TestTracker_Active(t *testing.T) {
	tr, repo, _ := newTracker(t)
	repo.EXPECT().ListActive(gomock.Any(), "u1", epoch).Return([]*models.Cooldown{
		{UserID: "u1", Action: ActionHunt, ExpiresAt: epoch.Add(5 * time.Minute)},
		{UserID: "u1", Action: ActionWork, ExpiresAt: epoch.Add(-time.Minute)},
	}, nil)

	got, err := tr.Active(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Action != ActionHunt || got[0].Remaining != 5*time.Minute {
		t.Errorf("Active() = %+v", got)
	}
}
