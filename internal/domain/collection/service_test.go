package collection

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection/mock"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/jonboulle/clockwork"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

var errDiskFull = errors.New("disk full")

type fixture struct {
	svc       *Service
	repo      *mock.MockRepository
	wallet    *mock.MockWallet
	cooldowns *mock.MockCooldowns
}

func newFixture(t *testing.T, cfg Config) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		repo:      mock.NewMockRepository(ctrl),
		wallet:    mock.NewMockWallet(ctrl),
		cooldowns: mock.NewMockCooldowns(ctrl),
	}
	f.repo.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()
	f.svc = NewService(f.repo, f.wallet, f.cooldowns, clockwork.NewFakeClockAt(now), rand.New(rand.NewPCG(11, 12)), cfg)
	return f
}

var huntConfig = Config{
	HuntCost:        10,
	HuntCooldown:    30 * time.Minute,
	ObserveCooldown: 2 * time.Hour,
	MissChance:      0.2,
}

func TestService_Hunt(t *testing.T) {
	tests := []struct {
		name         string
		req          HuntRequest
		user         *models.User
		inventory    map[string]int
		cooldownErr  error
		debitErr     error
		wantCooldown time.Duration
		wantBonus    float64
		wantConsumed []string
		wantErr      error
	}{
		{
			name:         "plain hunt charges and starts cooldown",
			req:          HuntRequest{UserID: "u1"},
			user:         &models.User{UserID: "u1", WalletBalance: 100},
			wantCooldown: 30 * time.Minute,
		},
		{
			name:         "premium shortens cooldown",
			req:          HuntRequest{UserID: "u1"},
			user:         &models.User{UserID: "u1", PremiumUntil: now.Add(time.Hour)},
			wantCooldown: 22*time.Minute + 30*time.Second,
		},
		{
			name:         "trap is kept and lucky charm consumed",
			req:          HuntRequest{UserID: "u1", Equipment: "basic_trap", LuckyCharm: true},
			user:         &models.User{UserID: "u1"},
			inventory:    map[string]int{"basic_trap": 1, "lucky_charm": 2},
			wantCooldown: 30 * time.Minute,
			wantBonus:    0.20,
			wantConsumed: []string{"lucky_charm"},
		},
		{
			name:      "trap not owned",
			req:       HuntRequest{UserID: "u1", Equipment: "master_trap"},
			inventory: map[string]int{"basic_trap": 1},
			wantErr:   gameerr.ErrItemNotFound,
		},
		{
			name:    "camera is not hunt equipment",
			req:     HuntRequest{UserID: "u1", Equipment: "basic_camera"},
			wantErr: gameerr.ErrValidation,
		},
		{
			name:        "on cooldown",
			req:         HuntRequest{UserID: "u1"},
			cooldownErr: &gameerr.CooldownError{Action: cooldown.ActionHunt, Remaining: time.Minute},
			wantErr:     gameerr.ErrCooldownActive,
		},
		{
			name:     "broke",
			req:      HuntRequest{UserID: "u1"},
			user:     &models.User{UserID: "u1", WalletBalance: 5},
			debitErr: gameerr.ErrInsufficientFunds,
			wantErr:  gameerr.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, huntConfig)
			f.cooldowns.EXPECT().Check(gomock.Any(), "u1", cooldown.ActionHunt).Return(tt.cooldownErr)
			if tt.inventory != nil {
				f.wallet.EXPECT().Inventory(gomock.Any(), "u1").Return(tt.inventory, nil)
			}
			if tt.user != nil {
				f.repo.EXPECT().GetUser(gomock.Any(), "u1").Return(tt.user, nil)
				f.wallet.EXPECT().Debit(gomock.Any(), "u1", int64(10), HuntReason).Return(tt.user.WalletBalance-10, tt.debitErr)
			}
			if tt.wantErr == nil {
				for _, id := range tt.wantConsumed {
					f.wallet.EXPECT().Consume(gomock.Any(), "u1", id, 1).Return(nil)
				}
				f.repo.EXPECT().IncrementHunts(gomock.Any(), "u1").Return(nil)
				f.cooldowns.EXPECT().Start(gomock.Any(), "u1", cooldown.ActionHunt, tt.wantCooldown).Return(nil)
			}

			got, err := f.svc.Hunt(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Hunt() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Cooldown != tt.wantCooldown {
				t.Errorf("Cooldown = %v, want %v", got.Cooldown, tt.wantCooldown)
			}
			if got.Bonus < tt.wantBonus-1e-9 || got.Bonus > tt.wantBonus+1e-9 {
				t.Errorf("Bonus = %v, want %v", got.Bonus, tt.wantBonus)
			}
			if !got.Missed && !got.Species.Rarity.Valid() {
				t.Errorf("Species = %+v, want a catalog species", got.Species)
			}
		})
	}
}

func TestService_HuntScenario(t *testing.T) {
	f := newFixture(t, huntConfig)
	f.cooldowns.EXPECT().Check(gomock.Any(), "u1", cooldown.ActionHunt).Return(nil)
	f.repo.EXPECT().GetUser(gomock.Any(), "u1").Return(&models.User{UserID: "u1", WalletBalance: 100}, nil)
	f.wallet.EXPECT().Debit(gomock.Any(), "u1", int64(10), HuntReason).Return(int64(90), nil)
	f.repo.EXPECT().IncrementHunts(gomock.Any(), "u1").Return(nil)
	f.cooldowns.EXPECT().Start(gomock.Any(), "u1", cooldown.ActionHunt, 30*time.Minute).Return(nil)

	got, err := f.svc.Hunt(context.Background(), HuntRequest{UserID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Wallet != 90 || got.Cost != 10 {
		t.Errorf("Hunt() wallet = %d cost = %d, want 90 and 10", got.Wallet, got.Cost)
	}
}

func TestService_HuntAlwaysMisses(t *testing.T) {
	f := newFixture(t, Config{HuntCost: 10, HuntCooldown: time.Minute, MissChance: 0.999999})
	f.cooldowns.EXPECT().Check(gomock.Any(), "u1", cooldown.ActionHunt).Return(nil)
	f.repo.EXPECT().GetUser(gomock.Any(), "u1").Return(&models.User{UserID: "u1"}, nil)
	f.wallet.EXPECT().Debit(gomock.Any(), "u1", int64(10), HuntReason).Return(int64(0), nil)
	f.repo.EXPECT().IncrementHunts(gomock.Any(), "u1").Return(nil)
	f.cooldowns.EXPECT().Start(gomock.Any(), "u1", cooldown.ActionHunt, time.Minute).Return(nil)

	got, err := f.svc.Hunt(context.Background(), HuntRequest{UserID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Missed || got.Species.ID != "" {
		t.Errorf("Hunt() = %+v, want a miss", got)
	}
}

func TestService_Capture(t *testing.T) {
	f := newFixture(t, huntConfig)
	f.repo.EXPECT().InsertBird(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *models.OwnedBird) error {
		if b.BondLevel != 1 || b.TimesObserved != 0 || b.OwnerID != "u1" {
			t.Errorf("InsertBird() bird = %+v", b)
		}
		b.ID = 42
		return nil
	})
	f.repo.EXPECT().IncrementCaught(gomock.Any(), "u1").Return(nil)

	got, err := f.svc.Capture(context.Background(), "u1", "snowy_owl")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 42 || got.Species == nil || got.Species.Name != "Snowy Owl" {
		t.Errorf("Capture() = %+v", got)
	}

	if _, err := f.svc.Capture(context.Background(), "u1", "dodo"); !errors.Is(err, gameerr.ErrBirdNotFound) {
		t.Errorf("Capture(dodo) error = %v", err)
	}
}

func TestService_Observe(t *testing.T) {
	tests := []struct {
		name        string
		minutes     int
		cooldownErr error
		bird        *models.OwnedBird
		getErr      error
		inventory   map[string]int
		recordErr   error
		startErr    error
		wantBond    int
		wantCoins   int64
		wantErr     error
	}{
		{
			name:      "rare bird one hour",
			minutes:   60,
			bird:      &models.OwnedBird{ID: 7, OwnerID: "u1", SpeciesID: "scarlet_tanager", BondLevel: 2, Version: 3},
			inventory: map[string]int{},
			wantBond:  6,
			wantCoins: 60,
		},
		{
			name:      "camera boosts bond",
			minutes:   60,
			bird:      &models.OwnedBird{ID: 7, OwnerID: "u1", SpeciesID: "scarlet_tanager", Version: 3, LastObservedAt: now.Add(-9 * time.Hour)},
			inventory: map[string]int{"basic_camera": 1, "professional_camera": 1},
			wantBond:  9,
			wantCoins: 60,
		},
		{
			name:    "too short",
			minutes: 14,
			wantErr: gameerr.ErrValidation,
		},
		{
			name:    "too long",
			minutes: 121,
			wantErr: gameerr.ErrValidation,
		},
		{
			name:    "not owned",
			minutes: 30,
			getErr:  gameerr.ErrBirdNotFound,
			wantErr: gameerr.ErrBirdNotFound,
		},
		{
			name:    "resting",
			minutes: 30,
			bird:    &models.OwnedBird{ID: 7, OwnerID: "u1", SpeciesID: "scarlet_tanager", LastObservedAt: now.Add(-7 * time.Hour)},
			wantErr: gameerr.ErrBirdResting,
		},
		{
			name:        "cooldown running",
			minutes:     30,
			cooldownErr: &gameerr.CooldownError{Action: cooldown.ActionObserve, Remaining: time.Hour},
			wantErr:     gameerr.ErrCooldownActive,
		},
		{
			name:      "cooldown write fails inside the transaction",
			minutes:   30,
			bird:      &models.OwnedBird{ID: 7, OwnerID: "u1", SpeciesID: "scarlet_tanager", Version: 3},
			inventory: map[string]int{},
			startErr:  errDiskFull,
			wantBond:  3,
			wantCoins: 30,
			wantErr:   errDiskFull,
		},
		{
			name:      "lost race",
			minutes:   30,
			bird:      &models.OwnedBird{ID: 7, OwnerID: "u1", SpeciesID: "scarlet_tanager", Version: 3},
			inventory: map[string]int{},
			recordErr: gameerr.ErrConcurrentUpdate,
			wantBond:  3,
			wantErr:   gameerr.ErrConcurrentUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, huntConfig)
			if tt.minutes >= MinObserveMinutes && tt.minutes <= MaxObserveMinutes {
				f.cooldowns.EXPECT().Check(gomock.Any(), "u1", cooldown.ActionObserve).Return(tt.cooldownErr)
			}
			if tt.bird != nil || tt.getErr != nil {
				f.repo.EXPECT().GetBird(gomock.Any(), "u1", int64(7)).Return(tt.bird, tt.getErr)
			}
			if tt.inventory != nil {
				f.wallet.EXPECT().Inventory(gomock.Any(), "u1").Return(tt.inventory, nil)
				f.repo.EXPECT().RecordObservation(gomock.Any(), int64(7), tt.bird.Version, tt.wantBond, now).Return(tt.recordErr)
			}
			if tt.inventory != nil && tt.recordErr == nil {
				f.wallet.EXPECT().Credit(gomock.Any(), "u1", tt.wantCoins, gomock.Any()).Return(int64(500), nil)
				f.repo.EXPECT().IncrementObservations(gomock.Any(), "u1").Return(nil)
				f.cooldowns.EXPECT().Start(gomock.Any(), "u1", cooldown.ActionObserve, 2*time.Hour).Return(tt.startErr)
			}

			got, err := f.svc.Observe(context.Background(), "u1", 7, tt.minutes)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Observe() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.BondIncrease != tt.wantBond || got.Reward != tt.wantCoins {
				t.Errorf("Observe() = bond %d coins %d, want %d and %d", got.BondIncrease, got.Reward, tt.wantBond, tt.wantCoins)
			}
			if !got.Bird.LastObservedAt.Equal(now) || got.Bird.TimesObserved != 1 {
				t.Errorf("bird after observe = %+v", got.Bird)
			}
		})
	}
}

func TestService_ObserveRestingReportsRemaining(t *testing.T) {
	f := newFixture(t, huntConfig)
	f.cooldowns.EXPECT().Check(gomock.Any(), "u1", cooldown.ActionObserve).Return(nil)
	f.repo.EXPECT().GetBird(gomock.Any(), "u1", int64(7)).
		Return(&models.OwnedBird{ID: 7, SpeciesID: "mallard", LastObservedAt: now.Add(-90 * time.Minute)}, nil)

	_, err := f.svc.Observe(context.Background(), "u1", 7, 30)
	var restErr *gameerr.RestingError
	if !errors.As(err, &restErr) || restErr.Remaining != 6*time.Hour+30*time.Minute {
		t.Fatalf("Observe() error = %v, want 6h30m rest", err)
	}
}

func TestService_ReleaseTwice(t *testing.T) {
	f := newFixture(t, huntConfig)
	bird := &models.OwnedBird{ID: 9, OwnerID: "u1", SpeciesID: "scarlet_tanager", BondLevel: 2}

	gomock.InOrder(
		f.repo.EXPECT().GetBird(gomock.Any(), "u1", int64(9)).Return(bird, nil),
		f.repo.EXPECT().ReleaseBird(gomock.Any(), "u1", int64(9), now, false).Return(nil),
		f.wallet.EXPECT().Credit(gomock.Any(), "u1", int64(70), "Released Scarlet Tanager").Return(int64(170), nil),
		f.repo.EXPECT().GetBird(gomock.Any(), "u1", int64(9)).Return(nil, gameerr.ErrBirdNotFound),
	)

	bird.Species = &models.BirdSpecies{ID: "scarlet_tanager", Name: "Scarlet Tanager", BaseValue: 100}
	got, err := f.svc.Release(context.Background(), "u1", 9)
	if err != nil {
		t.Fatal(err)
	}
	if got.Amount != 70 || got.Wallet != 170 {
		t.Errorf("Release() = %+v, want refund 70", got)
	}

	if _, err := f.svc.Release(context.Background(), "u1", 9); !errors.Is(err, gameerr.ErrBirdNotFound) {
		t.Errorf("second Release() error = %v, want ErrBirdNotFound", err)
	}
}

func TestService_Sell(t *testing.T) {
	f := newFixture(t, huntConfig)
	bird := &models.OwnedBird{ID: 9, OwnerID: "u1", SpeciesID: "scarlet_tanager", BondLevel: 2, CustomName: "Blaze"}
	f.repo.EXPECT().GetBird(gomock.Any(), "u1", int64(9)).Return(bird, nil)
	f.repo.EXPECT().ReleaseBird(gomock.Any(), "u1", int64(9), now, true).Return(nil)
	f.wallet.EXPECT().Credit(gomock.Any(), "u1", int64(100), "Sold Blaze").Return(int64(200), nil)

	got, err := f.svc.Sell(context.Background(), "u1", 9)
	if err != nil || got.Amount != 100 {
		t.Fatalf("Sell() = %+v, %v", got, err)
	}
}

func TestService_ReleaseLosesRace(t *testing.T) {
	f := newFixture(t, huntConfig)
	f.repo.EXPECT().GetBird(gomock.Any(), "u1", int64(9)).Return(&models.OwnedBird{ID: 9, SpeciesID: "mallard"}, nil)
	f.repo.EXPECT().ReleaseBird(gomock.Any(), "u1", int64(9), now, false).Return(gameerr.ErrBirdNotFound)

	if _, err := f.svc.Release(context.Background(), "u1", 9); !errors.Is(err, gameerr.ErrBirdNotFound) {
		t.Fatalf("Release() error = %v", err)
	}
}

func TestService_Rename(t *testing.T) {
	f := newFixture(t, huntConfig)
	f.repo.EXPECT().RenameBird(gomock.Any(), "u1", int64(3), "Sunny").Return(nil)

	if err := f.svc.Rename(context.Background(), "u1", 3, "  Sunny "); err != nil {
		t.Fatal(err)
	}
	long := "abcdefghijklmnopqrstuvwxyz1234567"
	if err := f.svc.Rename(context.Background(), "u1", 3, long); !errors.Is(err, gameerr.ErrValidation) {
		t.Errorf("Rename(33 chars) error = %v", err)
	}
}

func TestService_AlbumFilter(t *testing.T) {
	f := newFixture(t, huntConfig)
	birds := []*models.OwnedBird{
		{ID: 1, SpeciesID: "mallard"},
		{ID: 2, SpeciesID: "snowy_owl", CustomName: "Hedwig"},
		{ID: 3, SpeciesID: "scarlet_tanager"},
	}
	f.repo.EXPECT().ListBirds(gomock.Any(), "u1").Return(birds, nil).Times(3)

	all, err := f.svc.Album(context.Background(), "u1", AlbumFilter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("Album() = %d birds, %v", len(all), err)
	}
	rare, _ := f.svc.Album(context.Background(), "u1", AlbumFilter{Rarity: catalog.Rare})
	if len(rare) != 2 {
		t.Errorf("Album(rare) = %d birds, want 2", len(rare))
	}
	named, _ := f.svc.Album(context.Background(), "u1", AlbumFilter{Search: "hedw"})
	if len(named) != 1 || named[0].ID != 2 {
		t.Errorf("Album(search) = %+v", named)
	}
}
