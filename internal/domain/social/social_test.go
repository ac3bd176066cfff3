package social

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/social/mock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

var testConfig = Config{
	TradeFee:      0.05,
	TradeExpiry:   10 * time.Minute,
	TradeCooldown: 5 * time.Minute,
	DuelCooldown:  5 * time.Minute,
}

type fixture struct {
	svc       *Service
	repo      *mock.MockRepository
	wallet    *mock.MockWallet
	cooldowns *mock.MockCooldowns
}

func newFixture(t *testing.T) fixture {
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
	f.svc = NewService(f.repo, f.wallet, f.cooldowns, clockwork.NewFakeClockAt(now), rand.New(rand.NewPCG(5, 6)), testConfig)
	return f
}

func TestService_CreateGuild(t *testing.T) {
	tests := []struct {
		name      string
		guildName string
		inGuild   bool
		createErr error
		wantSlug  string
		wantErr   error
	}{
		{name: "creates with slug", guildName: "  Early Birds Club ", wantSlug: "early-birds-club"},
		{name: "too short", guildName: "ab", wantErr: gameerr.ErrValidation},
		{name: "already a member", guildName: "Owls", inGuild: true, wantErr: gameerr.ErrConflict},
		{name: "name taken", guildName: "Owls", createErr: gameerr.ErrConflict, wantErr: gameerr.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.wantErr == nil || tt.inGuild || tt.createErr != nil {
				if tt.inGuild {
					f.repo.EXPECT().GuildOf(gomock.Any(), "u1").Return(&models.Guild{ID: 1}, nil)
				} else {
					f.repo.EXPECT().GuildOf(gomock.Any(), "u1").Return(nil, gameerr.ErrGuildNotFound)
					f.repo.EXPECT().CreateGuild(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, g *models.Guild) error {
						g.ID = 7
						return tt.createErr
					})
				}
			}
			if tt.wantErr == nil {
				f.repo.EXPECT().AddMember(gomock.Any(), &models.GuildMember{GuildID: 7, UserID: "u1", Role: models.GuildRoleOwner, JoinedAt: now}).Return(nil)
			}

			got, err := f.svc.CreateGuild(context.Background(), "u1", tt.guildName, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateGuild() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil {
				assert.Equal(t, tt.wantSlug, got.Slug)
				assert.Equal(t, "Early Birds Club", got.Name)
			}
		})
	}
}

func TestService_JoinGuild(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GuildOf(gomock.Any(), "u2").Return(nil, gameerr.ErrGuildNotFound)
	f.repo.EXPECT().GuildBySlug(gomock.Any(), "early-birds-club").Return(&models.Guild{ID: 7, Name: "Early Birds Club"}, nil)
	f.repo.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil)

	g, err := f.svc.JoinGuild(context.Background(), "u2", "early birds club")
	require.NoError(t, err)
	assert.Equal(t, int64(7), g.ID)
}

func TestService_ProposeTrade(t *testing.T) {
	tests := []struct {
		name    string
		offer   TradeOffer
		wallet  int64
		birdErr error
		wantErr error
	}{
		{name: "coins for bird", offer: TradeOffer{InitiatorID: "a", TargetID: "b", OfferCoins: 100, RequestBirdID: 3}, wallet: 500},
		{name: "self", offer: TradeOffer{InitiatorID: "a", TargetID: "a", OfferCoins: 1}, wantErr: gameerr.ErrValidation},
		{name: "empty", offer: TradeOffer{InitiatorID: "a", TargetID: "b"}, wantErr: gameerr.ErrValidation},
		{name: "negative", offer: TradeOffer{InitiatorID: "a", TargetID: "b", OfferCoins: -1}, wantErr: gameerr.ErrValidation},
		{name: "cannot afford", offer: TradeOffer{InitiatorID: "a", TargetID: "b", OfferCoins: 100}, wallet: 99, wantErr: gameerr.ErrInsufficientFunds},
		{name: "bird not theirs", offer: TradeOffer{InitiatorID: "a", TargetID: "b", RequestBirdID: 3}, wallet: 0, birdErr: gameerr.ErrBirdNotFound, wantErr: gameerr.ErrBirdNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if errors.Is(tt.wantErr, gameerr.ErrValidation) {
				_, err := f.svc.ProposeTrade(context.Background(), tt.offer)
				require.ErrorIs(t, err, gameerr.ErrValidation)
				return
			}
			f.cooldowns.EXPECT().Check(gomock.Any(), "a", cooldown.ActionTrade).Return(nil)
			f.repo.EXPECT().GetUser(gomock.Any(), "a").Return(&models.User{UserID: "a", WalletBalance: tt.wallet}, nil)
			f.repo.EXPECT().GetUser(gomock.Any(), "b").Return(&models.User{UserID: "b"}, nil)
			if tt.offer.RequestBirdID != 0 && !errors.Is(tt.wantErr, gameerr.ErrInsufficientFunds) {
				f.repo.EXPECT().GetBird(gomock.Any(), "b", tt.offer.RequestBirdID).Return(&models.OwnedBird{ID: 3}, tt.birdErr)
			}
			if tt.wantErr == nil {
				f.repo.EXPECT().InsertTrade(gomock.Any(), gomock.Any()).Return(nil)
				f.cooldowns.EXPECT().Start(gomock.Any(), "a", cooldown.ActionTrade, 5*time.Minute).Return(nil)
			}

			got, err := f.svc.ProposeTrade(context.Background(), tt.offer)
			require.ErrorIs(t, err, tt.wantErr)
			if err == nil {
				assert.Equal(t, models.TradePending, got.Status)
				assert.Equal(t, now.Add(10*time.Minute), got.ExpiresAt)
			}
		})
	}
}

func pendingTrade() *models.Trade {
	return &models.Trade{
		ID:            12,
		InitiatorID:   "a",
		TargetID:      "b",
		OfferCoins:    200,
		RequestBirdID: 3,
		Status:        models.TradePending,
		ExpiresAt:     now.Add(time.Minute),
	}
}

func TestService_AcceptTrade(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetTrade(gomock.Any(), int64(12)).Return(pendingTrade(), nil)
	gomock.InOrder(
		f.repo.EXPECT().SetTradeStatus(gomock.Any(), int64(12), models.TradePending, models.TradeAccepted, now).Return(nil),
		f.repo.EXPECT().GetUser(gomock.Any(), "a").Return(&models.User{UserID: "a", WalletBalance: 200}, nil),
		f.repo.EXPECT().GetUser(gomock.Any(), "b").Return(&models.User{UserID: "b"}, nil),
		f.repo.EXPECT().GetBird(gomock.Any(), "b", int64(3)).Return(&models.OwnedBird{ID: 3}, nil),
		f.wallet.EXPECT().Transfer(gomock.Any(), "a", "b", int64(200), 0.05, "Trade #12").Return(int64(190), int64(10), nil),
		f.repo.EXPECT().TransferBird(gomock.Any(), int64(3), "b", "a").Return(nil),
	)

	got, err := f.svc.AcceptTrade(context.Background(), 12, "b")
	require.NoError(t, err)
	assert.Equal(t, models.TradeAccepted, got.Status)
}

func TestService_AcceptTradeFailures(t *testing.T) {
	t.Run("wrong user", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetTrade(gomock.Any(), int64(12)).Return(pendingTrade(), nil)
		_, err := f.svc.AcceptTrade(context.Background(), 12, "a")
		assert.ErrorIs(t, err, gameerr.ErrPermission)
	})

	t.Run("expired", func(t *testing.T) {
		f := newFixture(t)
		tr := pendingTrade()
		tr.ExpiresAt = now
		f.repo.EXPECT().GetTrade(gomock.Any(), int64(12)).Return(tr, nil)
		f.repo.EXPECT().SetTradeStatus(gomock.Any(), int64(12), models.TradePending, models.TradeExpired, now).Return(nil)
		_, err := f.svc.AcceptTrade(context.Background(), 12, "b")
		assert.ErrorIs(t, err, gameerr.ErrExpired)
	})

	t.Run("already settled", func(t *testing.T) {
		f := newFixture(t)
		tr := pendingTrade()
		tr.Status = models.TradeAccepted
		f.repo.EXPECT().GetTrade(gomock.Any(), int64(12)).Return(tr, nil)
		_, err := f.svc.AcceptTrade(context.Background(), 12, "b")
		assert.ErrorIs(t, err, gameerr.ErrTradeNotFound)
	})

	t.Run("bird gone before accept", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetTrade(gomock.Any(), int64(12)).Return(pendingTrade(), nil)
		f.repo.EXPECT().SetTradeStatus(gomock.Any(), int64(12), models.TradePending, models.TradeAccepted, now).Return(nil)
		f.repo.EXPECT().GetUser(gomock.Any(), "a").Return(&models.User{UserID: "a", WalletBalance: 200}, nil)
		f.repo.EXPECT().GetUser(gomock.Any(), "b").Return(&models.User{UserID: "b"}, nil)
		f.repo.EXPECT().GetBird(gomock.Any(), "b", int64(3)).Return(nil, gameerr.ErrBirdNotFound)
		_, err := f.svc.AcceptTrade(context.Background(), 12, "b")
		assert.ErrorIs(t, err, gameerr.ErrBirdNotFound)
	})
}

func TestService_DeclineTrade(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetTrade(gomock.Any(), int64(12)).Return(pendingTrade(), nil).Times(3)
	f.repo.EXPECT().SetTradeStatus(gomock.Any(), int64(12), models.TradePending, models.TradeDeclined, now).Return(nil)
	f.repo.EXPECT().SetTradeStatus(gomock.Any(), int64(12), models.TradePending, models.TradeCancelled, now).Return(nil)

	got, err := f.svc.DeclineTrade(context.Background(), 12, "b")
	require.NoError(t, err)
	assert.Equal(t, models.TradeDeclined, got.Status)

	got, err = f.svc.DeclineTrade(context.Background(), 12, "a")
	require.NoError(t, err)
	assert.Equal(t, models.TradeCancelled, got.Status)

	_, err = f.svc.DeclineTrade(context.Background(), 12, "c")
	assert.ErrorIs(t, err, gameerr.ErrPermission)
}

func TestStrength(t *testing.T) {
	assert.Equal(t, int64(100), Strength(nil))
	birds := []*models.OwnedBird{
		{SpeciesID: "mallard", BondLevel: 1},
		{SpeciesID: "california_condor", BondLevel: 5},
		{SpeciesID: "unknown", BondLevel: 9},
	}
	assert.Equal(t, int64(100+3+600), Strength(birds))
}

func TestService_CheckDuel(t *testing.T) {
	f := newFixture(t)
	require.ErrorIs(t, f.svc.CheckDuel(context.Background(), "a", "a", 0), gameerr.ErrValidation)
	require.ErrorIs(t, f.svc.CheckDuel(context.Background(), "a", "b", MaxWager+1), gameerr.ErrValidation)

	f.cooldowns.EXPECT().Check(gomock.Any(), "a", cooldown.ActionDuel).Return(nil)
	f.repo.EXPECT().GetUser(gomock.Any(), "a").Return(&models.User{UserID: "a", WalletBalance: 10}, nil)
	require.ErrorIs(t, f.svc.CheckDuel(context.Background(), "a", "b", 50), gameerr.ErrInsufficientFunds)
}

func TestService_ResolveDuelPaysPot(t *testing.T) {
	f := newFixture(t)
	a := Duelist{UserID: "a", Name: "Alice"}
	b := Duelist{UserID: "b", Name: "Bob"}

	f.cooldowns.EXPECT().Check(gomock.Any(), "b", cooldown.ActionDuel).Return(nil)
	f.repo.EXPECT().ListBirds(gomock.Any(), "a").Return(nil, nil)
	f.repo.EXPECT().ListBirds(gomock.Any(), "b").Return(nil, nil)

	var credited string
	f.wallet.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(40), gomock.Any()).Return(int64(0), nil).Times(2)
	f.wallet.EXPECT().Credit(gomock.Any(), gomock.Any(), int64(2*40+DuelPrize), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID string, _ int64, _ string) (int64, error) {
			credited = userID
			return 105, nil
		})
	f.cooldowns.EXPECT().Start(gomock.Any(), "a", cooldown.ActionDuel, 5*time.Minute).Return(nil)
	f.cooldowns.EXPECT().Start(gomock.Any(), "b", cooldown.ActionDuel, 5*time.Minute).Return(nil)

	res, err := f.svc.ResolveDuel(context.Background(), a, b, 40)
	require.NoError(t, err)
	assert.Equal(t, res.Winner.UserID, credited)
	assert.NotEqual(t, res.Winner.UserID, res.Loser.UserID)
	assert.Equal(t, int64(105), res.Payout)
}

func TestService_ResolveDuelRollsBackWhenLoserIsBroke(t *testing.T) {
	f := newFixture(t)
	f.cooldowns.EXPECT().Check(gomock.Any(), "b", cooldown.ActionDuel).Return(nil)
	f.repo.EXPECT().ListBirds(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		f.wallet.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(40), "Duel wager").Return(int64(0), nil),
		f.wallet.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(40), gomock.Any()).Return(int64(0), gameerr.ErrInsufficientFunds),
	)

	_, err := f.svc.ResolveDuel(context.Background(), Duelist{UserID: "a"}, Duelist{UserID: "b"}, 40)
	assert.ErrorIs(t, err, gameerr.ErrInsufficientFunds)
}
