package repositories_test

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database"
	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/birdhunter/database/repositories"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/birdwatchers/birdhunter/internal/domain/social"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	clock     *clockwork.FakeClock
	users     *repositories.UserRepository
	birds     *repositories.BirdRepository
	progress  *repositories.ProgressRepository
	social    *repositories.SocialRepository
	cooldowns *cooldown.Tracker
	economy   *economy.Service
	birding   *collection.Service
	ranking   *progression.Service
	trading   *social.Service
}

func setup(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	db, err := database.New(ctx, database.DBConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.InitializeSchema(ctx))

	base := repositories.NewBaseRepository(db, database.NewTxManager(db))
	e := &env{
		clock:    clockwork.NewFakeClockAt(time.Now().UTC().Truncate(time.Second)),
		users:    repositories.NewUserRepository(base),
		birds:    repositories.NewBirdRepository(base),
		progress: repositories.NewProgressRepository(base),
		social:   repositories.NewSocialRepository(base),
	}
	e.cooldowns, err = cooldown.NewTracker(repositories.NewCooldownRepository(base), e.clock, 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	e.economy = economy.NewService(e.users, e.cooldowns, e.clock, rng, economy.Config{
		StartingBalance: 100,
		MaxBankBalance:  1_000_000,
		InterestRate:    0.02,
		DailyGiftCap:    1000,
		TradeFee:        0.05,
		WorkCooldown:    time.Hour,
	})
	e.birding = collection.NewService(e.birds, e.economy, e.cooldowns, e.clock, rng, collection.Config{
		HuntCost:     10,
		HuntCooldown: 30 * time.Minute,
	})
	e.ranking = progression.NewService(e.progress, e.economy, e.clock)
	e.trading = social.NewService(e.social, e.economy, e.cooldowns, e.clock, rng, social.Config{
		TradeFee:      0.05,
		TradeCooldown: time.Minute,
		DuelCooldown:  time.Minute,
	})
	return e
}

func (e *env) register(t *testing.T, id, name string) {
	t.Helper()
	_, err := e.economy.EnsureUser(context.Background(), id, name)
	require.NoError(t, err)
}

func TestHuntChargesAndStartsCooldown(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")

	res, err := e.birding.Hunt(ctx, collection.HuntRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(90), res.Wallet)

	user, err := e.users.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(90), user.WalletBalance)
	assert.Equal(t, int64(1), user.TotalHunts)

	remaining, err := e.cooldowns.Remaining(ctx, "u1", cooldown.ActionHunt)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, remaining)

	_, err = e.birding.Hunt(ctx, collection.HuntRequest{UserID: "u1"})
	assert.ErrorIs(t, err, gameerr.ErrCooldownActive)

	e.clock.Advance(30 * time.Minute)
	_, err = e.birding.Hunt(ctx, collection.HuntRequest{UserID: "u1"})
	require.NoError(t, err)
}

func TestReleaseRefundsOnce(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")

	bird := &models.OwnedBird{OwnerID: "u1", SpeciesID: "scarlet_tanager", BondLevel: 2, CapturedAt: e.clock.Now()}
	require.NoError(t, e.birds.InsertBird(ctx, bird))

	res, err := e.birding.Release(ctx, "u1", bird.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(70), res.Amount)
	assert.Equal(t, int64(170), res.Wallet)

	_, err = e.birding.Release(ctx, "u1", bird.ID)
	assert.ErrorIs(t, err, gameerr.ErrBirdNotFound)

	birds, err := e.birds.ListBirds(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, birds)
}

func TestDepositAllAndWithdraw(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")
	_, err := e.economy.Credit(ctx, "u1", 400, "Test grant")
	require.NoError(t, err)

	dep, err := e.economy.Deposit(ctx, "u1", economy.DepositAll)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dep.Wallet)
	assert.Equal(t, int64(500), dep.Bank)
	assert.Equal(t, int64(10), dep.DailyInterest)

	_, err = e.economy.Deposit(ctx, "u1", 1)
	assert.ErrorIs(t, err, gameerr.ErrInsufficientFunds)

	wd, err := e.economy.Withdraw(ctx, "u1", 200)
	require.NoError(t, err)
	assert.Equal(t, int64(200), wd.Wallet)
	assert.Equal(t, int64(300), wd.Bank)

	_, err = e.economy.Withdraw(ctx, "u1", 301)
	assert.ErrorIs(t, err, gameerr.ErrInsufficientBankFunds)

	paid, err := e.economy.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), paid)
}

func TestWalletNeverNegative(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")

	_, err := e.users.AdjustWallet(ctx, "u1", -101)
	assert.ErrorIs(t, err, gameerr.ErrInsufficientFunds)

	_, err = e.users.AdjustWallet(ctx, "ghost", 5)
	assert.ErrorIs(t, err, gameerr.ErrUserNotFound)

	wallet, err := e.users.AdjustWallet(ctx, "u1", -100)
	require.NoError(t, err)
	assert.Zero(t, wallet)
}

func TestGiftCapAndRollback(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")
	e.register(t, "u2", "bob")
	_, err := e.economy.Credit(ctx, "u1", 2000, "Test grant")
	require.NoError(t, err)

	res, err := e.economy.Gift(ctx, economy.GiftRequest{SenderID: "u1", SenderName: "alice", RecipientID: "u2", RecipientName: "bob", Amount: 900})
	require.NoError(t, err)
	assert.Equal(t, int64(100), res.RemainingToday)

	_, err = e.economy.Gift(ctx, economy.GiftRequest{SenderID: "u1", SenderName: "alice", RecipientID: "u2", RecipientName: "bob", Amount: 101})
	assert.ErrorIs(t, err, gameerr.ErrDailyLimitExceeded)

	// unknown recipient leaves the sender untouched
	_, err = e.economy.Gift(ctx, economy.GiftRequest{SenderID: "u1", SenderName: "alice", RecipientID: "ghost", Amount: 50})
	assert.ErrorIs(t, err, gameerr.ErrUserNotFound)

	sender, err := e.users.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), sender.WalletBalance)

	used, _, err := e.economy.GiftAllowance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(900), used)
}

func TestTradeSwapsBirdForCoins(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")
	e.register(t, "u2", "bob")

	bird := &models.OwnedBird{OwnerID: "u2", SpeciesID: "mallard", BondLevel: 1, CapturedAt: e.clock.Now()}
	require.NoError(t, e.birds.InsertBird(ctx, bird))

	trade, err := e.trading.ProposeTrade(ctx, social.TradeOffer{InitiatorID: "u1", TargetID: "u2", OfferCoins: 100, RequestBirdID: bird.ID})
	require.NoError(t, err)

	_, err = e.trading.AcceptTrade(ctx, trade.ID, "u2")
	require.NoError(t, err)

	alice, err := e.users.GetUser(ctx, "u1")
	require.NoError(t, err)
	bob, err := e.users.GetUser(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), alice.WalletBalance)
	assert.Equal(t, int64(195), bob.WalletBalance)

	_, err = e.birds.GetBird(ctx, "u1", bird.ID)
	require.NoError(t, err)

	_, err = e.trading.AcceptTrade(ctx, trade.ID, "u2")
	assert.ErrorIs(t, err, gameerr.ErrTradeNotFound)

	n, err := e.progress.CountTrades(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGuildMembership(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")
	e.register(t, "u2", "bob")

	g, err := e.trading.CreateGuild(ctx, "u1", "Night Owls", "")
	require.NoError(t, err)

	_, err = e.trading.CreateGuild(ctx, "u2", "night owls", "")
	assert.ErrorIs(t, err, gameerr.ErrConflict)

	joined, err := e.trading.JoinGuild(ctx, "u2", "Night Owls")
	require.NoError(t, err)
	assert.Equal(t, g.ID, joined.ID)

	members, err := e.trading.Members(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestLeaderboardAndLedgerCounts(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.register(t, "u1", "alice")
	e.clock.Advance(time.Second)
	e.register(t, "u2", "bob")
	_, err := e.economy.Credit(ctx, "u2", 50, catalog.ReasonWork+"Guide")
	require.NoError(t, err)

	ranked, err := e.ranking.Leaderboard(ctx, progression.BoardWealth)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "u2", ranked[0].UserID)
	assert.Equal(t, int64(150), ranked[0].Value)

	shifts, err := e.progress.CountLedger(ctx, "u2", catalog.ReasonWork)
	require.NoError(t, err)
	assert.Equal(t, int64(1), shifts)
}

func TestClearAllFollowsTrackerClock(t *testing.T) {
	ctx := context.Background()
	db, err := database.New(ctx, database.DBConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.InitializeSchema(ctx))

	clock := clockwork.NewFakeClockAt(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC))
	base := repositories.NewBaseRepository(db, database.NewTxManager(db))
	tracker, err := cooldown.NewTracker(repositories.NewCooldownRepository(base), clock, 0)
	require.NoError(t, err)

	require.NoError(t, tracker.Start(ctx, "u1", cooldown.ActionHunt, 30*time.Minute))
	require.NoError(t, tracker.Start(ctx, "u1", cooldown.ActionWork, 24*time.Hour))
	require.NoError(t, tracker.Start(ctx, "u1", cooldown.ActionObserve, 0))

	n, err := tracker.ClearAll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	remaining, err := tracker.Remaining(ctx, "u1", cooldown.ActionWork)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}
