package economy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/jonboulle/clockwork"
)

const (
	GiftPrefix       = catalog.ReasonGiftTo
	MaxGiftAmount    = 100000
	MaxGiftMessage   = 200
	MaxPurchaseCount = 10
)

type Config struct {
	StartingBalance int64
	MaxBankBalance  int64
	InterestRate    float64
	DailyGiftCap    int64
	TradeFee        float64
	WorkCooldown    time.Duration
}

type Service struct {
	repo      Repository
	cooldowns Cooldowns
	clock     clockwork.Clock
	cfg       Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(repo Repository, cooldowns Cooldowns, clock clockwork.Clock, rng *rand.Rand, cfg Config) *Service {
	return &Service{
		repo:      repo,
		cooldowns: cooldowns,
		clock:     clock,
		cfg:       cfg,
		rng:       rng,
	}
}

func (s *Service) Config() Config {
	return s.cfg
}

// EnsureUser returns the user, creating it with the starting balance on first contact.
func (s *Service) EnsureUser(ctx context.Context, userID, username string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err == nil {
		if username != "" && user.Username != username {
			if err := s.repo.UpdateUsername(ctx, userID, username); err != nil {
				return nil, fmt.Errorf("failed to update username: %w", err)
			}
			user.Username = username
		}
		return user, nil
	}
	if !errors.Is(err, gameerr.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := s.clock.Now()
	user = &models.User{
		UserID:        userID,
		Username:      username,
		WalletBalance: s.cfg.StartingBalance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	slog.Info("New player registered",
		slog.String("type", "game"),
		slog.String("user_id", userID),
		slog.String("user_name", username),
	)
	return s.repo.GetUser(ctx, userID)
}

func (s *Service) User(ctx context.Context, userID string) (*models.User, error) {
	return s.repo.GetUser(ctx, userID)
}

// Credit adds coins to the wallet and records an earn entry.
func (s *Service) Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, gameerr.Invalid("amount", "must be positive")
	}
	var wallet int64
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if wallet, err = s.repo.AdjustWallet(ctx, userID, amount); err != nil {
			return err
		}
		return s.record(ctx, userID, amount, reason)
	})
	return wallet, err
}

// Debit removes coins from the wallet, failing with ErrInsufficientFunds rather than going negative.
func (s *Service) Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, gameerr.Invalid("amount", "must be positive")
	}
	var wallet int64
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if wallet, err = s.repo.AdjustWallet(ctx, userID, -amount); err != nil {
			return err
		}
		return s.record(ctx, userID, -amount, reason)
	})
	return wallet, err
}

func (s *Service) record(ctx context.Context, userID string, signed int64, reason string) error {
	kind := models.LedgerEarn
	if signed < 0 {
		kind = models.LedgerSpend
	}
	return s.repo.AppendLedger(ctx, &models.LedgerEntry{
		UserID:      userID,
		Kind:        kind,
		Amount:      signed,
		Description: reason,
		CreatedAt:   s.clock.Now(),
	})
}

type BankResult struct {
	Amount        int64
	Wallet        int64
	Bank          int64
	DailyInterest int64
}

// Deposit moves amount (or DepositAll) from wallet to bank.
func (s *Service) Deposit(ctx context.Context, userID string, amount int64) (*BankResult, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount == DepositAll {
		amount = user.WalletBalance
	}
	if amount <= 0 {
		if user.WalletBalance == 0 {
			return nil, gameerr.ErrInsufficientFunds
		}
		return nil, gameerr.Invalid("amount", "must be positive")
	}
	if user.WalletBalance < amount {
		return nil, gameerr.ErrInsufficientFunds
	}
	if user.BankBalance+amount > s.cfg.MaxBankBalance {
		return nil, &gameerr.BankLimitError{
			MaxBalance: s.cfg.MaxBankBalance,
			MaxDeposit: max(0, s.cfg.MaxBankBalance-user.BankBalance),
		}
	}

	updated, err := s.repo.MoveToBank(ctx, userID, amount, s.cfg.MaxBankBalance)
	if err != nil {
		return nil, err
	}
	return s.bankResult(amount, updated), nil
}

// Withdraw moves amount (or WithdrawAll) from bank to wallet.
func (s *Service) Withdraw(ctx context.Context, userID string, amount int64) (*BankResult, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount == WithdrawAll {
		amount = user.BankBalance
	}
	if amount <= 0 {
		if user.BankBalance == 0 {
			return nil, gameerr.ErrInsufficientBankFunds
		}
		return nil, gameerr.Invalid("amount", "must be positive")
	}
	if user.BankBalance < amount {
		return nil, gameerr.ErrInsufficientBankFunds
	}

	updated, err := s.repo.MoveFromBank(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	return s.bankResult(amount, updated), nil
}

func (s *Service) bankResult(amount int64, u *models.User) *BankResult {
	return &BankResult{
		Amount:        amount,
		Wallet:        u.WalletBalance,
		Bank:          u.BankBalance,
		DailyInterest: DailyInterest(u.BankBalance, s.cfg.InterestRate),
	}
}

// AccrueInterest credits one day of interest to every bank, capped at the bank limit.
func (s *Service) AccrueInterest(ctx context.Context) (int64, error) {
	return s.repo.AccrueInterest(ctx, s.cfg.InterestRate, s.cfg.MaxBankBalance)
}

type GiftRequest struct {
	SenderID      string
	SenderName    string
	RecipientID   string
	RecipientName string
	Amount        int64
	Message       string
}

type GiftResult struct {
	SenderWallet    int64
	RecipientWallet int64
	UsedToday       int64
	RemainingToday  int64
}

// Gift moves coins between two players in one transaction, under the sender's daily cap.
func (s *Service) Gift(ctx context.Context, req GiftRequest) (*GiftResult, error) {
	if req.SenderID == req.RecipientID {
		return nil, gameerr.Invalid("user", "you cannot gift coins to yourself")
	}
	if req.Amount <= 0 || req.Amount > MaxGiftAmount {
		return nil, gameerr.Invalid("amount", "must be between 1 and %d", MaxGiftAmount)
	}
	if len([]rune(req.Message)) > MaxGiftMessage {
		return nil, gameerr.Invalid("message", "must be at most %d characters", MaxGiftMessage)
	}

	var res GiftResult
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		used, err := s.repo.SumSpentSince(ctx, req.SenderID, GiftPrefix, s.dayStart())
		if err != nil {
			return fmt.Errorf("failed to sum gifts: %w", err)
		}
		if used+req.Amount > s.cfg.DailyGiftCap {
			return &gameerr.DailyLimitError{Used: used, Cap: s.cfg.DailyGiftCap}
		}
		if _, err := s.repo.GetUser(ctx, req.RecipientID); err != nil {
			return err
		}

		if res.SenderWallet, err = s.repo.AdjustWallet(ctx, req.SenderID, -req.Amount); err != nil {
			return err
		}
		if err := s.record(ctx, req.SenderID, -req.Amount, giftDescription(req.RecipientName, req.Message)); err != nil {
			return err
		}
		if res.RecipientWallet, err = s.repo.AdjustWallet(ctx, req.RecipientID, req.Amount); err != nil {
			return err
		}
		if err := s.record(ctx, req.RecipientID, req.Amount, catalog.ReasonGiftFrom+req.SenderName); err != nil {
			return err
		}

		res.UsedToday = used + req.Amount
		res.RemainingToday = s.cfg.DailyGiftCap - res.UsedToday
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func giftDescription(recipient, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return GiftPrefix + recipient
	}
	return GiftPrefix + recipient + ": " + message
}

// GiftAllowance reports how much the user has gifted today and what is left.
func (s *Service) GiftAllowance(ctx context.Context, userID string) (used, remaining int64, err error) {
	used, err = s.repo.SumSpentSince(ctx, userID, GiftPrefix, s.dayStart())
	if err != nil {
		return 0, 0, err
	}
	return used, max(0, s.cfg.DailyGiftCap-used), nil
}

// dayStart is midnight UTC of the current day; the gift window resets there.
func (s *Service) dayStart() time.Time {
	return s.clock.Now().UTC().Truncate(24 * time.Hour)
}

// Transfer moves amount from one wallet to another, burning feeRate of it.
// It must run inside the caller's transaction when combined with other legs.
func (s *Service) Transfer(ctx context.Context, fromID, toID string, amount int64, feeRate float64, reason string) (received, fee int64, err error) {
	if amount <= 0 {
		return 0, 0, gameerr.Invalid("amount", "must be positive")
	}
	fee = TradeFee(amount, feeRate)
	received = amount - fee
	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.AdjustWallet(ctx, fromID, -amount); err != nil {
			return err
		}
		if err := s.record(ctx, fromID, -amount, reason); err != nil {
			return err
		}
		if received == 0 {
			return nil
		}
		if _, err := s.repo.AdjustWallet(ctx, toID, received); err != nil {
			return err
		}
		return s.record(ctx, toID, received, reason)
	})
	if err != nil {
		return 0, 0, err
	}
	return received, fee, nil
}

type WorkResult struct {
	Job    catalog.Job
	Base   int64
	Bonus  int64
	Wallet int64
}

func (r *WorkResult) Total() int64 { return r.Base + r.Bonus }

// Work pays out one shift of job and starts the work cooldown.
func (s *Service) Work(ctx context.Context, userID, jobID string) (*WorkResult, error) {
	job, ok := catalog.JobByID(jobID)
	if !ok {
		return nil, gameerr.Invalid("job", "unknown job %q", jobID)
	}
	if err := s.cooldowns.Check(ctx, userID, cooldown.ActionWork); err != nil {
		return nil, err
	}

	s.mu.Lock()
	base, bonus := WorkPay(s.rng, job)
	s.mu.Unlock()

	res := &WorkResult{Job: job, Base: base, Bonus: bonus}
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if res.Wallet, err = s.repo.AdjustWallet(ctx, userID, base+bonus); err != nil {
			return err
		}
		if err := s.record(ctx, userID, base+bonus, catalog.ReasonWork+job.Name); err != nil {
			return err
		}
		if err := s.repo.SetLastWork(ctx, userID, s.clock.Now()); err != nil {
			return err
		}
		return s.cooldowns.Start(ctx, userID, cooldown.ActionWork, s.cfg.WorkCooldown)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// OfferJobs picks the three jobs shown to a player.
func (s *Service) OfferJobs() []catalog.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.OfferJobs(s.rng, 3)
}

func (s *Service) History(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error) {
	return s.repo.RecentLedger(ctx, userID, limit)
}

type PurchaseResult struct {
	Item     catalog.Item
	Quantity int
	Total    int64
	Wallet   int64
}

// Purchase buys quantity of an item from the shop.
func (s *Service) Purchase(ctx context.Context, userID, itemID string, quantity int) (*PurchaseResult, error) {
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return nil, gameerr.ErrItemNotFound
	}
	if quantity < 1 || quantity > MaxPurchaseCount {
		return nil, gameerr.Invalid("quantity", "must be between 1 and %d", MaxPurchaseCount)
	}

	res := &PurchaseResult{Item: item, Quantity: quantity, Total: item.Price * int64(quantity)}
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if res.Wallet, err = s.repo.AdjustWallet(ctx, userID, -res.Total); err != nil {
			return err
		}
		if err := s.record(ctx, userID, -res.Total, fmt.Sprintf("Purchased %dx %s", quantity, item.Name)); err != nil {
			return err
		}
		return s.repo.AddItem(ctx, userID, item.ID, quantity)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) Inventory(ctx context.Context, userID string) (map[string]int, error) {
	return s.repo.GetItems(ctx, userID)
}

// Consume removes quantity of a held item, failing with ErrItemNotFound when short.
func (s *Service) Consume(ctx context.Context, userID, itemID string, quantity int) error {
	return s.repo.ConsumeItem(ctx, userID, itemID, quantity)
}

type UseResult struct {
	Item    catalog.Item
	Cleared int64
}

// UseItem consumes a booster. Energy drinks clear the named cooldown, time skips clear all of them.
func (s *Service) UseItem(ctx context.Context, userID, itemID, action string) (*UseResult, error) {
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return nil, gameerr.ErrItemNotFound
	}
	if !item.Usable() {
		return nil, gameerr.Invalid("item", "%s cannot be used directly", item.Name)
	}
	if item.Effect.ResetsCooldown && action == "" {
		return nil, gameerr.Invalid("cooldown", "choose which cooldown to reset")
	}

	res := &UseResult{Item: item}
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.ConsumeItem(ctx, userID, item.ID, 1); err != nil {
			return err
		}
		if item.Effect.SkipsCooldowns {
			n, err := s.cooldowns.ClearAll(ctx, userID)
			res.Cleared = n
			return err
		}
		res.Cleared = 1
		return s.cooldowns.Clear(ctx, userID, action)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// BuyPass charges the plan price and extends premium from whichever is later, now or the current expiry.
func (s *Service) BuyPass(ctx context.Context, userID, planID string) (time.Time, error) {
	plan, ok := catalog.PassPlanByID(planID)
	if !ok {
		return time.Time{}, gameerr.Invalid("plan", "unknown plan %q", planID)
	}

	var until time.Time
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.repo.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if _, err := s.repo.AdjustWallet(ctx, userID, -plan.Price); err != nil {
			return err
		}
		if err := s.record(ctx, userID, -plan.Price, "Purchased "+plan.Name); err != nil {
			return err
		}
		from := s.clock.Now()
		if user.PremiumUntil.After(from) {
			from = user.PremiumUntil
		}
		until = from.AddDate(0, 0, plan.Days)
		return s.repo.SetPremiumUntil(ctx, userID, until)
	})
	return until, err
}

const (
	MaxTitleLength = 50
	MaxBioLength   = 500
	titleItemID    = "custom_title"
)

// ProfileUpdate changes the profile text. Nil fields are left as they are.
type ProfileUpdate struct {
	Title *string
	Bio   *string
}

// UpdateProfile saves a new title and/or bio. A non-empty title needs the custom title permit.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	if upd.Title != nil && utf8.RuneCountInString(*upd.Title) > MaxTitleLength {
		return nil, gameerr.Invalid("title", "must be at most %d characters", MaxTitleLength)
	}
	if upd.Bio != nil && utf8.RuneCountInString(*upd.Bio) > MaxBioLength {
		return nil, gameerr.Invalid("bio", "must be at most %d characters", MaxBioLength)
	}

	var user *models.User
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.repo.GetUser(ctx, userID); err != nil {
			return err
		}
		title, bio := user.Title, user.Bio
		if upd.Title != nil {
			title = strings.TrimSpace(*upd.Title)
		}
		if upd.Bio != nil {
			bio = strings.TrimSpace(*upd.Bio)
		}
		if title != "" && title != user.Title {
			items, err := s.repo.GetItems(ctx, userID)
			if err != nil {
				return err
			}
			if items[titleItemID] < 1 {
				return fmt.Errorf("a Custom Title from the shop is required: %w", gameerr.ErrPermission)
			}
		}
		if err := s.repo.UpdateProfile(ctx, userID, title, bio); err != nil {
			return err
		}
		user.Title, user.Bio = title, bio
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
