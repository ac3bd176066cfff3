package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
)

const interestReason = "Bank interest"

// UserRepository stores wallets, banks, the ledger and inventories.
type UserRepository struct {
	*BaseRepository
}

var _ economy.Repository = (*UserRepository)(nil)

func NewUserRepository(base *BaseRepository) *UserRepository {
	return &UserRepository{BaseRepository: base}
}

func (r *UserRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return r.getUser(ctx, userID)
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.conn(ctx).NewInsert().
		Model(user).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	return r.HandleError("create", "user", nil, err)
}

func (r *UserRepository) UpdateUsername(ctx context.Context, userID, username string) error {
	_, err := r.conn(ctx).NewUpdate().
		Model((*models.User)(nil)).
		Set("username = ?", username).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleError("update_username", "user", nil, err)
}

// AdjustWallet applies delta in a single conditional update so the balance can never go negative.
func (r *UserRepository) AdjustWallet(ctx context.Context, userID string, delta int64) (int64, error) {
	var wallet int64
	err := r.conn(ctx).NewUpdate().
		Model((*models.User)(nil)).
		Set("wallet_balance = wallet_balance + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Where("wallet_balance + ? >= 0", delta).
		Returning("wallet_balance").
		Scan(ctx, &wallet)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.getUser(ctx, userID); err != nil {
			return 0, err
		}
		return 0, gameerr.ErrInsufficientFunds
	}
	if err != nil {
		return 0, r.HandleError("adjust_wallet", "user", nil, err)
	}
	return wallet, nil
}

func (r *UserRepository) MoveToBank(ctx context.Context, userID string, amount, maxBank int64) (*models.User, error) {
	user := new(models.User)
	err := r.conn(ctx).NewUpdate().
		Model(user).
		Set("wallet_balance = wallet_balance - ?", amount).
		Set("bank_balance = bank_balance + ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Where("wallet_balance >= ?", amount).
		Where("bank_balance + ? <= ?", amount, maxBank).
		Returning("*").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		current, err := r.getUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if current.WalletBalance < amount {
			return nil, gameerr.ErrInsufficientFunds
		}
		return nil, &gameerr.BankLimitError{MaxBalance: maxBank, MaxDeposit: max(0, maxBank-current.BankBalance)}
	}
	if err != nil {
		return nil, r.HandleError("deposit", "user", nil, err)
	}
	return user, nil
}

func (r *UserRepository) MoveFromBank(ctx context.Context, userID string, amount int64) (*models.User, error) {
	user := new(models.User)
	err := r.conn(ctx).NewUpdate().
		Model(user).
		Set("wallet_balance = wallet_balance + ?", amount).
		Set("bank_balance = bank_balance - ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Where("bank_balance >= ?", amount).
		Returning("*").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.getUser(ctx, userID); err != nil {
			return nil, err
		}
		return nil, gameerr.ErrInsufficientBankFunds
	}
	if err != nil {
		return nil, r.HandleError("withdraw", "user", nil, err)
	}
	return user, nil
}

// AccrueInterest pays one day of interest into every bank below the cap and returns the total paid.
func (r *UserRepository) AccrueInterest(ctx context.Context, rate float64, maxBank int64) (int64, error) {
	var total int64
	err := r.WithinTx(ctx, func(ctx context.Context) error {
		var users []*models.User
		err := r.conn(ctx).NewSelect().
			Model(&users).
			Where("bank_balance > 0").
			Where("bank_balance < ?", maxBank).
			Scan(ctx)
		if err != nil {
			return r.HandleError("list", "bank accounts", nil, err)
		}

		now := time.Now()
		for _, u := range users {
			interest := min(economy.DailyInterest(u.BankBalance, rate), maxBank-u.BankBalance)
			if interest <= 0 {
				continue
			}
			_, err := r.conn(ctx).NewUpdate().
				Model((*models.User)(nil)).
				Set("bank_balance = bank_balance + ?", interest).
				Set("updated_at = ?", now).
				Where("user_id = ?", u.UserID).
				Exec(ctx)
			if err != nil {
				return r.HandleError("accrue_interest", "user", nil, err)
			}
			if err := r.AppendLedger(ctx, &models.LedgerEntry{
				UserID:      u.UserID,
				Kind:        models.LedgerEarn,
				Amount:      interest,
				Description: interestReason,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
			total += interest
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Bank interest accrued",
		slog.String("type", "db"),
		slog.Int64("total", total),
	)
	return total, nil
}

func (r *UserRepository) SetLastWork(ctx context.Context, userID string, at time.Time) error {
	_, err := r.conn(ctx).NewUpdate().
		Model((*models.User)(nil)).
		Set("last_work_at = ?", at).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleError("set_last_work", "user", nil, err)
}

func (r *UserRepository) SetPremiumUntil(ctx context.Context, userID string, until time.Time) error {
	_, err := r.conn(ctx).NewUpdate().
		Model((*models.User)(nil)).
		Set("premium_until = ?", until).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleError("set_premium", "user", nil, err)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID, title, bio string) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.User)(nil)).
		Set("title = ?", title).
		Set("bio = ?", bio).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return r.HandleError("update_profile", "user", nil, err)
	}
	return affected(res, gameerr.ErrUserNotFound)
}

func (r *UserRepository) AppendLedger(ctx context.Context, entry *models.LedgerEntry) error {
	_, err := r.conn(ctx).NewInsert().Model(entry).Exec(ctx)
	return r.HandleError("append", "ledger entry", nil, err)
}

// SumSpentSince returns a positive total of the matching spend entries.
func (r *UserRepository) SumSpentSince(ctx context.Context, userID, prefix string, since time.Time) (int64, error) {
	var total int64
	err := r.conn(ctx).NewSelect().
		Model((*models.LedgerEntry)(nil)).
		ColumnExpr("COALESCE(SUM(-amount), 0)").
		Where("user_id = ?", userID).
		Where("kind = ?", models.LedgerSpend).
		Where("description LIKE ? ESCAPE '!'", likePrefix(prefix)).
		Where("created_at >= ?", since).
		Scan(ctx, &total)
	if err != nil {
		return 0, r.HandleError("sum_spent", "ledger", nil, err)
	}
	return total, nil
}

func (r *UserRepository) RecentLedger(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error) {
	var entries []*models.LedgerEntry
	err := r.conn(ctx).NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		OrderExpr("created_at DESC, id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("recent", "ledger", nil, err)
	}
	return entries, nil
}

func (r *UserRepository) GetItems(ctx context.Context, userID string) (map[string]int, error) {
	var rows []*models.UserItem
	err := r.conn(ctx).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Where("quantity > 0").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "items", nil, err)
	}
	items := make(map[string]int, len(rows))
	for _, row := range rows {
		items[row.ItemID] = row.Quantity
	}
	return items, nil
}

func (r *UserRepository) AddItem(ctx context.Context, userID, itemID string, quantity int) error {
	_, err := r.conn(ctx).NewInsert().
		Model(&models.UserItem{UserID: userID, ItemID: itemID, Quantity: quantity, UpdatedAt: time.Now()}).
		On("CONFLICT (user_id, item_id) DO UPDATE").
		Set("quantity = ui.quantity + EXCLUDED.quantity").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("add", "item", nil, err)
}

func (r *UserRepository) ConsumeItem(ctx context.Context, userID, itemID string, quantity int) error {
	res, err := r.conn(ctx).NewUpdate().
		Model((*models.UserItem)(nil)).
		Set("quantity = quantity - ?", quantity).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ?", userID).
		Where("item_id = ?", itemID).
		Where("quantity >= ?", quantity).
		Exec(ctx)
	if err != nil {
		return r.HandleError("consume", "item", nil, err)
	}
	return affected(res, gameerr.ErrItemNotFound)
}
