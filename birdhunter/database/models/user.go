package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UserID            string    `bun:"user_id,pk"`
	Username          string    `bun:"username,notnull"`
	WalletBalance     int64     `bun:"wallet_balance,notnull,default:0"`
	BankBalance       int64     `bun:"bank_balance,notnull,default:0"`
	Title             string    `bun:"title,notnull,default:''"`
	Bio               string    `bun:"bio,notnull,default:''"`
	TotalHunts        int64     `bun:"total_hunts,notnull,default:0"`
	TotalObservations int64     `bun:"total_observations,notnull,default:0"`
	TotalCaught       int64     `bun:"total_caught,notnull,default:0"`
	LastWorkAt        time.Time `bun:"last_work_at,nullzero"`
	PremiumUntil      time.Time `bun:"premium_until,nullzero"`
	CreatedAt         time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt         time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (u *User) NetWorth() int64 {
	return u.WalletBalance + u.BankBalance
}

func (u *User) IsPremium(now time.Time) bool {
	return !u.PremiumUntil.IsZero() && u.PremiumUntil.After(now)
}

// LedgerEntry is one append-only earn/spend record.
type LedgerEntry struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      string    `bun:"user_id,notnull"`
	Kind        string    `bun:"kind,notnull"`
	Amount      int64     `bun:"amount,notnull"`
	Description string    `bun:"description,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

const (
	LedgerEarn  = "earn"
	LedgerSpend = "spend"
)

type Cooldown struct {
	bun.BaseModel `bun:"table:cooldowns,alias:cd"`

	UserID    string    `bun:"user_id,pk"`
	Action    string    `bun:"action,pk"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
}

type UserItem struct {
	bun.BaseModel `bun:"table:user_items,alias:ui"`

	UserID    string    `bun:"user_id,pk"`
	ItemID    string    `bun:"item_id,pk"`
	Quantity  int       `bun:"quantity,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

type AppMeta struct {
	bun.BaseModel `bun:"table:app_meta"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}
