package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Guild struct {
	bun.BaseModel `bun:"table:guilds,alias:g"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull,unique"`
	Slug        string    `bun:"slug,notnull,unique"`
	OwnerID     string    `bun:"owner_id,notnull,unique"`
	Description string    `bun:"description,notnull,default:''"`
	BankBalance int64     `bun:"bank_balance,notnull,default:0"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`

	Members []*GuildMember `bun:"rel:has-many,join:id=guild_id"`
}

const (
	GuildRoleOwner  = "owner"
	GuildRoleAdmin  = "admin"
	GuildRoleMember = "member"
)

type GuildMember struct {
	bun.BaseModel `bun:"table:guild_members,alias:gm"`

	GuildID  int64     `bun:"guild_id,pk"`
	UserID   string    `bun:"user_id,pk,unique"`
	Role     string    `bun:"role,notnull"`
	JoinedAt time.Time `bun:"joined_at,notnull,default:current_timestamp"`
}

type Trade struct {
	bun.BaseModel `bun:"table:trades,alias:tr"`

	ID            int64     `bun:"id,pk,autoincrement"`
	InitiatorID   string    `bun:"initiator_id,notnull"`
	TargetID      string    `bun:"target_id,notnull"`
	OfferBirdID   int64     `bun:"offer_bird_id,nullzero"`
	OfferCoins    int64     `bun:"offer_coins,notnull,default:0"`
	RequestBirdID int64     `bun:"request_bird_id,nullzero"`
	RequestCoins  int64     `bun:"request_coins,notnull,default:0"`
	Status        string    `bun:"status,notnull"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp"`
	ExpiresAt     time.Time `bun:"expires_at,notnull"`
	CompletedAt   time.Time `bun:"completed_at,nullzero"`
}

const (
	TradePending   = "pending"
	TradeAccepted  = "accepted"
	TradeDeclined  = "declined"
	TradeCancelled = "cancelled"
	TradeExpired   = "expired"
)

func (t *Trade) Empty() bool {
	return t.OfferBirdID == 0 && t.OfferCoins == 0 && t.RequestBirdID == 0 && t.RequestCoins == 0
}
