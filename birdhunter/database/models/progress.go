package models

import (
	"time"

	"github.com/uptrace/bun"
)

type UserAchievement struct {
	bun.BaseModel `bun:"table:user_achievements,alias:ua"`

	UserID        string    `bun:"user_id,pk"`
	AchievementID string    `bun:"achievement_id,pk"`
	Progress      int64     `bun:"progress,notnull,default:0"`
	Target        int64     `bun:"target,notnull"`
	UnlockedAt    time.Time `bun:"unlocked_at,nullzero"`
	ClaimedAt     time.Time `bun:"claimed_at,nullzero"`
}

func (a *UserAchievement) Unlocked() bool { return !a.UnlockedAt.IsZero() }

func (a *UserAchievement) Claimed() bool { return !a.ClaimedAt.IsZero() }

type UserQuest struct {
	bun.BaseModel `bun:"table:user_quests,alias:uq"`

	UserID      string    `bun:"user_id,pk"`
	QuestID     string    `bun:"quest_id,pk"`
	Progress    int64     `bun:"progress,notnull,default:0"`
	Target      int64     `bun:"target,notnull"`
	Status      string    `bun:"status,notnull"`
	PeriodStart time.Time `bun:"period_start,notnull"`
	ExpiresAt   time.Time `bun:"expires_at,notnull"`
	CompletedAt time.Time `bun:"completed_at,nullzero"`
	ClaimedAt   time.Time `bun:"claimed_at,nullzero"`
}

const (
	QuestActive    = "active"
	QuestCompleted = "completed"
	QuestClaimed   = "claimed"
	QuestExpired   = "expired"
)
