// Package gameerr holds the error kinds every game rule can fail with.
// Handlers turn these into user-facing replies; anything else is treated as a system failure.
package gameerr

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientBankFunds = errors.New("insufficient bank funds")
	ErrBankLimitExceeded     = errors.New("bank limit exceeded")
	ErrCooldownActive        = errors.New("cooldown active")
	ErrDailyLimitExceeded    = errors.New("daily limit exceeded")
	ErrBirdResting           = errors.New("bird is resting")
	ErrValidation            = errors.New("validation failed")
	ErrConflict              = errors.New("conflict")
	ErrExpired               = errors.New("expired")
	ErrConcurrentUpdate      = errors.New("concurrent update")
	ErrPermission            = errors.New("permission denied")

	ErrNotFound            = errors.New("not found")
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrBirdNotFound        = fmt.Errorf("bird %w", ErrNotFound)
	ErrQuestNotFound       = fmt.Errorf("quest %w", ErrNotFound)
	ErrGuildNotFound       = fmt.Errorf("guild %w", ErrNotFound)
	ErrItemNotFound        = fmt.Errorf("item %w", ErrNotFound)
	ErrTradeNotFound       = fmt.Errorf("trade %w", ErrNotFound)
	ErrAchievementNotFound = fmt.Errorf("achievement %w", ErrNotFound)
)

// CooldownError reports how long a user still has to wait for an action.
type CooldownError struct {
	Action    string
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s on cooldown for %s", e.Action, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error { return ErrCooldownActive }

// BankLimitError carries the largest deposit that would still fit.
type BankLimitError struct {
	MaxBalance int64
	MaxDeposit int64
}

func (e *BankLimitError) Error() string {
	return fmt.Sprintf("bank limit of %d exceeded, at most %d can be deposited", e.MaxBalance, e.MaxDeposit)
}

func (e *BankLimitError) Unwrap() error { return ErrBankLimitExceeded }

type DailyLimitError struct {
	Used int64
	Cap  int64
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("daily limit reached: %d of %d used", e.Used, e.Cap)
}

func (e *DailyLimitError) Unwrap() error { return ErrDailyLimitExceeded }

// Remaining returns how much of the cap is still available.
func (e *DailyLimitError) Remaining() int64 {
	if e.Used >= e.Cap {
		return 0
	}
	return e.Cap - e.Used
}

type RestingError struct {
	Remaining time.Duration
}

func (e *RestingError) Error() string {
	return fmt.Sprintf("bird is resting for another %s", e.Remaining.Round(time.Minute))
}

func (e *RestingError) Unwrap() error { return ErrBirdResting }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid is shorthand for a ValidationError.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsUserFacing reports whether err is one of the game's own error kinds.
func IsUserFacing(err error) bool {
	for _, target := range []error{
		ErrInsufficientFunds, ErrInsufficientBankFunds, ErrBankLimitExceeded,
		ErrCooldownActive, ErrDailyLimitExceeded, ErrBirdResting, ErrValidation,
		ErrConflict, ErrExpired, ErrConcurrentUpdate, ErrPermission, ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
