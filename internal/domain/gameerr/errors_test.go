package gameerr

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"cooldown", &CooldownError{Action: "hunt", Remaining: time.Minute}, ErrCooldownActive, true},
		{"bank limit", &BankLimitError{MaxBalance: 10, MaxDeposit: 2}, ErrBankLimitExceeded, true},
		{"daily limit", &DailyLimitError{Used: 9000, Cap: 10000}, ErrDailyLimitExceeded, true},
		{"resting", &RestingError{Remaining: time.Hour}, ErrBirdResting, true},
		{"validation", Invalid("amount", "must be positive"), ErrValidation, true},
		{"bird not found is not found", ErrBirdNotFound, ErrNotFound, true},
		{"wrapped bird not found", fmt.Errorf("release: %w", ErrBirdNotFound), ErrBirdNotFound, true},
		{"quest is not bird", ErrQuestNotFound, ErrBirdNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"funds", ErrInsufficientFunds, true},
		{"wrapped cooldown", fmt.Errorf("hunt: %w", &CooldownError{Action: "hunt"}), true},
		{"not found", ErrGuildNotFound, true},
		{"database", errors.New("disk I/O error"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDailyLimitErrorRemaining(t *testing.T) {
	if got := (&DailyLimitError{Used: 9500, Cap: 10000}).Remaining(); got != 500 {
		t.Errorf("Remaining() = %d, want 500", got)
	}
	if got := (&DailyLimitError{Used: 12000, Cap: 10000}).Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}
