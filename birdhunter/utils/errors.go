package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
)

// ErrorType represents different categories of errors for consistent handling
type ErrorType int

const (
	// UserError - User input issues, validation failures, parameter problems
	UserError ErrorType = iota
	// SystemError - Database failures, network issues, internal server errors
	SystemError
	// NotFoundError - Requested resources don't exist
	NotFoundError
	// PermissionError - Unauthorized actions, access denied
	PermissionError
	// BusinessLogicError - Cooldowns, insufficient resources, game rule violations
	BusinessLogicError
)

const GenericErrorMessage = "Something went wrong. Please try again later."

var notFoundMessages = []struct {
	err error
	msg string
}{
	{gameerr.ErrBirdNotFound, "That bird is not in your active collection."},
	{gameerr.ErrQuestNotFound, "That quest is not ready to be claimed."},
	{gameerr.ErrAchievementNotFound, "That achievement is not ready to be claimed."},
	{gameerr.ErrGuildNotFound, "Guild not found."},
	{gameerr.ErrTradeNotFound, "That trade is no longer open."},
	{gameerr.ErrUserNotFound, "That birder has not started playing yet."},
}

var cooldownVerbs = map[string]string{
	cooldown.ActionHunt:     "hunt",
	cooldown.ActionWork:     "work",
	cooldown.ActionObserve:  "observe",
	cooldown.ActionTrade:    "trade",
	cooldown.ActionMinigame: "play another minigame",
	cooldown.ActionDuel:     "duel",
}

// ClassifyError maps an error onto the reply category and the text shown to the user.
// Anything that is not a game error is a SystemError with the generic message.
func ClassifyError(err error) (ErrorType, string) {
	if err == nil {
		return SystemError, GenericErrorMessage
	}

	var (
		cdErr   *gameerr.CooldownError
		bankErr *gameerr.BankLimitError
		dayErr  *gameerr.DailyLimitError
		restErr *gameerr.RestingError
		valErr  *gameerr.ValidationError
	)
	switch {
	case errors.As(err, &cdErr):
		verb, ok := cooldownVerbs[cdErr.Action]
		if !ok {
			verb = cdErr.Action
		}
		return BusinessLogicError, fmt.Sprintf("You need to wait **%s** before you can %s again.", FormatDuration(cdErr.Remaining), verb)
	case errors.As(err, &bankErr):
		if bankErr.MaxDeposit <= 0 {
			return BusinessLogicError, fmt.Sprintf("Your bank is full. It holds at most **%s** coins.", FormatCoins(bankErr.MaxBalance))
		}
		return BusinessLogicError, fmt.Sprintf("Your bank can only take **%s** more coins.", FormatCoins(bankErr.MaxDeposit))
	case errors.As(err, &dayErr):
		return BusinessLogicError, fmt.Sprintf("Daily gift limit reached. You can still gift **%s** coins today.", FormatCoins(dayErr.Remaining()))
	case errors.As(err, &restErr):
		return BusinessLogicError, fmt.Sprintf("This bird is resting. You can observe it again in **%s**.", FormatDuration(restErr.Remaining))
	case errors.As(err, &valErr):
		return UserError, validationMessage(valErr)
	case errors.Is(err, gameerr.ErrInsufficientFunds):
		return BusinessLogicError, detail(err, gameerr.ErrInsufficientFunds, "You don't have enough coins in your wallet.")
	case errors.Is(err, gameerr.ErrInsufficientBankFunds):
		return BusinessLogicError, "You don't have that many coins in the bank."
	case errors.Is(err, gameerr.ErrExpired):
		return BusinessLogicError, "This has expired."
	case errors.Is(err, gameerr.ErrConflict):
		return BusinessLogicError, detail(err, gameerr.ErrConflict, "That already exists.")
	case errors.Is(err, gameerr.ErrConcurrentUpdate):
		return BusinessLogicError, "That bird was just updated by another action. Please try again."
	case errors.Is(err, gameerr.ErrPermission):
		return PermissionError, detail(err, gameerr.ErrPermission, "You can't do that.")
	case errors.Is(err, gameerr.ErrItemNotFound):
		if name := detail(err, gameerr.ErrItemNotFound, ""); name != "" {
			return NotFoundError, fmt.Sprintf("You don't have any %s.", name)
		}
		return NotFoundError, "You don't have that item."
	case errors.Is(err, gameerr.ErrNotFound):
		for _, nf := range notFoundMessages {
			if errors.Is(err, nf.err) {
				return NotFoundError, nf.msg
			}
		}
		return NotFoundError, "Not found."
	}
	return SystemError, GenericErrorMessage
}

func validationMessage(v *gameerr.ValidationError) string {
	if v.Field != "" && strings.HasPrefix(v.Reason, "must") {
		return capitalize(v.Field) + " " + v.Reason + "."
	}
	return capitalize(v.Reason) + "."
}

// detail returns the context wrapped around sentinel, or fallback when there is none.
func detail(err, sentinel error, fallback string) string {
	msg := err.Error()
	suffix := ": " + sentinel.Error()
	if msg == sentinel.Error() || !strings.HasSuffix(msg, suffix) {
		return fallback
	}
	return capitalize(strings.TrimSuffix(msg, suffix))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
