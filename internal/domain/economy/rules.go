package economy

import (
	"math"
	"math/rand/v2"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
)

// DepositAll and WithdrawAll move the whole wallet or bank balance.
const (
	DepositAll  int64 = -1
	WithdrawAll int64 = -1
)

// DailyInterest is floor(bank * rate). It is a display projection unless accrual is switched on.
func DailyInterest(bank int64, rate float64) int64 {
	if bank <= 0 || rate <= 0 {
		return 0
	}
	return int64(math.Floor(float64(bank) * rate))
}

// ProjectedInterest is simple, non-compounding interest over days.
func ProjectedInterest(bank int64, rate float64, days int) int64 {
	return DailyInterest(bank, rate) * int64(days)
}

// TradeFee is the floored share of amount burned on a coin transfer.
func TradeFee(amount int64, rate float64) int64 {
	if amount <= 0 || rate <= 0 {
		return 0
	}
	return int64(math.Floor(float64(amount) * rate))
}

// WorkPay draws a base pay in [MinPay, MaxPay] plus a 30% chance of a bonus in [10, 59].
func WorkPay(rng *rand.Rand, job catalog.Job) (base, bonus int64) {
	base = job.MinPay
	if job.MaxPay > job.MinPay {
		base += rng.Int64N(job.MaxPay - job.MinPay + 1)
	}
	if rng.Float64() < 0.3 {
		bonus = rng.Int64N(50) + 10
	}
	return base, bonus
}
