package economy

import (
	"math/rand/v2"
	"testing"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
)

func TestDailyInterest(t *testing.T) {
	tests := []struct {
		bank int64
		rate float64
		want int64
	}{
		{500, 0.02, 10},
		{499, 0.02, 9},
		{0, 0.02, 0},
		{1000000, 0.02, 20000},
		{100, 0, 0},
		{-10, 0.02, 0},
	}

	for _, tt := range tests {
		if got := DailyInterest(tt.bank, tt.rate); got != tt.want {
			t.Errorf("DailyInterest(%d, %v) = %d, want %d", tt.bank, tt.rate, got, tt.want)
		}
	}
}

func TestProjectedInterest(t *testing.T) {
	if got := ProjectedInterest(500, 0.02, 365); got != 3650 {
		t.Errorf("ProjectedInterest() = %d, want 3650", got)
	}
}

func TestTradeFee(t *testing.T) {
	tests := []struct {
		amount int64
		want   int64
	}{
		{100, 5},
		{19, 0},
		{20, 1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := TradeFee(tt.amount, 0.05); got != tt.want {
			t.Errorf("TradeFee(%d) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestWorkPayBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	job, _ := catalog.JobByID("photography")
	sawBonus := false
	for i := 0; i < 500; i++ {
		base, bonus := WorkPay(rng, job)
		if base < job.MinPay || base > job.MaxPay {
			t.Fatalf("base %d outside [%d, %d]", base, job.MinPay, job.MaxPay)
		}
		if bonus != 0 {
			sawBonus = true
			if bonus < 10 || bonus > 59 {
				t.Fatalf("bonus %d outside [10, 59]", bonus)
			}
		}
	}
	if !sawBonus {
		t.Error("no bonus in 500 shifts")
	}
}
