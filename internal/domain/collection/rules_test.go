package collection

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
)

func TestWeights_Probability(t *testing.T) {
	tests := []struct {
		name   string
		rarity catalog.Rarity
		bonus  float64
		want   float64
	}{
		{name: "common no bonus", rarity: catalog.Common, want: 0.60},
		{name: "legendary no bonus", rarity: catalog.Legendary, want: 0.01},
		{name: "rare with trap", rarity: catalog.Rare, bonus: 0.10, want: 11.0 / 104.0},
		{name: "common with trap", rarity: catalog.Common, bonus: 0.10, want: 60.0 / 104.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultWeights.Probability(tt.rarity, tt.bonus)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Probability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDraw_Frequencies(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 100000
	counts := map[catalog.Rarity]int{}
	for i := 0; i < n; i++ {
		counts[Draw(rng, DefaultWeights, 0)]++
	}

	for r, w := range DefaultWeights {
		got := float64(counts[r]) / n
		want := float64(w) / 100
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%s frequency = %.4f, want %.2f", r, got, want)
		}
	}
}

func TestDraw_EmptyWeights(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	if got := Draw(rng, Weights{}, 0.5); got != catalog.Common {
		t.Errorf("Draw() = %s, want common", got)
	}
	if got := Draw(rng, Weights{catalog.Epic: 3}, 0); got != catalog.Epic {
		t.Errorf("Draw() = %s, want epic", got)
	}
}

func TestDrawSpecies_StaysInTier(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	only := Weights{catalog.Rare: 1}
	for i := 0; i < 200; i++ {
		if sp := DrawSpecies(rng, only, 0); sp.Rarity != catalog.Rare {
			t.Fatalf("DrawSpecies() = %s (%s), want rare", sp.ID, sp.Rarity)
		}
	}
}

func TestBondIncrease(t *testing.T) {
	tests := []struct {
		minutes int
		rarity  catalog.Rarity
		camera  float64
		want    int
	}{
		{15, catalog.Common, 1, 1},
		{29, catalog.Common, 1, 1},
		{60, catalog.Common, 1, 4},
		{60, catalog.Rare, 1, 6},
		{75, catalog.Uncommon, 1, 6},
		{45, catalog.Uncommon, 1, 4},
		{120, catalog.Legendary, 1.5, 36},
		{30, catalog.Common, 1.1, 3},
		{60, catalog.Epic, 0, 8},
	}

	for _, tt := range tests {
		if got := BondIncrease(tt.minutes, tt.rarity, tt.camera); got != tt.want {
			t.Errorf("BondIncrease(%d, %s, %v) = %d, want %d", tt.minutes, tt.rarity, tt.camera, got, tt.want)
		}
	}
}

func TestObservationReward(t *testing.T) {
	tests := []struct {
		minutes int
		base    int64
		want    int64
	}{
		{15, 100, 10},
		{60, 100, 60},
		{120, 25, 30},
		{19, 15, 1},
		{15, 5, 0},
	}
	for _, tt := range tests {
		if got := ObservationReward(tt.minutes, tt.base); got != tt.want {
			t.Errorf("ObservationReward(%d, %d) = %d, want %d", tt.minutes, tt.base, got, tt.want)
		}
	}
}

func TestReleaseRefundAndSaleValue(t *testing.T) {
	tests := []struct {
		base       int64
		bond       int
		wantRefund int64
		wantSale   int64
	}{
		{base: 100, bond: 2, wantRefund: 70, wantSale: 100},
		{base: 100, bond: 1, wantRefund: 60, wantSale: 85},
		{base: 70, bond: 1, wantRefund: 42, wantSale: 59},
		{base: 15, bond: 3, wantRefund: 11, wantSale: 16},
	}
	for _, tt := range tests {
		if got := ReleaseRefund(tt.base, tt.bond); got != tt.wantRefund {
			t.Errorf("ReleaseRefund(%d, %d) = %d, want %d", tt.base, tt.bond, got, tt.wantRefund)
		}
		if got := SaleValue(tt.base, tt.bond); got != tt.wantSale {
			t.Errorf("SaleValue(%d, %d) = %d, want %d", tt.base, tt.bond, got, tt.wantSale)
		}
	}
}

func TestRestRemaining(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		last time.Time
		want time.Duration
	}{
		{name: "never observed", want: 0},
		{name: "one hour ago", last: now.Add(-time.Hour), want: 7 * time.Hour},
		{name: "exactly eight hours", last: now.Add(-8 * time.Hour), want: 0},
		{name: "long ago", last: now.Add(-48 * time.Hour), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RestRemaining(tt.last, now); got != tt.want {
				t.Errorf("RestRemaining() = %v, want %v", got, tt.want)
			}
		})
	}
}
