package collection

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
)

const (
	MinObserveMinutes = 15
	MaxObserveMinutes = 120
	RestPeriod        = 8 * time.Hour
	MaxNameLength     = 32

	// absorbs float error so an exact product like 5*1.2 does not ceil up
	epsilon = 1e-9
)

// Weights maps each tier to its integer draw weight.
type Weights map[catalog.Rarity]int

// DefaultWeights gives common 60, uncommon 25, rare 10, epic 4, legendary 1.
var DefaultWeights = Weights{
	catalog.Common:    60,
	catalog.Uncommon:  25,
	catalog.Rare:      10,
	catalog.Epic:      4,
	catalog.Legendary: 1,
}

// effective scales every non-common weight by (1 + bonus).
func (w Weights) effective(bonus float64) ([]catalog.Rarity, []float64, float64) {
	tiers := make([]catalog.Rarity, 0, len(catalog.Rarities))
	weights := make([]float64, 0, len(catalog.Rarities))
	var total float64
	for _, r := range catalog.Rarities {
		base := w[r]
		if base <= 0 {
			continue
		}
		f := float64(base)
		if r != catalog.Common {
			f *= 1 + bonus
		}
		tiers = append(tiers, r)
		weights = append(weights, f)
		total += f
	}
	return tiers, weights, total
}

// Probability is the chance of drawing r with the given equipment bonus.
func (w Weights) Probability(r catalog.Rarity, bonus float64) float64 {
	tiers, weights, total := w.effective(bonus)
	if total == 0 {
		return 0
	}
	for i, t := range tiers {
		if t == r {
			return weights[i] / total
		}
	}
	return 0
}

// Draw picks a rarity tier. An empty weight table always yields Common.
func Draw(rng *rand.Rand, w Weights, bonus float64) catalog.Rarity {
	tiers, weights, total := w.effective(bonus)
	if total == 0 {
		return catalog.Common
	}
	roll := rng.Float64() * total
	for i, f := range weights {
		if roll < f {
			return tiers[i]
		}
		roll -= f
	}
	return tiers[len(tiers)-1]
}

// DrawSpecies draws a tier then a species uniformly within it.
func DrawSpecies(rng *rand.Rand, w Weights, bonus float64) catalog.Species {
	r := Draw(rng, w, bonus)
	pool := catalog.SpeciesOfRarity(r)
	if len(pool) == 0 {
		pool = catalog.SpeciesOfRarity(catalog.Common)
	}
	return pool[rng.IntN(len(pool))]
}

// BondIncrease is ceil(floor(minutes/15) * rarity multiplier * camera multiplier).
func BondIncrease(minutes int, r catalog.Rarity, cameraMultiplier float64) int {
	if cameraMultiplier <= 0 {
		cameraMultiplier = 1
	}
	blocks := float64(minutes / 15)
	return int(math.Ceil(blocks*r.Info().BondMultiplier*cameraMultiplier - epsilon))
}

// ObservationReward is floor(floor(minutes/10) * base * 0.1).
func ObservationReward(minutes int, baseValue int64) int64 {
	return int64(minutes/10) * baseValue / 10
}

// ReleaseRefund is floor(base*0.5) + floor(bond*base*0.1).
func ReleaseRefund(baseValue int64, bond int) int64 {
	return baseValue*5/10 + int64(bond)*baseValue/10
}

// SaleValue is floor(base*0.7) + floor(bond*base*0.15).
func SaleValue(baseValue int64, bond int) int64 {
	return baseValue*7/10 + int64(bond)*baseValue*15/100
}

// RestRemaining is how long a bird observed at last still needs before the next session.
func RestRemaining(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	if d := last.Add(RestPeriod).Sub(now); d > 0 {
		return d
	}
	return 0
}
