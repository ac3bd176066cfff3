package birdhunter

import (
	"math/rand/v2"
	"sync"
)

// Rand is a *rand.Rand shared by interaction handlers.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRand(src rand.Source) *Rand {
	return &Rand{r: rand.New(src)}
}

func (r *Rand) Int64N(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Int64N(n)
}

func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

func (r *Rand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Perm(n)
}

func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.Shuffle(n, swap)
}
