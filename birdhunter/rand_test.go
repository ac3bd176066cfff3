package birdhunter

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandIsSeedable(t *testing.T) {
	shared := NewRand(rand.NewPCG(7, 8))
	plain := rand.New(rand.NewPCG(7, 8))

	assert.Equal(t, plain.Int64N(1000), shared.Int64N(1000))
	assert.Equal(t, plain.IntN(10), shared.IntN(10))
	assert.Equal(t, plain.Perm(5), shared.Perm(5))
}

func TestRandConcurrentUse(t *testing.T) {
	r := NewRand(rand.NewPCG(1, 1))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n := r.Int64N(100)
				assert.GreaterOrEqual(t, n, int64(0))
				assert.Less(t, n, int64(100))
			}
		}()
	}
	wg.Wait()
}

func TestNewBotHasRand(t *testing.T) {
	b := New(*DefaultConfig(), "test", "none")
	assert.NotNil(t, b.Rand)
}
