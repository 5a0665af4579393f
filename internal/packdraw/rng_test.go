package packdraw

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRNG_IntNNonPositive(t *testing.T) {
	rng := NewSeededRNG(1)
	assert.Zero(t, rng.IntN(0))
	assert.Zero(t, rng.IntN(-3))
}

func TestLocked(t *testing.T) {
	assert.Equal(t, DefaultRNG(), Locked(DefaultRNG()), "global source is already safe")

	rng := Locked(NewSeededRNG(99))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				v := rng.IntN(10)
				assert.True(t, v >= 0 && v < 10)
				f := rng.Float64()
				assert.True(t, f >= 0 && f < 1)
			}
		}()
	}
	wg.Wait()
}

func TestLocked_SameSequence(t *testing.T) {
	plain := NewSeededRNG(5)
	locked := Locked(NewSeededRNG(5))
	for i := 0; i < 20; i++ {
		assert.Equal(t, plain.IntN(100), locked.IntN(100))
	}
}
