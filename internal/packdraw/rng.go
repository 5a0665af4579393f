package packdraw

import (
	"math/rand/v2"
	"sync"

	"github.com/osse101/PackOpener_Go/internal/utils"
)

// RandomSource supplies the randomness for a draw. Tests substitute a scripted source.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

type globalRNG struct{}

func (globalRNG) Float64() float64 { return utils.RandomFloat() }
func (globalRNG) IntN(n int) int   { return utils.RandomIntN(n) }

// DefaultRNG returns a goroutine-safe source backed by the runtime generator
func DefaultRNG() RandomSource { return globalRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source (e.g. Monte Carlo runs).
// It is not safe for concurrent use.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))} //nolint:gosec // reproducible simulation
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

func (s *seededRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

type lockedRNG struct {
	mu  sync.Mutex
	src RandomSource
}

// Locked serializes access to src so one seeded source can serve concurrent openings
func Locked(src RandomSource) RandomSource {
	if _, ok := src.(globalRNG); ok {
		return src
	}
	return &lockedRNG{src: src}
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

func (l *lockedRNG) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}
