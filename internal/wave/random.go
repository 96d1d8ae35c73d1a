package wave

import (
	"math/rand"
	"time"
)

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
// A source is not safe for concurrent use; give each goroutine its own.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded generator. A zero seed uses the clock.
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// An empty Sequence always yields 0.
type Sequence struct {
	Draws []float64
	next  int
}

// NewSequence returns a Sequence over draws.
func NewSequence(draws ...float64) *Sequence {
	return &Sequence{Draws: draws}
}

// Float64 returns the next recorded draw.
func (s *Sequence) Float64() float64 {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[s.next%len(s.Draws)]
	s.next++
	return v
}

// Used reports how many draws have been consumed.
func (s *Sequence) Used() int { return s.next }
