package matching

import (
	"math/rand/v2"
	"sync"
)

// RandomScorer is the placeholder strategy: every score falls in 70..99
// regardless of input.
type RandomScorer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomScorer(src rand.Source) *RandomScorer {
	if src == nil {
		return &RandomScorer{}
	}
	return &RandomScorer{rnd: rand.New(src)}
}

func (s *RandomScorer) Score(_ Candidate, _ Job) int {
	if s == nil || s.rnd == nil {
		return 70 + rand.IntN(30)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return 70 + s.rnd.IntN(30)
}
