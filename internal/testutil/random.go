// Package testutil provides deterministic randomness and small gear fixtures
// shared by the engine tests.
package testutil

import (
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// SequenceSource is a dice.Source that replays a fixed list of values.
// Each value is reduced modulo n; the list repeats once exhausted.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	pos    int
	calls  []int
}

// NewSequenceSource returns a source replaying values.
//
// Precondition: values must be non-empty and non-negative.
func NewSequenceSource(values ...int) *SequenceSource {
	if len(values) == 0 {
		panic("testutil: NewSequenceSource requires at least one value")
	}
	return &SequenceSource{values: values}
}

// Intn returns the next value modulo n.
//
// Precondition: n > 0.
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("testutil: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.pos%len(s.values)]
	s.pos++
	s.calls = append(s.calls, n)
	return v % n
}

// Calls returns the n argument of every Intn call so far.
func (s *SequenceSource) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.calls...)
}

// NewRoller returns a dice.Roller replaying values with a no-op logger.
func NewRoller(values ...int) *dice.Roller {
	return dice.NewRoller(NewSequenceSource(values...), zap.NewNop())
}

// NewSeededRoller returns a reproducible dice.Roller with a no-op logger.
func NewSeededRoller(seed uint64) *dice.Roller {
	return dice.NewRoller(dice.NewSeededSource(seed), zap.NewNop())
}
