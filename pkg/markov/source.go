package markov

import (
	"fmt"
	"math/rand/v2"
)

// NumberSource produces the draws that drive weighted selection. Next returns
// a value in [0, bound).
type NumberSource interface {
	Next(bound int) (int, error)
}

// RandomSource is a NumberSource backed by a uniform pseudo-random generator.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source that uses the process-wide generator from
// math/rand/v2. Its draws are not reproducible across runs.
func NewRandomSource() *RandomSource {
	return &RandomSource{}
}

// NewSeededSource returns a source whose sequence of draws is fully determined
// by seed.
func NewSeededSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a uniformly distributed value in [0, bound).
func (s *RandomSource) Next(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: bound must be positive, got %d", ErrInvalidArgument, bound)
	}
	if s.rng == nil {
		return rand.IntN(bound), nil
	}
	return s.rng.IntN(bound), nil
}

// ScriptedSource replays a fixed list of values, one per call, in order.
// The requested bound is ignored; the script is expected to have been built for
// the bounds it will be asked against.
type ScriptedSource struct {
	values []int
	pos    int
}

// NewScriptedSource returns a source that replays values. The slice is copied.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: append([]int(nil), values...)}
}

// Next returns the next scripted value, or ErrExhaustedSource once every value
// has been consumed.
func (s *ScriptedSource) Next(_ int) (int, error) {
	if s.pos >= len(s.values) {
		return 0, fmt.Errorf("%w: all %d scripted values consumed", ErrExhaustedSource, len(s.values))
	}
	v := s.values[s.pos]
	s.pos++
	return v, nil
}

// Remaining reports how many scripted values have not been consumed yet.
func (s *ScriptedSource) Remaining() int {
	return len(s.values) - s.pos
}
