package markov

import (
	"fmt"
	"strings"
)

// Distribution records how often each outcome was observed and supports
// weighted selection. Outcomes keep the position at which they were first
// recorded, and that position never changes. The zero value is an empty
// distribution ready to use.
type Distribution[T comparable] struct {
	outcomes []T
	counts   []int
	index    map[T]int
	total    int
}

// NewDistribution returns an empty distribution.
func NewDistribution[T comparable]() *Distribution[T] {
	return &Distribution[T]{index: make(map[T]int)}
}

// Record increments the count of outcome, adding it at the next position if it
// has not been seen before.
func (d *Distribution[T]) Record(outcome T) {
	if d.index == nil {
		d.index = make(map[T]int)
	}
	if i, ok := d.index[outcome]; ok {
		d.counts[i]++
	} else {
		d.index[outcome] = len(d.outcomes)
		d.outcomes = append(d.outcomes, outcome)
		d.counts = append(d.counts, 1)
	}
	d.total++
}

// Count returns the number of times outcome was recorded.
func (d *Distribution[T]) Count(outcome T) int {
	if i, ok := d.index[outcome]; ok {
		return d.counts[i]
	}
	return 0
}

// IndexOf returns the insertion position of outcome.
func (d *Distribution[T]) IndexOf(outcome T) (int, error) {
	i, ok := d.index[outcome]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, outcome)
	}
	return i, nil
}

// Offset returns the smallest draw for which Pick selects outcome: the sum of
// the counts of every outcome recorded before it.
func (d *Distribution[T]) Offset(outcome T) (int, error) {
	i, ok := d.index[outcome]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, outcome)
	}
	offset := 0
	for _, c := range d.counts[:i] {
		offset += c
	}
	return offset, nil
}

// Pick draws r in [0, Total()) from src and returns the first outcome, in
// insertion order, whose cumulative count exceeds r.
func (d *Distribution[T]) Pick(src NumberSource) (T, error) {
	var zero T
	if d.total == 0 {
		return zero, ErrEmptyDistribution
	}
	r, err := src.Next(d.total)
	if err != nil {
		return zero, err
	}
	if r < 0 || r >= d.total {
		return zero, fmt.Errorf("%w: draw %d outside [0, %d)", ErrInvalidArgument, r, d.total)
	}
	for i, c := range d.counts {
		r -= c
		if r < 0 {
			return d.outcomes[i], nil
		}
	}
	// Unreachable while total equals the sum of counts.
	return zero, ErrEmptyDistribution
}

// Total returns the sum of all counts.
func (d *Distribution[T]) Total() int {
	return d.total
}

// Len returns the number of distinct outcomes.
func (d *Distribution[T]) Len() int {
	return len(d.outcomes)
}

// Outcomes returns the recorded outcomes in insertion order.
func (d *Distribution[T]) Outcomes() []T {
	return append([]T(nil), d.outcomes...)
}

// Records returns a copy of the outcome counts.
func (d *Distribution[T]) Records() map[T]int {
	records := make(map[T]int, len(d.outcomes))
	for i, o := range d.outcomes {
		records[o] = d.counts[i]
	}
	return records
}

// String renders the distribution as {outcome:count, ...} in insertion order.
func (d *Distribution[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, o := range d.outcomes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v:%d", o, d.counts[i])
	}
	sb.WriteByte('}')
	return sb.String()
}
