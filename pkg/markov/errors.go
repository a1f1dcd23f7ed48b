package markov

import "errors"

var (
	// ErrInvalidArgument reports input that violates a precondition, such as
	// an end-of-chain token used as a transition source or an inconsistent
	// fix sequence.
	ErrInvalidArgument = errors.New("markov: invalid argument")
	// ErrEmptyDistribution is returned by Pick on a distribution with no
	// recorded outcomes.
	ErrEmptyDistribution = errors.New("markov: empty distribution")
	// ErrNotFound is returned when looking up an outcome that was never recorded.
	ErrNotFound = errors.New("markov: outcome not found")
	// ErrNoMoreElements is returned by Chain.Next when the walk is terminal.
	ErrNoMoreElements = errors.New("markov: no more elements")
	// ErrExhaustedSource is returned by a ScriptedSource that has no values left.
	ErrExhaustedSource = errors.New("markov: number source exhausted")
)
