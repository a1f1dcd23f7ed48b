package markov

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Chain is a first-order Markov chain over words. It maps each trained word to
// the Distribution of tokens that followed it, keeps a separate Distribution of
// sentence-starting words, and walks the model one token at a time.
// A Chain holds a single walk cursor and is not safe for concurrent use.
type Chain struct {
	chain      map[string]*Distribution[Token]
	startWords *Distribution[string]
	source     NumberSource
	logger     *slog.Logger

	// current is the word the next call to Next returns; it is only meaningful
	// while active is set.
	current string
	active  bool
}

// ChainOption configures a Chain at construction.
type ChainOption func(*Chain)

// WithSource sets the NumberSource that drives the walk.
// Default: NewRandomSource()
func WithSource(src NumberSource) ChainOption {
	return func(c *Chain) {
		if src != nil {
			c.source = src
		}
	}
}

// WithLogger sets the logger used by the chain. By default logs are discarded.
func WithLogger(logger *slog.Logger) ChainOption {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChain returns an empty, terminal chain.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{
		chain:      make(map[string]*Distribution[Token]),
		startWords: NewDistribution[string](),
		source:     NewRandomSource(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogger sets the logger for the Chain. A nil logger is ignored.
func (c *Chain) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetSource replaces the NumberSource used for every subsequent draw.
func (c *Chain) SetSource(src NumberSource) error {
	if src == nil {
		return fmt.Errorf("%w: number source must not be nil", ErrInvalidArgument)
	}
	c.source = src
	return nil
}

// Source returns the NumberSource currently driving the walk.
func (c *Chain) Source() NumberSource {
	return c.source
}

// Get returns the successor distribution for word, if word was ever trained
// as the first element of a transition.
func (c *Chain) Get(word string) (*Distribution[Token], bool) {
	d, ok := c.chain[word]
	return d, ok
}

// StartWords returns the distribution of sentence-starting words.
func (c *Chain) StartWords() *Distribution[string] {
	return c.startWords
}

// Len returns the number of words that have a successor distribution.
func (c *Chain) Len() int {
	return len(c.chain)
}

// String lists every word and its successor distribution, one per line,
// sorted by word.
func (c *Chain) String() string {
	words := make([]string, 0, len(c.chain))
	for w := range c.chain {
		words = append(words, w)
	}
	sort.Strings(words)

	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w)
		sb.WriteString(": ")
		sb.WriteString(c.chain[w].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
