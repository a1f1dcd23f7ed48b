package markov

import (
	"fmt"
	"log/slog"
)

// Reset starts a new walk at a start word drawn from the start distribution.
// On a chain with no start words the walk becomes terminal. The first call to
// Next after Reset returns the drawn word.
func (c *Chain) Reset() error {
	if c.startWords.Total() == 0 {
		c.ResetTo(EndOfChain)
		return nil
	}
	start, err := c.startWords.Pick(c.source)
	if err != nil {
		return fmt.Errorf("could not draw start word: %w", err)
	}
	c.ResetTo(Word(start))
	return nil
}

// ResetTo positions the walk at start, so that the next call to Next returns
// start. start need not have been trained; a walk on an untrained word emits
// it once and then terminates. ResetTo(EndOfChain) makes the walk terminal.
func (c *Chain) ResetTo(start Token) {
	c.current = start.Text
	c.active = !start.EOC
}

// HasNext reports whether Next will return a word.
func (c *Chain) HasNext() bool {
	return c.active
}

// Next returns the word at the walk's cursor and advances the cursor to a
// successor drawn from that word's distribution. The returned word is always
// the one selected by the previous step, so drawing EndOfChain only becomes
// visible as HasNext turning false.
func (c *Chain) Next() (string, error) {
	if !c.active {
		return "", ErrNoMoreElements
	}
	word := c.current

	d, ok := c.chain[word]
	if !ok {
		c.ResetTo(EndOfChain)
		return word, nil
	}

	next, err := d.Pick(c.source)
	if err != nil {
		return "", fmt.Errorf("could not draw successor of '%s': %w", word, err)
	}
	if next.EOC {
		c.logger.Debug("Walk reached end of chain", slog.String("last_word", word))
	}
	c.ResetTo(next)
	return word, nil
}

// Walk resets the chain to a random start word and returns the words of one
// full sentence.
func (c *Chain) Walk() ([]string, error) {
	if err := c.Reset(); err != nil {
		return nil, err
	}
	var words []string
	for c.HasNext() {
		w, err := c.Next()
		if err != nil {
			return words, err
		}
		words = append(words, w)
	}
	return words, nil
}
