package markov

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// AddTransition records a single `from -> to` link. It is the low-level
// building block of Train; to may be EndOfChain, from may not.
func (c *Chain) AddTransition(from, to Token) error {
	if from.EOC {
		return fmt.Errorf("%w: end of chain cannot be a transition source", ErrInvalidArgument)
	}
	d, ok := c.chain[from.Text]
	if !ok {
		d = NewDistribution[Token]()
		c.chain[from.Text] = d
	}
	d.Record(to)
	return nil
}

// Train adds one sentence of training data to the chain. The first word is
// recorded as a start word, every adjacent pair as a transition, and the last
// word as being followed by EndOfChain. Empty words are skipped and an empty
// sentence is a no-op. Frequencies accumulate across calls.
func (c *Chain) Train(sentence iter.Seq[string]) error {
	if sentence == nil {
		return fmt.Errorf("%w: sentence must not be nil", ErrInvalidArgument)
	}

	var words []string
	for w := range sentence {
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil
	}

	c.startWords.Record(words[0])
	for i := 0; i < len(words)-1; i++ {
		if err := c.AddTransition(Word(words[i]), Word(words[i+1])); err != nil {
			return err
		}
	}
	if err := c.AddTransition(Word(words[len(words)-1]), EndOfChain); err != nil {
		return err
	}

	c.logger.Debug("Sentence trained",
		slog.String("start_word", words[0]),
		slog.Int("words", len(words)),
	)
	return nil
}

// TrainWords is a convenience wrapper around Train for a slice of words.
// A nil slice is treated as an empty sentence.
func (c *Chain) TrainWords(words []string) error {
	return c.Train(slices.Values(words))
}

// TrainAll trains the chain on every sentence, in order.
func (c *Chain) TrainAll(sentences [][]string) error {
	for i, s := range sentences {
		if err := c.TrainWords(s); err != nil {
			return fmt.Errorf("sentence %d: %w", i, err)
		}
	}
	c.logger.Info("Training completed",
		slog.Int("sentences_processed", len(sentences)),
		slog.Int("tokens", len(c.chain)),
		slog.Int("start_words", c.startWords.Len()),
	)
	return nil
}
