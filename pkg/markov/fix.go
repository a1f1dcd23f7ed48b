package markov

import (
	"fmt"
	"log/slog"
	"slices"
)

// FixDistribution replaces the chain's NumberSource with a ScriptedSource that
// makes the walk produce exactly tokens. EndOfChain inside tokens marks a
// sentence boundary: the walk terminates there and the token after it is drawn
// from the start words by the caller's next Reset.
//
// Unless pickFirst is set, the walk must already be positioned at tokens[0]
// with ResetTo. With pickFirst, tokens[0] must be a start word and the first
// scripted draw is consumed by Reset.
//
// A sequence that does not end with EndOfChain is treated as if it did, so the
// walk is terminal after emitting the last word; its last word must then be
// untrained or have been seen ending a sentence. A word followed by an explicit
// EndOfChain that was never seen ending a sentence gets a draw of 0; the walk
// stays active there, which lets a caller cut a tweet short at its last word.
// Calling FixDistribution again discards the previous script.
func (c *Chain) FixDistribution(tokens []Token, pickFirst bool) error {
	if len(tokens) < 1 {
		return fmt.Errorf("%w: must have tokens in order to fix distribution", ErrInvalidArgument)
	}

	draws := make([]int, 0, len(tokens))
	cur := tokens[0]
	if pickFirst {
		if cur.EOC {
			return fmt.Errorf("%w: first token cannot be end of chain", ErrInvalidArgument)
		}
		offset, err := c.startWords.Offset(cur.Text)
		if err != nil {
			return fmt.Errorf("%w: first word '%s' not present in start words", ErrInvalidArgument, cur.Text)
		}
		draws = append(draws, offset)
	}

	seq := tokens[1:]
	implicitEnd := !tokens[len(tokens)-1].EOC
	if implicitEnd {
		seq = append(slices.Clone(seq), EndOfChain)
	}

	for i, next := range seq {
		if cur.EOC {
			// A new sentence begins; its first word comes from the start words.
			if next.EOC {
				return fmt.Errorf("%w: consecutive end of chain tokens", ErrInvalidArgument)
			}
			offset, err := c.startWords.Offset(next.Text)
			if err != nil {
				return fmt.Errorf("%w: word '%s' not present in start words", ErrInvalidArgument, next.Text)
			}
			draws = append(draws, offset)
			cur = next
			continue
		}

		d, ok := c.chain[cur.Text]
		switch {
		case !ok && next.EOC:
			// Next emits an untrained word without drawing.
		case !ok:
			return fmt.Errorf("%w: word '%s' has no successors, cannot be followed by '%s'", ErrInvalidArgument, cur.Text, next.Text)
		case next.EOC:
			offset, err := d.Offset(EndOfChain)
			if err != nil {
				if implicitEnd && i == len(seq)-1 {
					return fmt.Errorf("%w: last word '%s' never ends a sentence", ErrInvalidArgument, cur.Text)
				}
				offset = 0
			}
			draws = append(draws, offset)
		default:
			offset, err := d.Offset(next)
			if err != nil {
				return fmt.Errorf("%w: word '%s' not found as a child of word '%s'", ErrInvalidArgument, next.Text, cur.Text)
			}
			draws = append(draws, offset)
		}
		cur = next
	}

	c.source = NewScriptedSource(draws...)
	c.logger.Debug("Distribution fixed",
		slog.Int("tokens", len(tokens)),
		slog.Int("draws", len(draws)),
		slog.Bool("pick_first", pickFirst),
	)
	return nil
}
