package markov

import (
	"strings"
	"testing"
)

// trainSentences returns a chain trained on space separated sentences.
func trainSentences(t testing.TB, src NumberSource, sentences ...string) *Chain {
	t.Helper()
	c := NewChain(WithSource(src))
	for _, s := range sentences {
		if err := c.TrainWords(strings.Fields(s)); err != nil {
			t.Fatalf("setup: TrainWords(%q) failed: %v", s, err)
		}
	}
	return c
}

// setupCISChain is a convenience helper trained on two overlapping sentences.
func setupCISChain(t testing.TB) *Chain {
	t.Helper()
	return trainSentences(t, NewRandomSource(), "CIS 120 rocks", "CIS 120 beats CIS 160")
}

// drain walks the chain until it is terminal and returns every emitted word.
func drain(t testing.TB, c *Chain) []string {
	t.Helper()
	var words []string
	for c.HasNext() {
		w, err := c.Next()
		if err != nil {
			t.Fatalf("Next() failed after %v: %v", words, err)
		}
		words = append(words, w)
	}
	return words
}
