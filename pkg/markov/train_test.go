package markov

import (
	"errors"
	"strings"
	"testing"
)

func TestAddTransition(t *testing.T) {
	c := NewChain()
	if err := c.AddTransition(Word("1"), Word("2")); err != nil {
		t.Fatalf("AddTransition failed: %v", err)
	}
	d, ok := c.Get("1")
	if !ok {
		t.Fatal("expected '1' to have a successor distribution")
	}
	if d.Count(Word("2")) != 1 {
		t.Errorf("expected count 1 for '2', got %d", d.Count(Word("2")))
	}
	if _, ok := c.Get("2"); ok {
		t.Error("a transition target must not become a source")
	}
}

func TestAddTransitionRepeated(t *testing.T) {
	c := NewChain()
	for _, pair := range [][2]string{{"1", "2"}, {"1", "2"}, {"1", "2"}, {"3", "2"}, {"4", "2"}} {
		if err := c.AddTransition(Word(pair[0]), Word(pair[1])); err != nil {
			t.Fatal(err)
		}
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 sources, got %d", c.Len())
	}
	d, _ := c.Get("1")
	if d.Count(Word("2")) != 3 {
		t.Errorf("expected count 3, got %d", d.Count(Word("2")))
	}
}

func TestAddTransitionFromEndOfChain(t *testing.T) {
	c := NewChain()
	if err := c.AddTransition(EndOfChain, Word("ef")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if c.Len() != 0 {
		t.Error("failed transition must not modify the chain")
	}
}

func TestTrain(t *testing.T) {
	c := NewChain()
	if err := c.TrainWords([]string{"1", "2", "3"}); err != nil {
		t.Fatalf("TrainWords failed: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 sources, got %d", c.Len())
	}
	expected := map[string]Token{"1": Word("2"), "2": Word("3"), "3": EndOfChain}
	for from, to := range expected {
		d, ok := c.Get(from)
		if !ok {
			t.Fatalf("missing distribution for %q", from)
		}
		if d.Count(to) != 1 || d.Total() != 1 {
			t.Errorf("%q: expected only %v with count 1, got %v", from, to, d)
		}
	}
	if c.StartWords().Count("1") != 1 || c.StartWords().Total() != 1 {
		t.Errorf("unexpected start words: %v", c.StartWords())
	}
}

func TestTrainTwoSentences(t *testing.T) {
	c := setupCISChain(t)
	if c.Len() != 5 {
		t.Errorf("expected 5 sources, got %d", c.Len())
	}
	cis, _ := c.Get("CIS")
	if cis.Count(Word("120")) != 2 || cis.Count(Word("160")) != 1 {
		t.Errorf("unexpected CIS distribution: %v", cis)
	}
	d120, _ := c.Get("120")
	if d120.Count(Word("rocks")) != 1 || d120.Count(Word("beats")) != 1 {
		t.Errorf("unexpected 120 distribution: %v", d120)
	}
	rocks, _ := c.Get("rocks")
	if rocks.Count(EndOfChain) != 1 {
		t.Errorf("expected rocks to end a sentence once: %v", rocks)
	}
}

func TestTrainAccumulates(t *testing.T) {
	c := trainSentences(t, NewRandomSource(), "a table", "a banana", "a banana")

	a, _ := c.Get("a")
	if a.Count(Word("table")) != 1 || a.Count(Word("banana")) != 2 {
		t.Errorf("unexpected successor counts for 'a': %v", a)
	}
	if c.StartWords().Count("a") != 3 || c.StartWords().Total() != 3 {
		t.Errorf("unexpected start words: %v", c.StartWords())
	}
	banana, _ := c.Get("banana")
	if banana.Count(EndOfChain) != 2 {
		t.Errorf("expected banana to end two sentences: %v", banana)
	}
}

func TestTrainEmptyAndNil(t *testing.T) {
	c := NewChain()
	if err := c.TrainWords(nil); err != nil {
		t.Errorf("empty sentence should be a no-op, got %v", err)
	}
	if err := c.TrainWords(strings.Split("", " ")); err != nil {
		t.Errorf("sentence of empty words should be a no-op, got %v", err)
	}
	if c.Len() != 0 || c.StartWords().Total() != 0 {
		t.Error("empty sentences must not modify the chain")
	}

	if err := c.Train(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil sentence, got %v", err)
	}
}

func TestTrainAll(t *testing.T) {
	c := NewChain()
	err := c.TrainAll([][]string{{"one", "fish"}, {}, {"two", "fish"}})
	if err != nil {
		t.Fatalf("TrainAll failed: %v", err)
	}
	fish, _ := c.Get("fish")
	if fish.Count(EndOfChain) != 2 {
		t.Errorf("expected fish to end two sentences: %v", fish)
	}
	if c.StartWords().Len() != 2 {
		t.Errorf("expected two start words, got %v", c.StartWords())
	}
}

func TestChainString(t *testing.T) {
	c := trainSentences(t, NewRandomSource(), "a table", "a banana", "a banana")
	want := "a: {table:1, banana:2}\nbanana: {<EOC>:2}\ntable: {<EOC>:1}\n"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkTrain(b *testing.B) {
	sentence := strings.Fields("the quick brown fox jumps over the lazy dog and the quick cat")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewChain()
		for j := 0; j < 100; j++ {
			if err := c.TrainWords(sentence); err != nil {
				b.Fatal(err)
			}
		}
	}
}
