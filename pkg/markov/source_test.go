package markov

import (
	"errors"
	"testing"
)

func TestScriptedSource(t *testing.T) {
	src := NewScriptedSource(0, 1)
	for _, want := range []int{0, 1} {
		got, err := src.Next(100)
		if err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		if got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", src.Remaining())
	}
	if _, err := src.Next(100); !errors.Is(err, ErrExhaustedSource) {
		t.Errorf("expected ErrExhaustedSource on third call, got %v", err)
	}
}

func TestScriptedSourceEmpty(t *testing.T) {
	if _, err := NewScriptedSource().Next(1); !errors.Is(err, ErrExhaustedSource) {
		t.Errorf("expected ErrExhaustedSource, got %v", err)
	}
}

func TestScriptedSourceIgnoresBound(t *testing.T) {
	src := NewScriptedSource(7)
	got, err := src.Next(2)
	if err != nil || got != 7 {
		t.Errorf("Next(2) = %d, %v; want 7, nil", got, err)
	}
}

func TestScriptedSourceCopiesInput(t *testing.T) {
	values := []int{3, 4}
	src := NewScriptedSource(values...)
	values[0] = 9
	if got, _ := src.Next(10); got != 3 {
		t.Errorf("scripted source shares caller slice: got %d", got)
	}
}

func TestRandomSourceBounds(t *testing.T) {
	for _, src := range []*RandomSource{NewRandomSource(), NewSeededSource(7)} {
		for i := 0; i < 1000; i++ {
			v, err := src.Next(5)
			if err != nil {
				t.Fatalf("Next(5) failed: %v", err)
			}
			if v < 0 || v >= 5 {
				t.Fatalf("Next(5) = %d, out of range", v)
			}
		}
		if _, err := src.Next(0); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for bound 0, got %v", err)
		}
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a, b := NewSeededSource(99), NewSeededSource(99)
	for i := 0; i < 100; i++ {
		x, _ := a.Next(1 << 20)
		y, _ := b.Next(1 << 20)
		if x != y {
			t.Fatalf("draw %d differs between identically seeded sources: %d != %d", i, x, y)
		}
	}
}
