package markov

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ModelStats holds aggregated statistics for a trained Chain.
type ModelStats struct {
	Tokens         int     // The number of words with a successor distribution.
	Transitions    int     // The number of unique word->successor links.
	TotalFrequency int     // The sum of all link frequencies; the total number of trained transitions.
	StartingTokens int     // The number of unique words that can start a chain.
	StartFrequency int     // The number of sentences trained.
	MeanEntropy    float64 // Mean Shannon entropy, in nats, of the successor distributions.
	StartEntropy   float64 // Shannon entropy, in nats, of the start word distribution.
}

// Stats returns a snapshot of the chain's statistics.
func (c *Chain) Stats() ModelStats {
	s := ModelStats{
		Tokens:         len(c.chain),
		StartingTokens: c.startWords.Len(),
		StartFrequency: c.startWords.Total(),
		StartEntropy:   entropy(c.startWords.counts),
	}
	entropies := make([]float64, 0, len(c.chain))
	for _, d := range c.chain {
		s.Transitions += d.Len()
		s.TotalFrequency += d.Total()
		entropies = append(entropies, entropy(d.counts))
	}
	if len(entropies) > 0 {
		s.MeanEntropy = stat.Mean(entropies, nil)
	}
	return s
}

// entropy converts counts to probabilities and returns their entropy.
func entropy(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = float64(c)
	}
	floats.Scale(1/floats.Sum(p), p)
	return stat.Entropy(p)
}
