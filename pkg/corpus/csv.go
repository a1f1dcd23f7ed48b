package corpus

import (
	"fmt"
	"io"
	"log/slog"
)

// Parser reads tweets out of one column of a CSV stream.
type Parser struct {
	column int
	logger *slog.Logger
}

// Option is a function that configures a Parser.
type Option func(*Parser)

// WithColumn sets the zero-based CSV column holding the tweet text.
// Default: 0
func WithColumn(column int) Option {
	return func(p *Parser) {
		p.column = column
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a new parser with default settings, which can be
// overridden by providing one or more Option functions.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tweets returns the tweet column of every line of r that has one.
func (p *Parser) Tweets(r io.Reader) ([]string, error) {
	var tweets []string
	lineNo := 0
	for line, err := range Lines(r) {
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
		}
		lineNo++
		tweet, ok := ExtractColumn(line, p.column)
		if !ok {
			p.logger.Debug("Skipping line without tweet column",
				slog.Int("line", lineNo),
				slog.Int("column", p.column),
			)
			continue
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}

// TrainingData parses every tweet of r into cleaned sentences.
func (p *Parser) TrainingData(r io.Reader) ([][]string, error) {
	tweets, err := p.Tweets(r)
	if err != nil {
		return nil, err
	}
	var sentences [][]string
	for _, tweet := range tweets {
		sentences = append(sentences, ParseTweet(tweet)...)
	}
	p.logger.Info("Corpus parsed",
		slog.Int("tweets", len(tweets)),
		slog.Int("sentences", len(sentences)),
	)
	return sentences, nil
}
