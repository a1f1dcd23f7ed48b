package tweetbot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/CTAG07/tweetbot/pkg/corpus"
	"github.com/CTAG07/tweetbot/pkg/markov"
)

// ErrInvalidArgument is returned for negative lengths and malformed tweets.
// It wraps markov.ErrInvalidArgument so either can be matched with errors.Is.
var ErrInvalidArgument = fmt.Errorf("tweetbot: %w", markov.ErrInvalidArgument)

// Bot generates tweets from a Markov chain trained on sentences.
type Bot struct {
	chain  *markov.Chain
	punct  markov.NumberSource
	logger *slog.Logger
}

// Option is a function that configures a Bot.
type Option func(*Bot)

// WithChainSource sets the NumberSource driving the chain's walk.
func WithChainSource(src markov.NumberSource) Option {
	return func(b *Bot) {
		if src != nil {
			markov.WithSource(src)(b.chain)
		}
	}
}

// WithPunctuationSource sets the NumberSource used to choose punctuation.
func WithPunctuationSource(src markov.NumberSource) Option {
	return func(b *Bot) {
		if src != nil {
			b.punct = src
		}
	}
}

// WithSource drives both the walk and the punctuation from one source.
func WithSource(src markov.NumberSource) Option {
	return func(b *Bot) {
		WithChainSource(src)(b)
		WithPunctuationSource(src)(b)
	}
}

// WithLogger sets the logger used by the bot and its chain.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
			b.chain.SetLogger(logger)
		}
	}
}

func newBot(opts []Option) *Bot {
	b := &Bot{
		chain:  markov.NewChain(),
		punct:  markov.NewRandomSource(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// New trains a bot on sentences of cleaned words.
func New(sentences [][]string, opts ...Option) (*Bot, error) {
	b := newBot(opts)
	if err := b.chain.TrainAll(sentences); err != nil {
		return nil, fmt.Errorf("failed to train chain: %w", err)
	}
	return b, nil
}

// NewFromReader parses the tweets found in the given CSV column of r and trains
// a bot on them.
func NewFromReader(r io.Reader, column int, opts ...Option) (*Bot, error) {
	b := newBot(opts)
	sentences, err := corpus.NewParser(corpus.WithColumn(column), corpus.WithLogger(b.logger)).TrainingData(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read training data: %w", err)
	}
	if err = b.chain.TrainAll(sentences); err != nil {
		return nil, fmt.Errorf("failed to train chain: %w", err)
	}
	return b, nil
}

// Chain returns the bot's chain.
func (b *Bot) Chain() *markov.Chain {
	return b.chain
}

// GenerateTweet builds a tweet of exactly numWords words. Each time the walk
// ends a sentence a punctuation mark is appended and a new sentence is started
// with a random start word. The tweet always ends with punctuation. A zero
// word count or an untrained bot yields an empty tweet.
func (b *Bot) GenerateTweet(numWords int) (string, error) {
	if numWords < 0 {
		return "", fmt.Errorf("%w: word count cannot be negative, got %d", ErrInvalidArgument, numWords)
	}
	if err := b.chain.Reset(); err != nil {
		return "", err
	}
	if numWords == 0 || !b.chain.HasNext() {
		return "", nil
	}

	var sb strings.Builder
	for i := 0; i < numWords; i++ {
		if !b.chain.HasNext() {
			p, err := b.RandomPunctuation()
			if err != nil {
				return "", err
			}
			sb.WriteString(p)
			sb.WriteByte(' ')
			if err = b.chain.Reset(); err != nil {
				return "", err
			}
		}
		word, err := b.chain.Next()
		if err != nil {
			return "", err
		}
		sb.WriteString(word)
		if i == numWords-1 {
			p, err := b.RandomPunctuation()
			if err != nil {
				return "", err
			}
			sb.WriteString(p)
		} else if b.chain.HasNext() {
			sb.WriteByte(' ')
		}
	}
	return sb.String(), nil
}

// GenerateTweetChars returns the longest tweet, generated with a growing word
// count, whose length does not exceed numChars.
func (b *Bot) GenerateTweetChars(numChars int) (string, error) {
	if numChars < 0 {
		return "", fmt.Errorf("%w: tweet length cannot be negative, got %d", ErrInvalidArgument, numChars)
	}
	if b.chain.StartWords().Total() == 0 {
		return "", nil
	}

	tweet := ""
	for numWords := 1; ; numWords++ {
		next, err := b.GenerateTweet(numWords)
		if err != nil {
			return "", err
		}
		if len(next) > numChars {
			return tweet, nil
		}
		tweet = next
	}
}

// GenerateTweets generates numTweets tweets of at most numChars characters.
func (b *Bot) GenerateTweets(numTweets, numChars int) ([]string, error) {
	tweets := make([]string, 0, max(numTweets, 0))
	for i := 0; i < numTweets; i++ {
		tweet, err := b.GenerateTweetChars(numChars)
		if err != nil {
			return tweets, fmt.Errorf("tweet %d: %w", i, err)
		}
		tweets = append(tweets, tweet)
	}
	b.logger.Info("Tweets generated",
		slog.Int("tweets", len(tweets)),
		slog.Int("max_chars", numChars),
	)
	return tweets, nil
}

// FixDistribution scripts the bot so that the next GenerateTweet with the
// matching word count returns exactly tweet. tweet lists words and punctuation
// marks separately and must end with punctuation; each mark ends a sentence.
func (b *Bot) FixDistribution(tweet []string) error {
	if len(tweet) == 0 {
		return fmt.Errorf("%w: tweet must not be empty", ErrInvalidArgument)
	}
	if !corpus.IsPunctuation(tweet[len(tweet)-1]) {
		return fmt.Errorf("%w: tweet must be punctuated", ErrInvalidArgument)
	}

	tokens := make([]markov.Token, len(tweet))
	var draws []int
	for i, w := range tweet {
		if corpus.IsPunctuation(w) {
			tokens[i] = markov.EndOfChain
			draws = append(draws, PunctuationIndex([]rune(w)[0]))
		} else {
			tokens[i] = markov.Word(w)
		}
	}
	if err := b.chain.FixDistribution(tokens, true); err != nil {
		if errors.Is(err, markov.ErrInvalidArgument) {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return err
	}
	b.punct = markov.NewScriptedSource(draws...)
	return nil
}
