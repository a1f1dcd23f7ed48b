package tweetbot

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// WriteTweets writes tweets to path, one per line. When appending, the tweets
// are added to the end of any existing file; otherwise the file is replaced
// atomically.
func WriteTweets(path string, tweets []string, appendToFile bool) error {
	var buf bytes.Buffer
	for _, t := range tweets {
		buf.WriteString(t)
		buf.WriteByte('\n')
	}

	if !appendToFile {
		if err := atomic.WriteFile(path, &buf); err != nil {
			return fmt.Errorf("failed to write tweets to %s: %w", path, err)
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err = buf.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append tweets to %s: %w", path, err)
	}
	return f.Close()
}

// WriteTweetsToFile generates numTweets tweets of at most numChars characters
// and writes them to path.
func (b *Bot) WriteTweetsToFile(numTweets, numChars int, path string, appendToFile bool) error {
	tweets, err := b.GenerateTweets(numTweets, numChars)
	if err != nil {
		return err
	}
	return WriteTweets(path, tweets, appendToFile)
}
