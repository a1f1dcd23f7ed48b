package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/natefinch/atomic"
)

// Config holds the settings for a generation run. Values are read from the
// config file, then overridden by TWEETBOT_* environment variables, then by
// command line flags.
type Config struct {
	LogLevel    string `json:"log_level" env:"TWEETBOT_LOG_LEVEL"`
	InputPath   string `json:"input_path" env:"TWEETBOT_INPUT"`
	TweetColumn int    `json:"tweet_column" env:"TWEETBOT_COLUMN"`
	NumTweets   int    `json:"num_tweets" env:"TWEETBOT_NUM_TWEETS"`
	NumChars    int    `json:"num_chars" env:"TWEETBOT_NUM_CHARS"`
	OutputPath  string `json:"output_path" env:"TWEETBOT_OUTPUT"`
	Append      bool   `json:"append" env:"TWEETBOT_APPEND"`
	Seed        uint64 `json:"seed" env:"TWEETBOT_SEED"` // 0 seeds from the runtime
	ArchivePath string `json:"archive_path" env:"TWEETBOT_ARCHIVE"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		InputPath:   "files/dog_feelings_tweets.csv",
		TweetColumn: 2,
		NumTweets:   10,
		NumChars:    280,
		OutputPath:  "",
		Append:      false,
		Seed:        0,
		ArchivePath: "",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path and
// applies environment overrides. If the file doesn't exist, it creates one
// with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		var data []byte
		data, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal default config: %w", err)
		}
		if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
			// Defaults are still usable without a file on disk.
			fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err = json.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err = env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return config, nil
}

// Validate reports settings that cannot produce a run.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must be set")
	}
	if c.TweetColumn < 0 {
		return fmt.Errorf("tweet column cannot be negative, got %d", c.TweetColumn)
	}
	if c.NumTweets < 0 {
		return fmt.Errorf("tweet count cannot be negative, got %d", c.NumTweets)
	}
	if c.NumChars < 0 {
		return fmt.Errorf("tweet length cannot be negative, got %d", c.NumChars)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

func newLogger(level string) *slog.Logger {
	lvl, err := parseLogLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
