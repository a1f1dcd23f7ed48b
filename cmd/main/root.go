package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/CTAG07/tweetbot/pkg/archive"
	"github.com/CTAG07/tweetbot/pkg/markov"
	"github.com/CTAG07/tweetbot/pkg/tweetbot"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the state shared by all subcommands once the config is loaded.
type app struct {
	configPath string
	config     *Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "tweetbot",
		Short:         "Generate tweets from a Markov chain trained on a CSV corpus",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			if err = applyFlags(cmd.Flags(), cfg); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a.config = cfg
			a.logger = newLogger(cfg.LogLevel)
			a.logger.Debug("Configuration loaded", slog.String("path", a.configPath))
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "C", "./config.json", "path to the JSON config file")
	addInputFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGenerateCmd(a),
		newStatsCmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func addInputFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "", "CSV file holding the training tweets")
	fs.Int("column", 0, "zero-based CSV column of the tweet text")
	fs.Uint64("seed", 0, "seed for the random source (0 seeds from the runtime)")
	fs.String("archive", "", "SQLite database recording generated tweets")
	fs.String("log-level", "", "log level: debug, info, warn or error")
}

// applyFlags copies every explicitly set flag over the loaded config.
func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		var err error
		switch f.Name {
		case "input":
			cfg.InputPath = f.Value.String()
		case "column":
			cfg.TweetColumn, err = fs.GetInt(f.Name)
		case "seed":
			cfg.Seed, err = fs.GetUint64(f.Name)
		case "archive":
			cfg.ArchivePath = f.Value.String()
		case "log-level":
			cfg.LogLevel = f.Value.String()
		case "count":
			cfg.NumTweets, err = fs.GetInt(f.Name)
		case "chars":
			cfg.NumChars, err = fs.GetInt(f.Name)
		case "output":
			cfg.OutputPath = f.Value.String()
		case "append":
			cfg.Append, err = fs.GetBool(f.Name)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// source returns the NumberSource for this run.
func (a *app) source() markov.NumberSource {
	if a.config.Seed == 0 {
		return markov.NewRandomSource()
	}
	return markov.NewSeededSource(a.config.Seed)
}

// loadBot trains a bot on the configured corpus.
func (a *app) loadBot() (*tweetbot.Bot, error) {
	f, err := os.Open(a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return tweetbot.NewFromReader(f, a.config.TweetColumn,
		tweetbot.WithSource(a.source()),
		tweetbot.WithLogger(a.logger),
	)
}

// openArchive opens the configured archive database and prepares a Store.
// The caller must close both.
func (a *app) openArchive() (*sql.DB, *archive.Store, error) {
	if dir := filepath.Dir(a.config.ArchivePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}
	db, err := initDB(a.config.ArchivePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open archive: %w", err)
	}
	if err = archive.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to set up archive schema: %w", err)
	}
	store, err := archive.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to prepare archive: %w", err)
	}
	store.SetLogger(a.logger)
	return db, store, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// The version command needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				color.CyanString("tweetbot"), Version, Commit, BuildDate)
		},
	}
}
