package main

import (
	"fmt"
	"log/slog"

	"github.com/CTAG07/tweetbot/pkg/archive"
	"github.com/CTAG07/tweetbot/pkg/tweetbot"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate tweets and print or write them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bot, err := a.loadBot()
			if err != nil {
				return err
			}

			cfg := a.config
			tweets, err := bot.GenerateTweets(cfg.NumTweets, cfg.NumChars)
			if err != nil {
				return fmt.Errorf("failed to generate tweets: %w", err)
			}

			if cfg.OutputPath != "" {
				if err = tweetbot.WriteTweets(cfg.OutputPath, tweets, cfg.Append); err != nil {
					return err
				}
				a.logger.Info("Tweets written", slog.String("path", cfg.OutputPath), slog.Bool("append", cfg.Append))
			} else {
				for _, t := range tweets {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
				}
			}

			if cfg.ArchivePath == "" {
				return nil
			}
			db, store, err := a.openArchive()
			if err != nil {
				return err
			}
			defer func() {
				store.Close()
				_ = db.Close()
			}()
			_, err = store.SaveBatch(cmd.Context(), archive.Batch{
				Source:   cfg.InputPath,
				MaxChars: cfg.NumChars,
				Tweets:   tweets,
			})
			return err
		},
	}
	fs := cmd.Flags()
	fs.IntP("count", "n", 0, "number of tweets to generate")
	fs.Int("chars", 0, "maximum characters per tweet")
	fs.StringP("output", "o", "", "file to write the tweets to instead of stdout")
	fs.Bool("append", false, "append to the output file instead of replacing it")
	return cmd
}
