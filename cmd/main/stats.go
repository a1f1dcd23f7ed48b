package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the trained model and the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bot, err := a.loadBot()
			if err != nil {
				return err
			}
			st := bot.Chain().Stats()

			table := uitable.New()
			table.Separator = " "
			table.RightAlign(0)
			table.AddRow(color.CyanString("Model:"), a.config.InputPath)
			table.AddRow("words:", st.Tokens)
			table.AddRow("transitions:", st.Transitions)
			table.AddRow("total frequency:", st.TotalFrequency)
			table.AddRow("start words:", st.StartingTokens)
			table.AddRow("start frequency:", st.StartFrequency)
			table.AddRow("mean entropy:", fmt.Sprintf("%.4f", st.MeanEntropy))
			table.AddRow("start entropy:", fmt.Sprintf("%.4f", st.StartEntropy))

			if a.config.ArchivePath != "" {
				db, store, err := a.openArchive()
				if err != nil {
					return err
				}
				defer func() {
					store.Close()
					_ = db.Close()
				}()
				ast, err := store.Stats(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to read archive stats: %w", err)
				}
				table.AddRow(color.CyanString("Archive:"), a.config.ArchivePath)
				table.AddRow("batches:", ast.Batches)
				table.AddRow("tweets:", ast.Tweets)
				table.AddRow("average length:", fmt.Sprintf("%.1f", ast.AverageLength()))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the most recently archived tweets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.ArchivePath == "" {
				return fmt.Errorf("no archive configured")
			}
			db, store, err := a.openArchive()
			if err != nil {
				return err
			}
			defer func() {
				store.Close()
				_ = db.Close()
			}()

			tweets, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to read archive: %w", err)
			}

			table := uitable.New()
			table.MaxColWidth = 80
			table.Wrap = true
			table.AddRow(color.CyanString("BATCH"), color.CyanString("CREATED"), color.CyanString("TWEET"))
			for _, t := range tweets {
				table.AddRow(t.BatchId, t.CreatedAt.Format(time.DateTime), t.Body)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of tweets to list")
	return cmd
}
