package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show vocabulary progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repo, closeRepo, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			items, err := repo.FindAll(ctx)
			if err != nil {
				return fmt.Errorf("repository.FindAll() > %w", err)
			}

			printSummary(cmd.OutOrStdout(), statistics.Summarize(items, now()))
			return nil
		},
	}
}

func printSummary(out io.Writer, summary statistics.Summary) {
	_, _ = fmt.Fprintf(out, "Words:     %d\n", summary.Total)
	_, _ = fmt.Fprintf(out, "Due now:   %d\n", summary.Due)
	_, _ = fmt.Fprintf(out, "Due today: %d\n", summary.DueToday)
	_, _ = fmt.Fprintf(out, "New:       %d\n", summary.New)
	_, _ = fmt.Fprintf(out, "Accuracy:  %.1f%% (%d correct, %d incorrect)\n",
		summary.Accuracy, summary.CorrectCount, summary.IncorrectCount)
	_, _ = fmt.Fprintln(out)

	for i, count := range summary.ByLevel {
		_, _ = fmt.Fprintf(out, "Level %d: %d\n", i+1, count)
	}

	if len(summary.Topics) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TOPIC\tWORDS\tDUE\tMASTERED")
	for _, topic := range summary.Topics {
		name := topic.Topic
		if name == "" {
			name = "(none)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, topic.Total, topic.Due, topic.Mastered)
	}
	_ = w.Flush()
}
