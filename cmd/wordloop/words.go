package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func newWordsCommand() *cobra.Command {
	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Manage vocabulary words",
	}

	wordsCmd.AddCommand(
		newWordsAddCommand(),
		newWordsListCommand(),
		newWordsDeleteCommand(),
	)
	return wordsCmd
}

func newWordsAddCommand() *cobra.Command {
	var secondaryMeaning, example, topic string

	command := &cobra.Command{
		Use:   "add <term> <meaning>",
		Short: "Add a word",
		Args:  cobra.ExactArgs(2),
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

			item := vocabulary.NewItem(args[0], args[1], now())
			item.SecondaryMeaning = secondaryMeaning
			item.Example = example
			item.Topic = topic
			if err := repo.Create(ctx, &item); err != nil {
				return fmt.Errorf("repository.Create() > %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", item.Term, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&secondaryMeaning, "secondary-meaning", "", "another accepted meaning")
	command.Flags().StringVar(&example, "example", "", "an example sentence using the word")
	command.Flags().StringVar(&topic, "topic", "", "a topic to group the word with")
	return command
}

func newWordsListCommand() *cobra.Command {
	var due, dueToday, onlyNew bool

	command := &cobra.Command{
		Use:   "list",
		Short: "List words in review priority order",
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

			current := now()
			switch {
			case due:
				items = srs.GetDueWords(items, current)
			case dueToday:
				items = srs.GetWordsDueToday(items, current)
			case onlyNew:
				items = srs.GetNewWords(items, current)
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No words found.")
				return nil
			}

			printWords(cmd.OutOrStdout(), srs.SortByReviewPriority(items, current))
			return nil
		},
	}
	command.Flags().BoolVar(&due, "due", false, "only words due now")
	command.Flags().BoolVar(&dueToday, "today", false, "only words due by the end of today")
	command.Flags().BoolVar(&onlyNew, "new", false, "only words never reviewed")
	command.MarkFlagsMutuallyExclusive("due", "today", "new")
	return command
}

func printWords(out io.Writer, items []vocabulary.Item) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTERM\tMEANING\tTOPIC\tLEVEL\tNEXT REVIEW")
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			item.ID, item.Term, item.Meaning, item.Topic, item.Level,
			item.NextReview.Local().Format(time.DateTime),
		)
	}
	_ = w.Flush()
}

func newWordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a word",
		Args:  cobra.ExactArgs(1),
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

			if err := repo.Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("repository.Delete() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
