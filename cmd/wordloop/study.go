package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/cli"
	"github.com/at-ishikawa/wordloop/internal/question"
	"github.com/at-ishikawa/wordloop/internal/review"
	"github.com/at-ishikawa/wordloop/internal/session"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func newStudyCommand() *cobra.Command {
	var maxQuestions int
	var topic string

	command := &cobra.Command{
		Use:   "study",
		Short: "Start a study session with the words that need review most",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cmd.Flags().Changed("max") {
				maxQuestions = cfg.Study.MaxQuestions
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
			if topic != "" {
				items = filterByTopic(items, topic)
			}

			recorder := review.NewRecorder(repo,
				review.WithClock(now),
				review.WithRetry(cfg.Review.MaxAttempts, cfg.Review.Delay),
			)
			generator := question.NewGenerator(question.NewRandomSource(cfg.Study.Seed))
			studySession := session.New(generator, recorder, now)
			if err := studySession.Start(items, maxQuestions); err != nil {
				if errors.Is(err, session.ErrEmptySelection) {
					_, _ = fmt.Fprintln(out, "No words to study. Add some with `wordloop words add` or `wordloop import`.")
					return nil
				}
				return fmt.Errorf("session.Start() > %w", err)
			}

			_, _ = fmt.Fprintf(out, "Study session started with %d questions.\n", studySession.Total())
			_, _ = fmt.Fprintln(out, "Answer with an option number or the text. Press Enter to skip, type q to quit.")
			_, _ = fmt.Fprintln(out)
			if _, err := cli.NewStudyCLI(studySession, cmd.InOrStdin(), out).Run(); err != nil {
				return err
			}
			return nil
		},
	}
	command.Flags().IntVarP(&maxQuestions, "max", "n", 0, "maximum number of questions (default: study.max_questions)")
	command.Flags().StringVar(&topic, "topic", "", "only study words of this topic")
	return command
}

func filterByTopic(items []vocabulary.Item, topic string) []vocabulary.Item {
	var result []vocabulary.Item
	for _, item := range items {
		if item.Topic == topic {
			result = append(result, item)
		}
	}
	return result
}
