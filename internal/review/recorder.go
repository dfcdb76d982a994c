// Package review writes study outcomes back to the word store.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/storage"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Apply returns item after a review answered at now
func Apply(item vocabulary.Item, difficulty srs.Difficulty, isCorrect bool, now time.Time) (vocabulary.Item, error) {
	next, err := srs.CalculateNextReview(item.Level, difficulty, isCorrect, now)
	if err != nil {
		return item, fmt.Errorf("srs.CalculateNextReview(%s) > %w", item.ID, err)
	}

	reviewedAt := now
	item.Level = next.Level
	item.NextReview = next.NextReview
	item.LastReviewed = &reviewedAt
	if isCorrect {
		item.CorrectCount++
	} else {
		item.IncorrectCount++
	}
	return item, nil
}

// Recorder schedules the next review of each answered word and saves it.
type Recorder struct {
	repository  storage.Repository
	now         func() time.Time
	maxAttempts uint
	delay       time.Duration
	logger      *slog.Logger
}

type Option func(*Recorder)

// WithRetry sets how many times a failed save is attempted and the delay between attempts
func WithRetry(maxAttempts uint, delay time.Duration) Option {
	return func(r *Recorder) {
		r.maxAttempts = maxAttempts
		r.delay = delay
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

func NewRecorder(repository storage.Repository, opts ...Option) *Recorder {
	r := &Recorder{
		repository:  repository,
		now:         time.Now,
		maxAttempts: 3,
		delay:       100 * time.Millisecond,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.maxAttempts == 0 {
		r.maxAttempts = 1
	}
	return r
}

// OnWordReviewed records the review and logs failures instead of returning them,
// so a storage outage never interrupts a study session.
func (r *Recorder) OnWordReviewed(wordID string, isCorrect bool, difficulty srs.Difficulty) {
	if err := r.Record(context.Background(), wordID, isCorrect, difficulty); err != nil {
		r.logger.Error("failed to record a review",
			"word_id", wordID,
			"is_correct", isCorrect,
			"difficulty", difficulty,
			"error", err,
		)
	}
}

// Record loads the word, applies the review and saves it.
// Storage errors other than a missing word are retried.
func (r *Recorder) Record(ctx context.Context, wordID string, isCorrect bool, difficulty srs.Difficulty) error {
	now := r.now()
	var updated vocabulary.Item
	err := retry.Do(
		func() error {
			item, err := r.repository.FindByID(ctx, wordID)
			if err != nil {
				return fmt.Errorf("repository.FindByID(%s) > %w", wordID, err)
			}
			updated, err = Apply(*item, difficulty, isCorrect, now)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if err := r.repository.Update(ctx, &updated); err != nil {
				return fmt.Errorf("repository.Update(%s) > %w", wordID, err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.maxAttempts),
		retry.Delay(r.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return retry.IsRecoverable(err) && !errors.Is(err, storage.ErrNotFound)
		}),
		retry.OnRetry(func(n uint, err error) {
			r.logger.Debug("review update attempt failed", "word_id", wordID, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return err
	}

	r.logger.Debug("recorded a review",
		"word_id", wordID,
		"is_correct", isCorrect,
		"level", updated.Level,
		"next_review", updated.NextReview,
	)
	return nil
}
