package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

const wordColumns = "id, term, meaning, secondary_meaning, example, topic, level, next_review, last_reviewed, correct_count, incorrect_count, created_at"

// DBRepository stores words in the words table of a MySQL or SQLite database.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all words ordered by creation time.
func (r *DBRepository) FindAll(ctx context.Context) ([]vocabulary.Item, error) {
	var items []vocabulary.Item
	if err := r.db.SelectContext(ctx, &items, "SELECT "+wordColumns+" FROM words ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	return items, nil
}

// FindByID returns the word with id, or ErrNotFound.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*vocabulary.Item, error) {
	var item vocabulary.Item
	err := r.db.GetContext(ctx, &item, "SELECT "+wordColumns+" FROM words WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word) > %w", err)
	}
	return &item, nil
}

// Create inserts a new word.
func (r *DBRepository) Create(ctx context.Context, item *vocabulary.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO words (`+wordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Term, item.Meaning, item.SecondaryMeaning, item.Example, item.Topic,
		item.Level, item.NextReview, item.LastReviewed, item.CorrectCount, item.IncorrectCount, item.CreatedAt); err != nil {
		return fmt.Errorf("db.ExecContext(insert word) > %w", err)
	}
	return nil
}

// Update overwrites every column of the word with the same id.
func (r *DBRepository) Update(ctx context.Context, item *vocabulary.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE words SET term = ?, meaning = ?, secondary_meaning = ?, example = ?, topic = ?,
		level = ?, next_review = ?, last_reviewed = ?, correct_count = ?, incorrect_count = ?
		WHERE id = ?`,
		item.Term, item.Meaning, item.SecondaryMeaning, item.Example, item.Topic,
		item.Level, item.NextReview, item.LastReviewed, item.CorrectCount, item.IncorrectCount,
		item.ID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update word) > %w", err)
	}
	return checkAffected(result, item.ID)
}

// Delete removes the word with id.
func (r *DBRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM words WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete word) > %w", err)
	}
	return checkAffected(result, id)
}

func checkAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
