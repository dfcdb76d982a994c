// Package vocabulary provides the vocabulary item model shared by the scheduler, the question generator and the stores.
package vocabulary

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MinLevel = 1
	MaxLevel = 5
)

var validate = validator.New()

// Item is the canonical, storage-owned state of a word
type Item struct {
	ID               string     `yaml:"id" db:"id" validate:"required"`
	Term             string     `yaml:"term" db:"term" validate:"required"`
	Meaning          string     `yaml:"meaning" db:"meaning" validate:"required"`
	SecondaryMeaning string     `yaml:"secondary_meaning,omitempty" db:"secondary_meaning"`
	Example          string     `yaml:"example,omitempty" db:"example"`
	Topic            string     `yaml:"topic,omitempty" db:"topic"`
	Level            int        `yaml:"level" db:"level" validate:"min=1,max=5"`
	NextReview       time.Time  `yaml:"next_review" db:"next_review"`
	LastReviewed     *time.Time `yaml:"last_reviewed,omitempty" db:"last_reviewed"`
	CorrectCount     int        `yaml:"correct_count" db:"correct_count" validate:"min=0"`
	IncorrectCount   int        `yaml:"incorrect_count" db:"incorrect_count" validate:"min=0"`
	CreatedAt        time.Time  `yaml:"created_at" db:"created_at"`
}

// NewItem creates a level 1 item that is due immediately
func NewItem(term, meaning string, now time.Time) Item {
	return Item{
		ID:         uuid.NewString(),
		Term:       strings.TrimSpace(term),
		Meaning:    strings.TrimSpace(meaning),
		Level:      MinLevel,
		NextReview: now,
		CreatedAt:  now,
	}
}

// Validate checks the invariants every stored item has to satisfy
func (item Item) Validate() error {
	if err := validate.Struct(item); err != nil {
		return fmt.Errorf("invalid vocabulary item %q: %w", item.Term, err)
	}
	return nil
}

// IsNew reports whether the item has never been reviewed
func (item Item) IsNew() bool {
	return item.LastReviewed == nil
}

// Snapshot captures the parts of the item a question displays.
// Questions hold snapshots so later reviews of the canonical item never leak into them.
func (item Item) Snapshot() Snapshot {
	return Snapshot{
		ID:               item.ID,
		Term:             item.Term,
		Meaning:          item.Meaning,
		SecondaryMeaning: item.SecondaryMeaning,
		Example:          item.Example,
		Topic:            item.Topic,
		Level:            item.Level,
	}
}

// Snapshot is an immutable value copy of an item taken at question generation time
type Snapshot struct {
	ID               string
	Term             string
	Meaning          string
	SecondaryMeaning string
	Example          string
	Topic            string
	Level            int
}

// IsValidLevel reports whether level is a mastery level
func IsValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
