// Package storage persists vocabulary items.
package storage

import (
	"context"
	"errors"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

var (
	ErrNotFound    = errors.New("storage: word not found")
	ErrDuplicateID = errors.New("storage: word id already exists")
)

//go:generate mockgen -source=repository.go -destination=../mocks/storage/mock_repository.go -package=mock_storage

// Repository is the canonical store of vocabulary items
type Repository interface {
	FindAll(ctx context.Context) ([]vocabulary.Item, error)
	FindByID(ctx context.Context, id string) (*vocabulary.Item, error)
	Create(ctx context.Context, item *vocabulary.Item) error
	Update(ctx context.Context, item *vocabulary.Item) error
	Delete(ctx context.Context, id string) error
}
