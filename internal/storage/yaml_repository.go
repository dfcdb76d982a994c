package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

type yamlDocument struct {
	Words []vocabulary.Item `yaml:"words"`
}

// YAMLRepository keeps every word in a single YAML file.
// Each operation reads the file again so edits made outside the process are picked up.
type YAMLRepository struct {
	path string
	mu   sync.Mutex
}

// NewYAMLRepository creates a repository backed by path. The file is created on the first write.
func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

func (r *YAMLRepository) load() ([]vocabulary.Item, error) {
	doc, err := readYamlFile[yamlDocument](r.path)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("readYamlFile(%s) > %w", r.path, err)
	}
	return doc.Words, nil
}

func (r *YAMLRepository) save(items []vocabulary.Item) error {
	if err := writeYamlFile(r.path, yamlDocument{Words: items}); err != nil {
		return fmt.Errorf("writeYamlFile(%s) > %w", r.path, err)
	}
	return nil
}

// FindAll returns every word in file order
func (r *YAMLRepository) FindAll(_ context.Context) ([]vocabulary.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByID returns the word with id or ErrNotFound
func (r *YAMLRepository) FindByID(_ context.Context, id string) (*vocabulary.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Create appends a new word
func (r *YAMLRepository) Create(_ context.Context, item *vocabulary.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
		}
	}
	return r.save(append(items, *item))
}

// Update replaces the stored word that has the same id
func (r *YAMLRepository) Update(_ context.Context, item *vocabulary.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.save(items)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, item.ID)
}

// Delete removes the word with id
func (r *YAMLRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			return r.save(append(items[:i], items[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
