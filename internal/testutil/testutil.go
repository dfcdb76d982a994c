// Package testutil provides shared test helpers for creating config files and word fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/storage"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// WordsFile is the YAML word file written by SetupTestConfig, relative to its directory
const WordsFile = "words.yml"

// SetupTestConfig creates a config file using driver with all storage under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, driver string) string {
	t.Helper()

	configContent := fmt.Sprintf(`storage:
  driver: %s
  yaml_file: %s
database:
  sqlite_path: %s
study:
  max_questions: 5
  seed: 1
review:
  max_attempts: 1
  delay: 1ms
`,
		driver,
		filepath.Join(tmpDir, WordsFile),
		filepath.Join(tmpDir, "wordloop.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupBrokenConfig creates a config file that cannot be parsed
func SetupBrokenConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage: [\n"), 0644))
	return cfgPath
}

// WordOption configures optional fields of a word fixture
type WordOption func(*vocabulary.Item)

func WithExample(example string) WordOption {
	return func(item *vocabulary.Item) {
		item.Example = example
	}
}

func WithLevel(level int) WordOption {
	return func(item *vocabulary.Item) {
		item.Level = level
	}
}

func WithTopic(topic string) WordOption {
	return func(item *vocabulary.Item) {
		item.Topic = topic
	}
}

// NewWord creates a level 1 word with the given id that was due at nextReview
func NewWord(id, term, meaning string, nextReview time.Time, opts ...WordOption) vocabulary.Item {
	item := vocabulary.Item{
		ID:         id,
		Term:       term,
		Meaning:    meaning,
		Level:      vocabulary.MinLevel,
		NextReview: nextReview,
		CreatedAt:  nextReview.Add(-24 * time.Hour),
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// WriteWords stores items in the YAML word file of a config created by SetupTestConfig
func WriteWords(t *testing.T, tmpDir string, items ...vocabulary.Item) {
	t.Helper()

	repo := storage.NewYAMLRepository(filepath.Join(tmpDir, WordsFile))
	for i := range items {
		require.NoError(t, repo.Create(context.Background(), &items[i]))
	}
}

// ReadWords returns every word in the YAML word file of a config created by SetupTestConfig
func ReadWords(t *testing.T, tmpDir string) []vocabulary.Item {
	t.Helper()

	items, err := storage.NewYAMLRepository(filepath.Join(tmpDir, WordsFile)).FindAll(context.Background())
	require.NoError(t, err)
	return items
}
