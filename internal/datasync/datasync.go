// Package datasync copies words between two stores, such as the YAML file and a database.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/at-ishikawa/wordloop/internal/storage"
)

// SyncResult tracks counts for each copy operation.
type SyncResult struct {
	New     int
	Skipped int
	Updated int
}

// SyncOptions controls copy behavior.
type SyncOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Syncer copies every word from a source store to a destination store, keeping ids.
type Syncer struct {
	source      storage.Repository
	destination storage.Repository
	writer      io.Writer
}

// NewSyncer creates a new Syncer.
func NewSyncer(source, destination storage.Repository, writer io.Writer) *Syncer {
	return &Syncer{
		source:      source,
		destination: destination,
		writer:      writer,
	}
}

// Sync creates words missing from the destination. Words that already exist are
// skipped, or overwritten with the source version when UpdateExisting is set.
func (s *Syncer) Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	words, err := s.source.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("source.FindAll() > %w", err)
	}

	var result SyncResult
	for i := range words {
		word := &words[i]

		_, err := s.destination.FindByID(ctx, word.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("destination.FindByID(%s) > %w", word.ID, err)
		}

		if err == nil {
			if !opts.UpdateExisting {
				_, _ = fmt.Fprintf(s.writer, "  [SKIP]  %q (%s)\n", word.Term, word.ID)
				result.Skipped++
				continue
			}
			if !opts.DryRun {
				if err := s.destination.Update(ctx, word); err != nil {
					return nil, fmt.Errorf("destination.Update(%s) > %w", word.ID, err)
				}
			}
			_, _ = fmt.Fprintf(s.writer, "  [UPDATE]  %q (%s)\n", word.Term, word.ID)
			result.Updated++
			continue
		}

		if !opts.DryRun {
			if err := s.destination.Create(ctx, word); err != nil {
				return nil, fmt.Errorf("destination.Create(%s) > %w", word.ID, err)
			}
		}
		_, _ = fmt.Fprintf(s.writer, "  [NEW]  %q (%s)\n", word.Term, word.ID)
		result.New++
	}
	return &result, nil
}
