package datasync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_storage "github.com/at-ishikawa/wordloop/internal/mocks/storage"
	"github.com/at-ishikawa/wordloop/internal/storage"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func TestSyncer_Sync(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	words := []vocabulary.Item{
		{ID: "w1", Term: "break the ice", Meaning: "start a conversation", Level: 1, NextReview: now, CreatedAt: now},
		{ID: "w2", Term: "eager", Meaning: "wanting very much", Level: 3, NextReview: now, CreatedAt: now},
	}
	notFound := func(id string) error { return fmt.Errorf("%w: %s", storage.ErrNotFound, id) }

	tests := []struct {
		name       string
		opts       SyncOptions
		setup      func(destination *mock_storage.MockRepository)
		want       *SyncResult
		wantOutput []string
		wantErr    bool
	}{
		{
			name: "new words are created and existing ones skipped",
			setup: func(destination *mock_storage.MockRepository) {
				destination.EXPECT().FindByID(gomock.Any(), "w1").Return(nil, notFound("w1"))
				destination.EXPECT().Create(gomock.Any(), &words[0]).Return(nil)
				destination.EXPECT().FindByID(gomock.Any(), "w2").Return(&words[1], nil)
			},
			want:       &SyncResult{New: 1, Skipped: 1},
			wantOutput: []string{`[NEW]  "break the ice" (w1)`, `[SKIP]  "eager" (w2)`},
		},
		{
			name: "existing words are updated",
			opts: SyncOptions{UpdateExisting: true},
			setup: func(destination *mock_storage.MockRepository) {
				destination.EXPECT().FindByID(gomock.Any(), "w1").Return(&words[0], nil)
				destination.EXPECT().Update(gomock.Any(), &words[0]).Return(nil)
				destination.EXPECT().FindByID(gomock.Any(), "w2").Return(&words[1], nil)
				destination.EXPECT().Update(gomock.Any(), &words[1]).Return(nil)
			},
			want:       &SyncResult{Updated: 2},
			wantOutput: []string{`[UPDATE]  "break the ice" (w1)`},
		},
		{
			name: "dry run writes nothing",
			opts: SyncOptions{DryRun: true, UpdateExisting: true},
			setup: func(destination *mock_storage.MockRepository) {
				destination.EXPECT().FindByID(gomock.Any(), "w1").Return(nil, notFound("w1"))
				destination.EXPECT().FindByID(gomock.Any(), "w2").Return(&words[1], nil)
			},
			want: &SyncResult{New: 1, Updated: 1},
		},
		{
			name: "lookup failure stops the sync",
			setup: func(destination *mock_storage.MockRepository) {
				destination.EXPECT().FindByID(gomock.Any(), "w1").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mock_storage.NewMockRepository(ctrl)
			destination := mock_storage.NewMockRepository(ctrl)
			source.EXPECT().FindAll(gomock.Any()).Return(words, nil)
			tt.setup(destination)

			var buf bytes.Buffer
			got, err := NewSyncer(source, destination, &buf).Sync(context.Background(), tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, want := range tt.wantOutput {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSyncer_Sync_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_storage.NewMockRepository(ctrl)
	destination := mock_storage.NewMockRepository(ctrl)
	source.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("broken file"))

	_, err := NewSyncer(source, destination, &bytes.Buffer{}).Sync(context.Background(), SyncOptions{})
	assert.ErrorContains(t, err, "broken file")
}
