package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func TestReadCSV(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	existing := []vocabulary.Item{{ID: "w1", Term: "Serendipity", Meaning: "happy accident", Level: 3}}

	tests := []struct {
		name             string
		input            string
		wantTerms        []string
		wantSkipped      []string
		wantErrIs        error
		wantErrContains  []string
		checkFirstItemFn func(t *testing.T, item vocabulary.Item)
	}{
		{
			name: "all columns",
			input: `term,meaning,secondary_meaning,example,topic
ephemeral,short-lived,fleeting,"Fame is ephemeral, they said.",adjectives
`,
			wantTerms: []string{"ephemeral"},
			checkFirstItemFn: func(t *testing.T, item vocabulary.Item) {
				assert.NotEmpty(t, item.ID)
				assert.Equal(t, "short-lived", item.Meaning)
				assert.Equal(t, "fleeting", item.SecondaryMeaning)
				assert.Equal(t, "Fame is ephemeral, they said.", item.Example)
				assert.Equal(t, "adjectives", item.Topic)
				assert.Equal(t, vocabulary.MinLevel, item.Level)
				assert.Equal(t, now, item.NextReview)
				assert.Equal(t, now, item.CreatedAt)
				assert.Nil(t, item.LastReviewed)
			},
		},
		{
			name: "columns in any order and case",
			input: `Meaning, Term
short-lived, ephemeral
`,
			wantTerms: []string{"ephemeral"},
			checkFirstItemFn: func(t *testing.T, item vocabulary.Item) {
				assert.Equal(t, "short-lived", item.Meaning)
				assert.Empty(t, item.Example)
			},
		},
		{
			name: "existing and repeated terms are skipped",
			input: `term,meaning
serendipity!,lucky find
ephemeral,short-lived
Ephemeral,brief
`,
			wantTerms:   []string{"ephemeral"},
			wantSkipped: []string{"serendipity!", "Ephemeral"},
		},
		{
			name: "rows without term or meaning are reported by line",
			input: `term,meaning
ephemeral,short-lived
,missing term
ubiquitous,
`,
			wantTerms:       []string{"ephemeral"},
			wantErrIs:       ErrInvalidRow,
			wantErrContains: []string{"line 3", "line 4"},
		},
		{
			name:      "missing meaning column",
			input:     "term,example\nephemeral,Fame is ephemeral.\n",
			wantErrIs: ErrMissingColumn,
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input), existing, now)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				for _, want := range tt.wantErrContains {
					assert.Contains(t, err.Error(), want)
				}
			} else {
				require.NoError(t, err)
			}

			var terms []string
			for _, item := range got.Items {
				terms = append(terms, item.Term)
			}
			assert.Equal(t, tt.wantTerms, terms)
			assert.Equal(t, tt.wantSkipped, got.Skipped)
			if tt.checkFirstItemFn != nil {
				require.NotEmpty(t, got.Items)
				tt.checkFirstItemFn(t, got.Items[0])
			}
		})
	}
}
