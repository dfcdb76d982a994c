// Package importer reads vocabulary lists from external files.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/at-ishikawa/wordloop/internal/answer"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

var (
	ErrMissingColumn = errors.New("importer: required column is missing")
	ErrInvalidRow    = errors.New("importer: invalid row")
)

const (
	columnTerm             = "term"
	columnMeaning          = "meaning"
	columnSecondaryMeaning = "secondary_meaning"
	columnExample          = "example"
	columnTopic            = "topic"
)

// Result is the outcome of an import
type Result struct {
	Items []vocabulary.Item
	// Skipped holds terms that already exist or appear earlier in the file
	Skipped []string
}

// ReadCSV parses rows into new level 1 items due at now.
// The first row is a header naming the columns, term and meaning are required.
// Terms already in existing, compared after normalization, are skipped.
// Every invalid row is reported in the returned error with its line number,
// and Result still holds the rows that were valid.
func ReadCSV(r io.Reader, existing []vocabulary.Item, now time.Time) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("csv.Reader.Read(header) > %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{columnTerm, columnMeaning} {
		if _, ok := columns[required]; !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[answer.Normalize(item.Term)] = true
	}

	var result Result
	var rowErrors []error
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("csv.Reader.Read() > %w", err)
		}
		line, _ := reader.FieldPos(0)

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		item := vocabulary.NewItem(field(columnTerm), field(columnMeaning), now)
		if item.Term == "" || item.Meaning == "" {
			rowErrors = append(rowErrors, fmt.Errorf("%w: line %d: term and meaning are required", ErrInvalidRow, line))
			continue
		}
		item.SecondaryMeaning = field(columnSecondaryMeaning)
		item.Example = field(columnExample)
		item.Topic = field(columnTopic)

		key := answer.Normalize(item.Term)
		if seen[key] {
			result.Skipped = append(result.Skipped, item.Term)
			continue
		}
		seen[key] = true
		result.Items = append(result.Items, item)
	}

	return result, errors.Join(rowErrors...)
}
