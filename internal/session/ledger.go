package session

import (
	"maps"
	"time"

	"github.com/at-ishikawa/wordloop/internal/question"
	"github.com/at-ishikawa/wordloop/internal/srs"
)

// AnswerRecord is the outcome of one question. It is written once and never changed.
type AnswerRecord struct {
	QuestionID    string
	Question      question.StudyQuestion
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	Difficulty    srs.Difficulty
	AnsweredAt    time.Time
}

// Ledger maps question ids to their answer records.
// The zero value is an empty ledger; Record returns a new ledger instead of changing the receiver.
type Ledger struct {
	records map[string]AnswerRecord
	order   []string
}

// Record adds record unless its question already has one.
// It returns the resulting ledger, the record stored for the question, and whether the ledger changed.
func (l Ledger) Record(record AnswerRecord) (Ledger, AnswerRecord, bool) {
	if existing, ok := l.records[record.QuestionID]; ok {
		return l, existing, false
	}

	records := make(map[string]AnswerRecord, len(l.records)+1)
	maps.Copy(records, l.records)
	records[record.QuestionID] = record

	order := make([]string, len(l.order), len(l.order)+1)
	copy(order, l.order)
	order = append(order, record.QuestionID)

	return Ledger{records: records, order: order}, record, true
}

// Get returns the record of a question
func (l Ledger) Get(questionID string) (AnswerRecord, bool) {
	record, ok := l.records[questionID]
	return record, ok
}

// Len returns the number of answered questions
func (l Ledger) Len() int {
	return len(l.order)
}

// Records returns every record in the order they were written
func (l Ledger) Records() []AnswerRecord {
	records := make([]AnswerRecord, 0, len(l.order))
	for _, id := range l.order {
		records = append(records, l.records[id])
	}
	return records
}
