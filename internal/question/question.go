// Package question renders vocabulary items into testable questions.
package question

import (
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Type is the format a question is asked in
type Type string

const (
	TypeGapFillText    Type = "gap_fill_text"
	TypeGapFillAudio   Type = "gap_fill_audio"
	TypeContextMeaning Type = "context_meaning"
	TypeSimpleMeaning  Type = "simple_meaning"
	TypeDictation      Type = "dictation"
	TypeTranslation    Type = "translation"
)

// AllTypes lists every question type
var AllTypes = []Type{
	TypeGapFillText,
	TypeGapFillAudio,
	TypeContextMeaning,
	TypeSimpleMeaning,
	TypeDictation,
	TypeTranslation,
}

// OptionCount is the number of options of a multiple choice question
const OptionCount = 4

// HasOptions reports whether questions of this type are multiple choice
func (t Type) HasOptions() bool {
	switch t {
	case TypeGapFillText, TypeGapFillAudio, TypeContextMeaning, TypeSimpleMeaning:
		return true
	}
	return false
}

// RequiresExample reports whether the type needs the term inside the example sentence
func (t Type) RequiresExample() bool {
	return t == TypeGapFillText || t == TypeGapFillAudio
}

// Fallback returns the type used in a session when t is unavailable for an item
func (t Type) Fallback() Type {
	switch t {
	case TypeGapFillText:
		return TypeSimpleMeaning
	case TypeGapFillAudio:
		return TypeDictation
	}
	return t
}

// StudyQuestion is a single question generated from a snapshot of an item
type StudyQuestion struct {
	ID     string
	Item   vocabulary.Snapshot
	Type   Type
	Prompt string
	Answer string
	// Options is set only for multiple choice types and always contains Answer exactly once
	Options []string
	// ClozeText is the example sentence with the term masked or marked
	ClozeText string
}
