package session

import (
	"time"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Result summarizes a finished session
type Result struct {
	TotalQuestions int
	CorrectAnswers int
	// Accuracy is a percentage in [0, 100]
	Accuracy  float64
	LeveledUp []vocabulary.Snapshot
	// NeedsPractice holds every word answered incorrectly at least once
	NeedsPractice []vocabulary.Snapshot
	Duration      time.Duration
}

type wordOutcome struct {
	word      vocabulary.Snapshot
	correct   bool
	incorrect bool
}

// newResult aggregates the ledger. A word asked several times is listed once,
// and a single wrong answer puts it into NeedsPractice.
func newResult(records []AnswerRecord, preLevels map[string]int, duration time.Duration) Result {
	result := Result{
		TotalQuestions: len(records),
		Duration:       duration,
	}

	var order []string
	outcomes := make(map[string]*wordOutcome)
	for _, record := range records {
		if record.IsCorrect {
			result.CorrectAnswers++
		}

		word := record.Question.Item
		outcome, ok := outcomes[word.ID]
		if !ok {
			outcome = &wordOutcome{word: word}
			outcomes[word.ID] = outcome
			order = append(order, word.ID)
		}
		if record.IsCorrect {
			outcome.correct = true
		} else {
			outcome.incorrect = true
		}
	}

	if result.TotalQuestions > 0 {
		result.Accuracy = float64(result.CorrectAnswers) / float64(result.TotalQuestions) * 100
	}

	for _, id := range order {
		outcome := outcomes[id]
		level, ok := preLevels[id]
		if !ok {
			level = outcome.word.Level
		}
		switch {
		case outcome.incorrect:
			result.NeedsPractice = append(result.NeedsPractice, outcome.word)
		case outcome.correct && level < vocabulary.MaxLevel:
			result.LeveledUp = append(result.LeveledUp, outcome.word)
		}
	}
	return result
}
