// Package session runs a bounded study session over generated questions.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/at-ishikawa/wordloop/internal/answer"
	"github.com/at-ishikawa/wordloop/internal/question"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

var (
	ErrEmptySelection    = errors.New("session: no words to study")
	ErrNotActive         = errors.New("session: not active")
	ErrAlreadyActive     = errors.New("session: already active")
	ErrNoCurrentQuestion = errors.New("session: no current question")
)

// State is the lifecycle state of a session
type State int

const (
	StateIdle State = iota
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

//go:generate mockgen -source=session.go -destination=../mocks/session/mock_review_observer.go -package=mock_session ReviewObserver

// ReviewObserver persists review outcomes. It is called synchronously, exactly once
// per newly answered question, and must not panic.
type ReviewObserver interface {
	OnWordReviewed(wordID string, isCorrect bool, difficulty srs.Difficulty)
}

// ReviewFunc adapts a function to ReviewObserver
type ReviewFunc func(wordID string, isCorrect bool, difficulty srs.Difficulty)

func (f ReviewFunc) OnWordReviewed(wordID string, isCorrect bool, difficulty srs.Difficulty) {
	f(wordID, isCorrect, difficulty)
}

// Session sequences questions and records each answer at most once.
// It is not safe for concurrent use.
type Session struct {
	generator *question.Generator
	observer  ReviewObserver
	now       func() time.Time

	state     State
	words     []vocabulary.Item
	preLevels map[string]int
	questions []question.StudyQuestion
	index     int
	ledger    Ledger
	startedAt time.Time
	result    *Result
}

// New creates an idle session. now defaults to time.Now when nil.
func New(generator *question.Generator, observer ReviewObserver, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		generator: generator,
		observer:  observer,
		now:       now,
	}
}

// Start selects up to maxQuestions words from corpus by review priority and generates one question per word.
// The session is left unchanged when nothing can be selected.
func (s *Session) Start(corpus []vocabulary.Item, maxQuestions int) error {
	if s.state == StateActive {
		return ErrAlreadyActive
	}

	now := s.now()
	words, err := srs.SelectWordsForSession(corpus, maxQuestions, now)
	if err != nil {
		return fmt.Errorf("srs.SelectWordsForSession() > %w", err)
	}
	if len(words) == 0 {
		return ErrEmptySelection
	}

	preLevels := make(map[string]int, len(words))
	for _, word := range words {
		preLevels[word.ID] = word.Level
	}

	s.words = words
	s.preLevels = preLevels
	s.questions = s.generator.GenerateSessionQuestions(words, corpus)
	s.index = 0
	s.ledger = Ledger{}
	s.result = nil
	s.startedAt = now
	s.state = StateActive
	return nil
}

// SubmitAnswer checks userAnswer against the current question and records the outcome.
// A question that already has a record keeps it: the stored correctness is returned
// and nothing else happens.
func (s *Session) SubmitAnswer(userAnswer string, difficulty srs.Difficulty) (bool, error) {
	return s.record(userAnswer, difficulty, false)
}

// Skip records the current question as a wrong answer rated hard
func (s *Session) Skip() (bool, error) {
	return s.record("", srs.DifficultyHard, true)
}

func (s *Session) record(userAnswer string, difficulty srs.Difficulty, skipped bool) (bool, error) {
	q, ok := s.CurrentQuestion()
	if !ok {
		if s.state != StateActive {
			return false, ErrNotActive
		}
		return false, ErrNoCurrentQuestion
	}
	if existing, ok := s.ledger.Get(q.ID); ok {
		return existing.IsCorrect, nil
	}
	if !difficulty.IsValid() {
		return false, fmt.Errorf("%w: %q", srs.ErrInvalidDifficulty, difficulty)
	}

	isCorrect := !skipped && answer.Check(userAnswer, q.Answer)
	ledger, record, added := s.ledger.Record(AnswerRecord{
		QuestionID:    q.ID,
		Question:      q,
		UserAnswer:    userAnswer,
		CorrectAnswer: q.Answer,
		IsCorrect:     isCorrect,
		Difficulty:    difficulty,
		AnsweredAt:    s.now(),
	})
	s.ledger = ledger
	if added && s.observer != nil {
		s.observer.OnWordReviewed(q.Item.ID, record.IsCorrect, record.Difficulty)
	}
	return record.IsCorrect, nil
}

// Advance moves to the next question and reports whether there was one
func (s *Session) Advance() bool {
	if s.state != StateActive || s.index+1 >= len(s.questions) {
		return false
	}
	s.index++
	return true
}

// End computes the result from every recorded answer and completes the session
func (s *Session) End() (Result, error) {
	if s.state != StateActive {
		return Result{}, ErrNotActive
	}
	result := newResult(s.ledger.Records(), s.preLevels, s.now().Sub(s.startedAt))
	s.result = &result
	s.state = StateCompleted
	return result, nil
}

// Reset discards the session and returns it to idle
func (s *Session) Reset() {
	s.state = StateIdle
	s.words = nil
	s.preLevels = nil
	s.questions = nil
	s.index = 0
	s.ledger = Ledger{}
	s.result = nil
	s.startedAt = time.Time{}
}

func (s *Session) State() State {
	return s.state
}

// CurrentQuestion returns the question being asked while the session is active
func (s *Session) CurrentQuestion() (question.StudyQuestion, bool) {
	if s.state != StateActive || s.index >= len(s.questions) {
		return question.StudyQuestion{}, false
	}
	return s.questions[s.index], true
}

// CurrentRecord returns the record of the current question once it has been answered
func (s *Session) CurrentRecord() (AnswerRecord, bool) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return AnswerRecord{}, false
	}
	return s.ledger.Get(q.ID)
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) Total() int {
	return len(s.questions)
}

func (s *Session) AnsweredCount() int {
	return s.ledger.Len()
}

// PercentComplete is the share of questions answered, in [0, 100]
func (s *Session) PercentComplete() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.ledger.Len()) / float64(len(s.questions)) * 100
}

// Questions returns a copy of the generated questions
func (s *Session) Questions() []question.StudyQuestion {
	return append([]question.StudyQuestion(nil), s.questions...)
}

// Result returns the final result once the session is completed
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}
