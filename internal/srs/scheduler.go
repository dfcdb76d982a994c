// Package srs schedules vocabulary reviews on a five level Leitner style ladder.
package srs

import (
	"fmt"
	"math"
	"time"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Difficulty is the learner's self-assessed recall effort
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyGood Difficulty = "good"
	DifficultyHard Difficulty = "hard"
)

// incorrectIntervalFactor shortens the level 1 interval after a wrong answer
const incorrectIntervalFactor = 0.5

var baseIntervals = map[int]time.Duration{
	1: 10 * time.Minute,
	2: 24 * time.Hour,
	3: 3 * 24 * time.Hour,
	4: 7 * 24 * time.Hour,
	5: 25 * 24 * time.Hour,
}

var multipliers = map[Difficulty]float64{
	DifficultyEasy: 1.3,
	DifficultyGood: 1.0,
	DifficultyHard: 0.7,
}

// ParseDifficulty converts user input such as "easy" or "e" into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy", "e":
		return DifficultyEasy, nil
	case "good", "g", "":
		return DifficultyGood, nil
	case "hard", "h":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// IsValid reports whether d is one of the known difficulties
func (d Difficulty) IsValid() bool {
	_, ok := multipliers[d]
	return ok
}

// BaseInterval returns the review interval of a level
func BaseInterval(level int) (time.Duration, error) {
	interval, ok := baseIntervals[level]
	if !ok {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	return interval, nil
}

// Multiplier returns the interval multiplier of a difficulty
func Multiplier(difficulty Difficulty) (float64, error) {
	m, ok := multipliers[difficulty]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}
	return m, nil
}

// Review is the outcome of rescheduling an item
type Review struct {
	Level      int
	NextReview time.Time
}

// CalculateNextReview computes the new level and next review time after an answer.
// A wrong answer drops one level and always retries after half of the level 1 interval.
// A right answer climbs one level and waits the new level's interval scaled by the difficulty.
func CalculateNextReview(level int, difficulty Difficulty, isCorrect bool, now time.Time) (Review, error) {
	if !vocabulary.IsValidLevel(level) {
		return Review{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	multiplier, err := Multiplier(difficulty)
	if err != nil {
		return Review{}, err
	}

	if !isCorrect {
		return Review{
			Level:      max(vocabulary.MinLevel, level-1),
			NextReview: now.Add(scale(baseIntervals[vocabulary.MinLevel], incorrectIntervalFactor)),
		}, nil
	}

	newLevel := min(vocabulary.MaxLevel, level+1)
	return Review{
		Level:      newLevel,
		NextReview: now.Add(scale(baseIntervals[newLevel], multiplier)),
	}, nil
}

func scale(d time.Duration, factor float64) time.Duration {
	return time.Duration(math.Round(float64(d) * factor))
}
