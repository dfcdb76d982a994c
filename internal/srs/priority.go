package srs

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

type bucket int

const (
	bucketOverdue bucket = iota
	bucketDueToday
	bucketNew
	bucketLater
)

// EndOfDay returns the last instant of now's calendar day in now's location
func EndOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, now.Location()).Add(-time.Nanosecond)
}

func isOverdue(item vocabulary.Item, now time.Time) bool {
	return item.NextReview.Before(now)
}

func isDueByEndOfDay(item vocabulary.Item, now time.Time) bool {
	return !item.NextReview.After(EndOfDay(now))
}

func priorityBucket(item vocabulary.Item, now time.Time) bucket {
	switch {
	case isOverdue(item, now):
		return bucketOverdue
	case isDueByEndOfDay(item, now):
		return bucketDueToday
	case item.IsNew():
		return bucketNew
	default:
		return bucketLater
	}
}

// SortByReviewPriority returns a new slice ordered overdue first, then due today,
// then never reviewed, then the rest. Ties are broken by lower level, then by
// earlier next review. The sort is stable and items is left untouched.
func SortByReviewPriority(items []vocabulary.Item, now time.Time) []vocabulary.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b vocabulary.Item) int {
		if c := cmp.Compare(priorityBucket(a, now), priorityBucket(b, now)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Level, b.Level); c != 0 {
			return c
		}
		return a.NextReview.Compare(b.NextReview)
	})
	return sorted
}

// SelectWordsForSession returns the count highest priority items
func SelectWordsForSession(items []vocabulary.Item, count int, now time.Time) ([]vocabulary.Item, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	sorted := SortByReviewPriority(items, now)
	if len(sorted) > count {
		sorted = sorted[:count]
	}
	return sorted, nil
}

// GetDueWords returns the items whose next review is not after now
func GetDueWords(items []vocabulary.Item, now time.Time) []vocabulary.Item {
	return filter(items, func(item vocabulary.Item) bool {
		return !item.NextReview.After(now)
	})
}

// GetWordsDueToday returns the items that need a review before the end of now's day, overdue ones included
func GetWordsDueToday(items []vocabulary.Item, now time.Time) []vocabulary.Item {
	return filter(items, func(item vocabulary.Item) bool {
		return isDueByEndOfDay(item, now)
	})
}

// GetNewWords returns the items that have never been reviewed
func GetNewWords(items []vocabulary.Item, _ time.Time) []vocabulary.Item {
	return filter(items, vocabulary.Item.IsNew)
}

func filter(items []vocabulary.Item, keep func(vocabulary.Item) bool) []vocabulary.Item {
	result := make([]vocabulary.Item, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
