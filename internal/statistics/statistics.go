// Package statistics summarizes the progress of a vocabulary.
package statistics

import (
	"sort"
	"time"

	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// TopicStatistics holds counts for the words of one topic
type TopicStatistics struct {
	Topic    string // empty for words without a topic
	Total    int
	Due      int
	Mastered int // words at the highest level
}

// Summary is a snapshot of the whole vocabulary at a point in time
type Summary struct {
	Total int
	// ByLevel[i] counts words at level i+1
	ByLevel        [vocabulary.MaxLevel]int
	Due            int // next review is now or earlier
	DueToday       int // next review is before the end of today, overdue included
	New            int // never reviewed
	CorrectCount   int
	IncorrectCount int
	// Accuracy is the share of correct answers in percent, 0 when nothing was answered
	Accuracy float64
	Topics   []TopicStatistics
}

// Summarize counts items by level, due state and topic.
// Items with a level outside the valid range are counted in Total only.
func Summarize(items []vocabulary.Item, now time.Time) Summary {
	summary := Summary{Total: len(items)}
	topics := make(map[string]*TopicStatistics)

	summary.Due = len(srs.GetDueWords(items, now))
	summary.DueToday = len(srs.GetWordsDueToday(items, now))
	summary.New = len(srs.GetNewWords(items, now))

	for _, item := range items {
		if vocabulary.IsValidLevel(item.Level) {
			summary.ByLevel[item.Level-1]++
		}
		summary.CorrectCount += item.CorrectCount
		summary.IncorrectCount += item.IncorrectCount

		topic, ok := topics[item.Topic]
		if !ok {
			topic = &TopicStatistics{Topic: item.Topic}
			topics[item.Topic] = topic
		}
		topic.Total++
		if !item.NextReview.After(now) {
			topic.Due++
		}
		if item.Level == vocabulary.MaxLevel {
			topic.Mastered++
		}
	}

	if answered := summary.CorrectCount + summary.IncorrectCount; answered > 0 {
		summary.Accuracy = float64(summary.CorrectCount) / float64(answered) * 100
	}

	summary.Topics = make([]TopicStatistics, 0, len(topics))
	for _, topic := range topics {
		summary.Topics = append(summary.Topics, *topic)
	}
	sort.Slice(summary.Topics, func(i, j int) bool {
		return summary.Topics[i].Topic < summary.Topics[j].Topic
	})
	return summary
}
