package question

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/wordloop/internal/answer"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

const placeholderFormat = "word%d"

// sampleDistractors picks count wrong options for item.
// Items sharing the topic are preferred, then any other item. Values equal to the
// canonical answer or to an already picked value are skipped, and synthetic
// placeholders fill whatever the corpus cannot provide.
func (g *Generator) sampleDistractors(
	item vocabulary.Item,
	corpus []vocabulary.Item,
	canonical string,
	value func(vocabulary.Item) string,
	count int,
) []string {
	var sameTopic, others []vocabulary.Item
	for _, candidate := range corpus {
		if candidate.ID == item.ID {
			continue
		}
		if item.Topic != "" && candidate.Topic == item.Topic {
			sameTopic = append(sameTopic, candidate)
			continue
		}
		others = append(others, candidate)
	}
	shuffle(g.rng, sameTopic)
	shuffle(g.rng, others)

	seen := map[string]struct{}{
		answer.Normalize(canonical): {},
	}
	distractors := make([]string, 0, count)
	add := func(v string) {
		key := answer.Normalize(v)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		distractors = append(distractors, v)
	}

	for _, candidate := range append(sameTopic, others...) {
		if len(distractors) >= count {
			break
		}
		v := strings.TrimSpace(value(candidate))
		if v == "" {
			continue
		}
		add(v)
	}

	for i := 1; len(distractors) < count; i++ {
		add(fmt.Sprintf(placeholderFormat, i))
	}
	return distractors
}

// buildOptions mixes the canonical answer with its distractors in random order
func (g *Generator) buildOptions(
	item vocabulary.Item,
	corpus []vocabulary.Item,
	canonical string,
	value func(vocabulary.Item) string,
) []string {
	options := make([]string, 0, OptionCount)
	options = append(options, canonical)
	options = append(options, g.sampleDistractors(item, corpus, canonical, value, OptionCount-1)...)
	shuffle(g.rng, options)
	return options
}

func termOf(item vocabulary.Item) string {
	return item.Term
}

func meaningOf(item vocabulary.Item) string {
	return item.Meaning
}
