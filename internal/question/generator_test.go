package question

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// fixedSource always returns the same value.
// 0.999 makes every shuffle an identity permutation and every random pick the last element.
type fixedSource float64

func (s fixedSource) Float64() float64 {
	return float64(s)
}

const identity = fixedSource(0.999)

func newTestGenerator(rng RandomSource) *Generator {
	g := NewGenerator(rng)
	n := 0
	g.newID = func() string {
		n++
		return fmt.Sprintf("q%d", n)
	}
	return g
}

func newItem(id, term, meaning, example, topic string) vocabulary.Item {
	return vocabulary.Item{
		ID:         id,
		Term:       term,
		Meaning:    meaning,
		Example:    example,
		Topic:      topic,
		Level:      1,
		NextReview: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testCorpus() []vocabulary.Item {
	return []vocabulary.Item{
		newItem("1", "run", "to move fast on foot", "I run every morning.", "sport"),
		newItem("2", "swim", "to move through water", "We swim in the lake.", "sport"),
		newItem("3", "bake", "to cook with dry heat", "They bake bread.", "food"),
		newItem("4", "boil", "to heat a liquid until it bubbles", "", "food"),
		newItem("5", "jump", "to push yourself off the ground", "Cats jump high.", "sport"),
		newItem("6", "fry", "to cook in hot oil", "Fry the eggs.", "food"),
	}
}

func assertValidOptions(t *testing.T, q StudyQuestion) {
	t.Helper()
	require.Len(t, q.Options, OptionCount)
	count := 0
	seen := map[string]bool{}
	for _, o := range q.Options {
		assert.False(t, seen[o], "duplicate option %q in %v", o, q.Options)
		seen[o] = true
		if o == q.Answer {
			count++
		}
	}
	assert.Equal(t, 1, count, "answer %q must appear exactly once in %v", q.Answer, q.Options)
}

func TestContainsTerm(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		term     string
		want     bool
	}{
		{name: "whole word", sentence: "I run every day.", term: "run", want: true},
		{name: "case insensitive", sentence: "Run fast!", term: "run", want: true},
		{name: "part of a longer word", sentence: "I am running.", term: "run", want: false},
		{name: "suffix of a longer word", sentence: "The outrun was quick.", term: "run", want: false},
		{name: "phrase", sentence: "Don't give up now.", term: "give up", want: true},
		{name: "non latin", sentence: "Я люблю читать книги.", term: "читать", want: true},
		{name: "empty sentence", sentence: "", term: "run", want: false},
		{name: "empty term", sentence: "I run.", term: "  ", want: false},
		{name: "regexp characters are literal", sentence: "Use C++ daily.", term: "c++", want: true},
		{name: "term at the end", sentence: "Let's go for a run", term: "run", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsTerm(tt.sentence, tt.term))
		})
	}
}

func TestMaskAndMarkTerm(t *testing.T) {
	sentence := "Run, run! He runs."

	assert.Equal(t, "_____, _____! He runs.", maskTerm(sentence, "run"))
	assert.Equal(t, "**Run**, **run**! He runs.", markTerm(sentence, "run"))
	assert.Equal(t, "No match here.", markTerm("No match here.", "run"))
}

func TestGenerator_GapFill(t *testing.T) {
	corpus := testCorpus()

	t.Run("available when the example contains the term", func(t *testing.T) {
		g := newTestGenerator(identity)

		text, ok := g.GapFillText(corpus[0], corpus)
		require.True(t, ok)
		assert.Equal(t, TypeGapFillText, text.Type)
		assert.Equal(t, "run", text.Answer)
		assert.Equal(t, "I _____ every morning.", text.ClozeText)
		assertValidOptions(t, text)

		audio, ok := g.GapFillAudio(corpus[0], corpus)
		require.True(t, ok)
		assert.Equal(t, TypeGapFillAudio, audio.Type)
		assert.Equal(t, "I _____ every morning.", audio.ClozeText)
		assertValidOptions(t, audio)
	})

	t.Run("unavailable without the term in the example", func(t *testing.T) {
		g := newTestGenerator(identity)

		_, ok := g.GapFillText(corpus[3], corpus)
		assert.False(t, ok)
		_, ok = g.GapFillAudio(corpus[3], corpus)
		assert.False(t, ok)
	})
}

func TestGenerator_Distractors(t *testing.T) {
	t.Run("prefers items with the same topic", func(t *testing.T) {
		corpus := testCorpus()
		g := newTestGenerator(identity)

		q := g.SimpleMeaning(corpus[2], corpus)

		assert.Equal(t, []string{
			"to cook with dry heat",
			"to heat a liquid until it bubbles",
			"to cook in hot oil",
			"to move fast on foot",
		}, q.Options)
	})

	t.Run("pads with placeholders when the corpus is too small", func(t *testing.T) {
		item := newItem("1", "run", "to move fast on foot", "I run.", "")
		g := newTestGenerator(identity)

		q, ok := g.GapFillText(item, []vocabulary.Item{item})
		require.True(t, ok)

		assert.Equal(t, []string{"run", "word1", "word2", "word3"}, q.Options)
	})

	t.Run("skips duplicates and values equal to the answer", func(t *testing.T) {
		item := newItem("1", "run", "to move fast", "", "")
		corpus := []vocabulary.Item{
			item,
			newItem("2", "sprint", "To move fast!", "", ""),
			newItem("3", "dash", "to rush", "", ""),
			newItem("4", "rush", "to rush", "", ""),
			newItem("5", "blank", "  ", "", ""),
		}
		g := newTestGenerator(identity)

		q := g.SimpleMeaning(item, corpus)

		assert.Equal(t, []string{"to move fast", "to rush", "word1", "word2"}, q.Options)
	})

	t.Run("placeholder equal to the answer is skipped", func(t *testing.T) {
		item := newItem("1", "word1", "a test word", "", "")
		g := newTestGenerator(identity)

		q := g.Translation(item, nil)
		assert.Nil(t, q.Options)

		options := g.buildOptions(item, []vocabulary.Item{item}, item.Term, termOf)
		assert.Equal(t, []string{"word1", "word2", "word3", "word4"}, options)
	})

	t.Run("answer position depends on the random source", func(t *testing.T) {
		item := newItem("1", "run", "to move fast on foot", "I run.", "")
		g := newTestGenerator(fixedSource(0))

		q, ok := g.GapFillText(item, []vocabulary.Item{item})
		require.True(t, ok)

		assert.Equal(t, []string{"word1", "word2", "word3", "run"}, q.Options)
	})

	t.Run("options are always valid for random sources and corpus sizes", func(t *testing.T) {
		corpus := testCorpus()
		for seed := int64(1); seed <= 30; seed++ {
			g := newTestGenerator(rand.New(rand.NewSource(seed)))
			for size := 0; size <= len(corpus); size++ {
				for _, item := range corpus {
					for _, qt := range []Type{TypeGapFillText, TypeGapFillAudio, TypeContextMeaning, TypeSimpleMeaning} {
						q, ok := g.Build(qt, item, corpus[:size])
						if !ok {
							continue
						}
						assertValidOptions(t, q)
					}
				}
			}
		}
	})
}

func TestGenerator_OtherTypes(t *testing.T) {
	corpus := testCorpus()
	g := newTestGenerator(identity)
	item := corpus[0]

	context := g.ContextMeaning(item, corpus)
	assert.Equal(t, TypeContextMeaning, context.Type)
	assert.Equal(t, "I **run** every morning.", context.ClozeText)
	assert.Equal(t, "to move fast on foot", context.Answer)
	assertValidOptions(t, context)

	simple := g.SimpleMeaning(item, corpus)
	assert.Equal(t, "run", simple.Prompt)
	assert.Equal(t, "to move fast on foot", simple.Answer)
	assertValidOptions(t, simple)

	dictation := g.Dictation(item, corpus)
	assert.Equal(t, TypeDictation, dictation.Type)
	assert.Equal(t, "run", dictation.Answer)
	assert.Nil(t, dictation.Options)

	translation := g.Translation(item, corpus)
	assert.Equal(t, "to move fast on foot", translation.Prompt)
	assert.Equal(t, "run", translation.Answer)
	assert.Nil(t, translation.Options)
	assert.Empty(t, translation.ClozeText)

	withoutExample := g.ContextMeaning(corpus[3], corpus)
	assert.Empty(t, withoutExample.ClozeText)
}

func TestAvailableTypes(t *testing.T) {
	corpus := testCorpus()

	assert.Equal(t, AllTypes, AvailableTypes(corpus[0]))
	assert.Equal(t, []Type{
		TypeContextMeaning,
		TypeSimpleMeaning,
		TypeDictation,
		TypeTranslation,
	}, AvailableTypes(corpus[3]))
}

func TestGenerator_GenerateQuestion(t *testing.T) {
	corpus := testCorpus()

	t.Run("honors an available preferred type", func(t *testing.T) {
		g := newTestGenerator(identity)
		for _, qt := range AllTypes {
			q := g.GenerateQuestion(corpus[0], corpus, qt)
			assert.Equal(t, qt, q.Type)
		}
	})

	t.Run("falls back to a random available type", func(t *testing.T) {
		g := newTestGenerator(identity)

		q := g.GenerateQuestion(corpus[3], corpus, TypeGapFillText)

		assert.Equal(t, TypeTranslation, q.Type)
	})

	t.Run("no preference picks among available types", func(t *testing.T) {
		g := newTestGenerator(fixedSource(0))

		q := g.GenerateQuestion(corpus[0], corpus, "")

		assert.Equal(t, TypeGapFillText, q.Type)
	})

	t.Run("never gap-fill when the example lacks the term", func(t *testing.T) {
		item := newItem("x", "run", "to move fast", "I am running late.", "")
		for seed := int64(1); seed <= 50; seed++ {
			g := newTestGenerator(rand.New(rand.NewSource(seed)))
			for _, preferred := range append([]Type{""}, AllTypes...) {
				q := g.GenerateQuestion(item, corpus, preferred)
				assert.False(t, q.Type.RequiresExample(), "seed %d preferred %s", seed, preferred)
			}
		}
	})

	t.Run("question keeps a snapshot of the item", func(t *testing.T) {
		g := newTestGenerator(identity)
		item := corpus[0]

		q := g.GenerateQuestion(item, corpus, TypeTranslation)
		item.Level = 5
		item.Meaning = "changed"

		assert.Equal(t, 1, q.Item.Level)
		assert.Equal(t, "to move fast on foot", q.Item.Meaning)
	})
}

func TestGenerator_GenerateSessionQuestions(t *testing.T) {
	corpus := testCorpus()

	t.Run("one question per item in order with fallbacks", func(t *testing.T) {
		g := newTestGenerator(identity)
		items := []vocabulary.Item{
			corpus[3], // no example: gap fill text -> simple meaning
			corpus[3], // no example: gap fill audio -> dictation
			corpus[0],
			corpus[1],
			corpus[2],
			corpus[4],
			corpus[5], // wraps around to gap fill text
		}

		questions := g.GenerateSessionQuestions(items, corpus)

		require.Len(t, questions, len(items))
		wantTypes := []Type{
			TypeSimpleMeaning,
			TypeDictation,
			TypeContextMeaning,
			TypeSimpleMeaning,
			TypeDictation,
			TypeTranslation,
			TypeGapFillText,
		}
		for i, q := range questions {
			assert.Equal(t, items[i].ID, q.Item.ID)
			assert.Equal(t, wantTypes[i], q.Type, "question %d", i)
		}
	})

	t.Run("distinct ids and valid questions", func(t *testing.T) {
		g := NewGenerator(rand.New(rand.NewSource(7)))
		items := append(testCorpus(), testCorpus()...)

		questions := g.GenerateSessionQuestions(items, corpus)

		require.Len(t, questions, len(items))
		seen := map[string]bool{}
		for i, q := range questions {
			assert.False(t, seen[q.ID])
			seen[q.ID] = true
			assert.Equal(t, items[i].ID, q.Item.ID)
			if q.Type.HasOptions() {
				assertValidOptions(t, q)
			}
			if q.Type.RequiresExample() {
				assert.True(t, containsTerm(items[i].Example, items[i].Term))
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		g := newTestGenerator(identity)
		assert.Empty(t, g.GenerateSessionQuestions(nil, corpus))
	})
}
