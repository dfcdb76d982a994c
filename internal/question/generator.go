package question

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Generator builds questions. Its only source of nondeterminism is the RandomSource.
type Generator struct {
	rng   RandomSource
	newID func() string
}

// NewGenerator creates a generator using rng for option order, distractor sampling and type selection
func NewGenerator(rng RandomSource) *Generator {
	return &Generator{
		rng:   rng,
		newID: uuid.NewString,
	}
}

func (g *Generator) newQuestion(item vocabulary.Item, questionType Type) StudyQuestion {
	return StudyQuestion{
		ID:   g.newID(),
		Item: item.Snapshot(),
		Type: questionType,
	}
}

// GapFillText masks the term in its example sentence and offers terms as options.
// It returns false when the example does not contain the term as a whole word.
func (g *Generator) GapFillText(item vocabulary.Item, corpus []vocabulary.Item) (StudyQuestion, bool) {
	if !containsTerm(item.Example, item.Term) {
		return StudyQuestion{}, false
	}
	q := g.newQuestion(item, TypeGapFillText)
	q.Prompt = "Choose the word that fills the blank."
	q.Answer = item.Term
	q.ClozeText = maskTerm(item.Example, item.Term)
	q.Options = g.buildOptions(item, corpus, item.Term, termOf)
	return q, true
}

// GapFillAudio is GapFillText with options that are played instead of printed
func (g *Generator) GapFillAudio(item vocabulary.Item, corpus []vocabulary.Item) (StudyQuestion, bool) {
	if !containsTerm(item.Example, item.Term) {
		return StudyQuestion{}, false
	}
	q := g.newQuestion(item, TypeGapFillAudio)
	q.Prompt = "Listen to the options and choose the word that fills the blank."
	q.Answer = item.Term
	q.ClozeText = maskTerm(item.Example, item.Term)
	q.Options = g.buildOptions(item, corpus, item.Term, termOf)
	return q, true
}

// ContextMeaning shows the example with the term marked and asks for its meaning
func (g *Generator) ContextMeaning(item vocabulary.Item, corpus []vocabulary.Item) StudyQuestion {
	q := g.newQuestion(item, TypeContextMeaning)
	q.Prompt = fmt.Sprintf("What does %q mean in this sentence?", item.Term)
	q.Answer = item.Meaning
	q.ClozeText = markTerm(item.Example, item.Term)
	q.Options = g.buildOptions(item, corpus, item.Meaning, meaningOf)
	return q
}

// SimpleMeaning shows the bare term and asks for its meaning
func (g *Generator) SimpleMeaning(item vocabulary.Item, corpus []vocabulary.Item) StudyQuestion {
	q := g.newQuestion(item, TypeSimpleMeaning)
	q.Prompt = item.Term
	q.Answer = item.Meaning
	q.Options = g.buildOptions(item, corpus, item.Meaning, meaningOf)
	return q
}

// Dictation asks the learner to type the term after hearing it
func (g *Generator) Dictation(item vocabulary.Item, _ []vocabulary.Item) StudyQuestion {
	q := g.newQuestion(item, TypeDictation)
	q.Prompt = "Type the word you hear."
	q.Answer = item.Term
	return q
}

// Translation shows the primary meaning and asks for the term
func (g *Generator) Translation(item vocabulary.Item, _ []vocabulary.Item) StudyQuestion {
	q := g.newQuestion(item, TypeTranslation)
	q.Prompt = item.Meaning
	q.Answer = item.Term
	return q
}

// Build renders item as questionType, returning false when the type is unavailable for the item
func (g *Generator) Build(questionType Type, item vocabulary.Item, corpus []vocabulary.Item) (StudyQuestion, bool) {
	switch questionType {
	case TypeGapFillText:
		return g.GapFillText(item, corpus)
	case TypeGapFillAudio:
		return g.GapFillAudio(item, corpus)
	case TypeContextMeaning:
		return g.ContextMeaning(item, corpus), true
	case TypeSimpleMeaning:
		return g.SimpleMeaning(item, corpus), true
	case TypeDictation:
		return g.Dictation(item, corpus), true
	case TypeTranslation:
		return g.Translation(item, corpus), true
	}
	return StudyQuestion{}, false
}

// AvailableTypes lists the types item can be asked in, in AllTypes order
func AvailableTypes(item vocabulary.Item) []Type {
	hasExample := containsTerm(item.Example, item.Term)
	types := make([]Type, 0, len(AllTypes))
	for _, t := range AllTypes {
		if t.RequiresExample() && !hasExample {
			continue
		}
		types = append(types, t)
	}
	return types
}

// GenerateQuestion renders item as preferred when that type is available for it,
// otherwise as a uniformly random available type. An empty preferred means no preference.
func (g *Generator) GenerateQuestion(item vocabulary.Item, corpus []vocabulary.Item, preferred Type) StudyQuestion {
	available := AvailableTypes(item)
	questionType := preferred
	if !slices.Contains(available, preferred) {
		questionType = available[intn(g.rng, len(available))]
	}
	q, _ := g.Build(questionType, item, corpus)
	return q
}

// GenerateSessionQuestions renders one question per item, cycling through a shuffled
// order of all types so a session mixes formats. Element i is built from items[i].
func (g *Generator) GenerateSessionQuestions(items []vocabulary.Item, corpus []vocabulary.Item) []StudyQuestion {
	types := slices.Clone(AllTypes)
	shuffle(g.rng, types)

	questions := make([]StudyQuestion, 0, len(items))
	for i, item := range items {
		preferred := types[i%len(types)]
		q, ok := g.Build(preferred, item, corpus)
		if !ok {
			q, _ = g.Build(preferred.Fallback(), item, corpus)
		}
		questions = append(questions, q)
	}
	return questions
}
