package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordloop/internal/answer"
	"github.com/at-ishikawa/wordloop/internal/question"
	"github.com/at-ishikawa/wordloop/internal/session"
	"github.com/at-ishikawa/wordloop/internal/srs"
)

var errEnd = errors.New("end")

const quitCommand = "q"

// StudyCLI runs an active session interactively on a terminal
type StudyCLI struct {
	session      *session.Session
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
	faint        *color.Color
}

func NewStudyCLI(s *session.Session, stdin io.Reader, stdout io.Writer) *StudyCLI {
	return &StudyCLI{
		session:      s,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
		faint:        color.New(color.Faint),
	}
}

// Run asks questions until the session runs out of them, the learner quits or stdin is closed,
// then ends the session and prints its result.
func (cli *StudyCLI) Run() (session.Result, error) {
	for {
		if err := cli.Session(); err != nil {
			if errors.Is(err, errEnd) {
				break
			}
			return session.Result{}, err
		}
	}

	result, err := cli.session.End()
	if err != nil {
		return session.Result{}, fmt.Errorf("session.End() > %w", err)
	}
	cli.printResult(result)
	return result, nil
}

// Session asks the current question and moves to the next one
func (cli *StudyCLI) Session() error {
	q, ok := cli.session.CurrentQuestion()
	if !ok {
		return errEnd
	}

	cli.printQuestion(q)
	input, err := cli.readLine()
	if err != nil {
		return err
	}
	if strings.EqualFold(input, quitCommand) {
		return errEnd
	}

	if input == "" {
		if _, err := cli.session.Skip(); err != nil {
			return fmt.Errorf("session.Skip() > %w", err)
		}
		cli.printOutcome(q, false)
		return cli.next()
	}

	userAnswer := resolveOption(q, input)
	difficulty := srs.DifficultyHard
	correct := answer.Check(userAnswer, q.Answer)
	cli.printOutcome(q, correct)
	if correct {
		if difficulty, err = cli.askDifficulty(); err != nil {
			return err
		}
	}

	if _, err := cli.session.SubmitAnswer(userAnswer, difficulty); err != nil {
		return fmt.Errorf("session.SubmitAnswer() > %w", err)
	}
	return cli.next()
}

func (cli *StudyCLI) next() error {
	_, _ = fmt.Fprintln(cli.stdoutWriter)
	if !cli.session.Advance() {
		return errEnd
	}
	return nil
}

// readLine returns the trimmed line, or errEnd once stdin is exhausted
func (cli *StudyCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if strings.TrimSpace(line) == "" {
			return "", errEnd
		}
		return strings.TrimSpace(line), nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *StudyCLI) askDifficulty() (srs.Difficulty, error) {
	for {
		_, _ = fmt.Fprint(cli.stdoutWriter, "How was it? [e]asy / [g]ood / [h]ard (default: good): ")
		input, err := cli.readLine()
		if errors.Is(err, errEnd) {
			return srs.DifficultyGood, nil
		}
		if err != nil {
			return "", err
		}
		difficulty, err := srs.ParseDifficulty(strings.ToLower(input))
		if err == nil {
			return difficulty, nil
		}
		_, _ = cli.red.Fprintf(cli.stdoutWriter, "Unknown rating %q\n", input)
	}
}

// resolveOption maps an option number to the option text of a multiple choice question
func resolveOption(q question.StudyQuestion, input string) string {
	if len(q.Options) == 0 {
		return input
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(q.Options) {
		return input
	}
	return q.Options[n-1]
}

func (cli *StudyCLI) printQuestion(q question.StudyQuestion) {
	w := cli.stdoutWriter
	_, _ = cli.faint.Fprintf(w, "[%d/%d] %s\n", cli.session.Index()+1, cli.session.Total(), typeLabels[q.Type])
	_, _ = cli.bold.Fprintln(w, q.Prompt)
	if q.ClozeText != "" {
		_, _ = cli.italic.Fprintf(w, "  %s\n", q.ClozeText)
	}
	if q.Type == question.TypeDictation {
		// No audio on a terminal, so the meaning stands in for the spoken word
		_, _ = fmt.Fprintf(w, "  Hint: %s\n", q.Item.Meaning)
	}
	for i, option := range q.Options {
		_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, option)
	}
	_, _ = fmt.Fprint(w, "> ")
}

func (cli *StudyCLI) printOutcome(q question.StudyQuestion, correct bool) {
	w := cli.stdoutWriter
	if correct {
		_, _ = fmt.Fprint(w, "\u2705 ")
		_, _ = cli.green.Fprintf(w, "It's correct. %s: %s\n",
			cli.bold.Sprint(q.Item.Term),
			cli.italic.Sprint(q.Item.Meaning),
		)
		return
	}
	_, _ = fmt.Fprint(w, "\u274C ")
	_, _ = cli.red.Fprintf(w, "It's wrong. The answer is %s\n", cli.bold.Sprintf("%q", q.Answer))
	_, _ = fmt.Fprintf(w, "   %s: %s\n", q.Item.Term, q.Item.Meaning)
}

func (cli *StudyCLI) printResult(result session.Result) {
	w := cli.stdoutWriter
	_, _ = cli.bold.Fprintln(w, "Session complete")
	_, _ = fmt.Fprintf(w, "Answered: %d\n", result.TotalQuestions)
	_, _ = fmt.Fprintf(w, "Correct:  %d\n", result.CorrectAnswers)
	_, _ = fmt.Fprintf(w, "Accuracy: %.1f%%\n", result.Accuracy)
	_, _ = fmt.Fprintf(w, "Time:     %s\n", result.Duration.Round(time.Second))
	if len(result.LeveledUp) > 0 {
		_, _ = cli.green.Fprintln(w, "Leveled up:")
		for _, word := range result.LeveledUp {
			_, _ = fmt.Fprintf(w, "  %s (level %d -> %d)\n", word.Term, word.Level, word.Level+1)
		}
	}
	if len(result.NeedsPractice) > 0 {
		_, _ = cli.red.Fprintln(w, "Needs practice:")
		for _, word := range result.NeedsPractice {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", word.Term, word.Meaning)
		}
	}
}

var typeLabels = map[question.Type]string{
	question.TypeGapFillText:    "Fill the gap",
	question.TypeGapFillAudio:   "Fill the gap (listening)",
	question.TypeContextMeaning: "Meaning in context",
	question.TypeSimpleMeaning:  "Meaning",
	question.TypeDictation:      "Dictation",
	question.TypeTranslation:    "Translation",
}
