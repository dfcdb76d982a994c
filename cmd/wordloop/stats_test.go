package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/config"
	"github.com/at-ishikawa/wordloop/internal/testutil"
)

func TestNewStatsCommand(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, config.DriverYAML))
	setNow(t, testNow)

	reviewed := testNow.Add(-24 * time.Hour)
	mastered := testutil.NewWord("w1", "brisk", "quick", testNow.Add(240*time.Hour), testutil.WithLevel(5), testutil.WithTopic("adjectives"))
	mastered.LastReviewed = &reviewed
	mastered.CorrectCount = 3
	mastered.IncorrectCount = 1
	testutil.WriteWords(t, tmpDir,
		mastered,
		testutil.NewWord("w2", "eager", "wanting very much", testNow.Add(-time.Hour)),
	)

	out, err := execute(t, newStatsCommand(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "Words:     2")
	assert.Contains(t, out, "Due now:   1")
	assert.Contains(t, out, "New:       1")
	assert.Contains(t, out, "Accuracy:  75.0% (3 correct, 1 incorrect)")
	assert.Contains(t, out, "Level 1: 1")
	assert.Contains(t, out, "Level 5: 1")
	assert.Contains(t, out, "adjectives")
	assert.Contains(t, out, "(none)")
}
