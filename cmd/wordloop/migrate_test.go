package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordloop/internal/config"
	"github.com/at-ishikawa/wordloop/internal/testutil"
)

func TestMigrateCommands_SQLite(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, config.DriverSQLite))
	setNow(t, testNow)
	testutil.WriteWords(t, tmpDir,
		testutil.NewWord("w1", "eager", "wanting very much", testNow),
		testutil.NewWord("w2", "brisk", "quick", testNow),
	)

	out, err := execute(t, newMigrateSchemaCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema applied")

	out, err = execute(t, newMigrateImportDBCommand(), "", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "new: 2, updated: 0, skipped: 0")
	assert.Contains(t, out, "dry run")

	out, err = execute(t, newMigrateImportDBCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "new: 2, updated: 0, skipped: 0")

	out, err = execute(t, newMigrateImportDBCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "new: 0, updated: 0, skipped: 2")

	out, err = execute(t, newWordsListCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "eager")
	assert.Contains(t, out, "brisk")

	out, err = execute(t, newMigrateExportYAMLCommand(), "", "--update-existing")
	require.NoError(t, err)
	assert.Contains(t, out, "new: 0, updated: 2, skipped: 0")
}

func TestMigrateCommands_YAMLDriver(t *testing.T) {
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir(), config.DriverYAML))

	out, err := execute(t, newMigrateSchemaCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to migrate")

	_, err = execute(t, newMigrateImportDBCommand(), "")
	assert.ErrorContains(t, err, "storage.driver must be mysql or sqlite")
}
