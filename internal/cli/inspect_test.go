package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

func TestInspect_ShowsColumnsAndRowCount(t *testing.T) {
	dir, messages, categories := writeInputs(t, messagesCSV, categoriesCSV)
	dbPath := filepath.Join(dir, "DisasterResponse.db")
	_, _, err := execute(t, messages, categories, dbPath)
	require.NoError(t, err)

	stdout, _, err := execute(t, "inspect", dbPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Table df in "+dbPath)
	assert.Contains(t, stdout, "COLUMN")
	assert.Regexp(t, `message\s+│ text`, stdout)
	assert.Regexp(t, `related\s+│ integer`, stdout)
	assert.NotContains(t, stdout, "child_alone")
	assert.Contains(t, stdout, "2 rows\n")
}

func TestInspect_MissingDatabase(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.db")

	_, _, err := execute(t, "inspect", missing)
	require.Error(t, err)
	assert.Equal(t, msgetl.ExitStoreError, msgetl.ExitCodeForError(err))
	assert.NoFileExists(t, missing)
}

func TestInspect_UnknownTable(t *testing.T) {
	dir, messages, categories := writeInputs(t, messagesCSV, categoriesCSV)
	dbPath := filepath.Join(dir, "out.db")
	_, _, err := execute(t, messages, categories, dbPath)
	require.NoError(t, err)

	_, _, err = execute(t, "inspect", dbPath, "--table", "other")
	assert.Error(t, err)
}

func TestInspect_ArgsValidation(t *testing.T) {
	err := inspectCmd.Args(inspectCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, msgetl.ExitUsageError, msgetl.ExitCodeForError(err))

	err = inspectCmd.Args(inspectCmd, []string{"a.db", "b.db"})
	require.Error(t, err)
	assert.Equal(t, msgetl.ExitUsageError, msgetl.ExitCodeForError(err))
}
