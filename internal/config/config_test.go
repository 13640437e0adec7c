package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, `table: disaster_messages
key: message_id
csv_delimiter: ";"

categories:
  column: labels
  delimiter: "|"
  suffix_length: 3

drop_columns:
  - child_alone
  - offer

filter:
  column: request
  invalid_value: 9
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "disaster_messages", cfg.Table)
	assert.Equal(t, "message_id", cfg.Key)
	assert.Equal(t, ";", cfg.CSVDelimiter)
	assert.Equal(t, "labels", cfg.Categories.Column)
	assert.Equal(t, "|", cfg.Categories.Delimiter)
	assert.Equal(t, 3, cfg.Categories.SuffixLength)
	require.NotNil(t, cfg.DropColumns)
	assert.Equal(t, []string{"child_alone", "offer"}, *cfg.DropColumns)
	assert.Equal(t, "request", cfg.Filter.Column)
	require.NotNil(t, cfg.Filter.InvalidValue)
	assert.Equal(t, int64(9), *cfg.Filter.InvalidValue)

	run := msgetl.DefaultRunConfig("m.csv", "c.csv", "out.db")
	require.NoError(t, cfg.Apply(&run))
	assert.Equal(t, "disaster_messages", run.TableName)
	assert.Equal(t, "message_id", run.KeyColumn)
	assert.Equal(t, ';', run.CSVDelimiter)
	assert.Equal(t, msgetl.CleanOptions{
		CategoriesColumn: "labels",
		Delimiter:        "|",
		SuffixLength:     3,
		DropColumns:      []string{"child_alone", "offer"},
		FilterColumn:     "request",
		InvalidValue:     9,
	}, run.Clean)
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "table: messages\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	run := msgetl.DefaultRunConfig("m.csv", "c.csv", "out.db")
	require.NoError(t, cfg.Apply(&run))

	expected := msgetl.DefaultRunConfig("m.csv", "c.csv", "out.db")
	expected.TableName = "messages"
	assert.Equal(t, expected, run)
}

func TestLoad_EmptyDropColumnsDisablesDrop(t *testing.T) {
	path := writeConfig(t, "drop_columns: []\nfilter:\n  invalid_value: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	run := msgetl.DefaultRunConfig("m.csv", "c.csv", "out.db")
	require.NoError(t, cfg.Apply(&run))
	assert.Empty(t, run.Clean.DropColumns)
	assert.Equal(t, int64(0), run.Clean.InvalidValue)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestApply_InvalidDelimiter(t *testing.T) {
	cfg := &ProjectConfig{CSVDelimiter: ",,"}
	run := msgetl.DefaultRunConfig("m.csv", "c.csv", "out.db")

	err := cfg.Apply(&run)
	assert.True(t, errors.Is(err, msgetl.ErrInvalidConfig))
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{`\t`, '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{"ab", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
