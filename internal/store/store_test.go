package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

func TestIsPostgresURL(t *testing.T) {
	tests := []struct {
		destination string
		want        bool
	}{
		{"postgres://user@localhost/etl", true},
		{"postgresql://user@localhost:5433/etl?sslmode=disable", true},
		{"POSTGRES://localhost/etl", true},
		{"DisasterResponse.db", false},
		{"data/postgres.db", false},
		{"/tmp/postgres://x", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPostgresURL(tt.destination), tt.destination)
	}
}

func TestOpen_SelectsSQLiteForPaths(t *testing.T) {
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "out.db"))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*SQLiteStore)
	assert.True(t, ok, "expected *SQLiteStore, got %T", s)
}

func TestOpen_EmptyDestination(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.True(t, errors.Is(err, msgetl.ErrInvalidConfig))
}

func TestOpen_InvalidPostgresURL(t *testing.T) {
	_, err := Open(context.Background(), "postgres://user@localhost:notaport/etl")
	assert.True(t, errors.Is(err, msgetl.ErrInvalidConfig), "got: %v", err)
}

func TestStagingName(t *testing.T) {
	a, b := stagingName("df"), stagingName("df")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "df_staging_"))
	assert.NotContains(t, a, "-")
}

func TestKindFromDeclared(t *testing.T) {
	tests := map[string]msgetl.Kind{
		"BIGINT":           msgetl.KindInteger,
		"integer":          msgetl.KindInteger,
		"FLOAT":            msgetl.KindReal,
		"REAL":             msgetl.KindReal,
		"DOUBLE PRECISION": msgetl.KindReal,
		"TEXT":             msgetl.KindText,
		"":                 msgetl.KindText,
	}
	for declared, want := range tests {
		assert.Equal(t, want, kindFromDeclared(declared), declared)
	}
}

func TestNormalizeCell(t *testing.T) {
	assert.Nil(t, normalizeCell(nil, msgetl.KindText))
	assert.Equal(t, "abc", normalizeCell([]byte("abc"), msgetl.KindText))
	assert.Equal(t, int64(7), normalizeCell(int32(7), msgetl.KindInteger))
	assert.Equal(t, 3.0, normalizeCell(int64(3), msgetl.KindReal))
	assert.Equal(t, float64(float32(0.5)), normalizeCell(float32(0.5), msgetl.KindReal))
}
