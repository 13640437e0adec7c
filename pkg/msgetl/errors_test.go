package msgetl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, msgetl.ExitSuccess},
		{"general error", errors.New("something went wrong"), msgetl.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), msgetl.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), msgetl.ExitUsageError},
		{"invalid flag value", errors.New(`invalid argument "abc" for "--invalid-value" flag`), msgetl.ExitUsageError},
		{"missing positional argument", errors.New("missing required argument: <database>"), msgetl.ExitUsageError},
		{"too many positional arguments", errors.New("accepts 1 arg(s), received 2"), msgetl.ExitUsageError},
		{"invalid config", msgetl.ErrInvalidConfig, msgetl.ExitConfigError},
		{"input unreadable", fmt.Errorf("open messages.csv: %w", msgetl.ErrInputUnreadable), msgetl.ExitInputError},
		{"missing column", fmt.Errorf("messages: %w", msgetl.ErrMissingColumn), msgetl.ExitDataError},
		{"malformed categories", fmt.Errorf("row 3: %w", msgetl.ErrMalformedCategories), msgetl.ExitDataError},
		{"empty table", msgetl.ErrEmptyTable, msgetl.ExitDataError},
		{"store unavailable", fmt.Errorf("open out.db: %w", msgetl.ErrStoreUnavailable), msgetl.ExitStoreError},
		{"write failed", fmt.Errorf("insert: %w", msgetl.ErrWriteFailed), msgetl.ExitStoreError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := msgetl.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_JoinedErrors(t *testing.T) {
	err := errors.Join(
		fmt.Errorf("table name is required: %w", msgetl.ErrInvalidConfig),
		fmt.Errorf("key column is required: %w", msgetl.ErrInvalidConfig),
	)
	if got := msgetl.ExitCodeForError(err); got != msgetl.ExitConfigError {
		t.Errorf("ExitCodeForError(joined) = %d, want %d", got, msgetl.ExitConfigError)
	}
}
