package msgetl

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := pipeline.Run(ctx, cfg)
//	if errors.Is(err, msgetl.ErrMalformedCategories) {
//	    // The categories file does not follow the name-value layout
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputUnreadable indicates an input file is missing, unreadable or not valid CSV.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrMissingColumn indicates a required column is absent from a table.
	ErrMissingColumn = errors.New("missing column")

	// ErrMalformedCategories indicates a packed categories value cannot be expanded.
	ErrMalformedCategories = errors.New("malformed categories")

	// ErrEmptyTable indicates there are no rows to derive category names from.
	ErrEmptyTable = errors.New("empty table")

	// ErrStoreUnavailable indicates the output store cannot be opened.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrWriteFailed indicates the table could not be written to the store.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInputUnreadable):
		return ExitInputError
	case errors.Is(err, ErrMissingColumn),
		errors.Is(err, ErrMalformedCategories),
		errors.Is(err, ErrEmptyTable):
		return ExitDataError
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrWriteFailed):
		return ExitStoreError
	}

	// Flag parsing errors come from cobra/pflag as plain strings
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "flag needs an argument") ||
		strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "accepts 1 arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
