package msgetl

import (
	"errors"
	"fmt"
	"strings"
)

// CleanOptions configures the category expansion and row filtering.
// The zero value is not usable; start from DefaultCleanOptions.
type CleanOptions struct {
	// CategoriesColumn is the packed name-value column to expand
	CategoriesColumn string

	// Delimiter separates the name-value pairs of a packed value
	Delimiter string

	// SuffixLength is the number of trailing characters stripped from the
	// first row's entries to derive the category names
	SuffixLength int

	// DropColumns are expanded categories removed from the result
	DropColumns []string

	// FilterColumn is the category checked against InvalidValue
	FilterColumn string

	// InvalidValue removes every row whose FilterColumn equals it
	InvalidValue int64
}

// DefaultCleanOptions returns the options matching the reference dataset.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		CategoriesColumn: DefaultCategoriesColumn,
		Delimiter:        DefaultCategoryDelimiter,
		SuffixLength:     DefaultSuffixLength,
		DropColumns:      DefaultDropColumns(),
		FilterColumn:     DefaultFilterColumn,
		InvalidValue:     DefaultInvalidValue,
	}
}

// Validate checks that every option is usable.
func (o *CleanOptions) Validate() error {
	var errs []error

	if o.CategoriesColumn == "" {
		errs = append(errs, fmt.Errorf("categories column is required: %w", ErrInvalidConfig))
	}
	if o.Delimiter == "" {
		errs = append(errs, fmt.Errorf("category delimiter is required: %w", ErrInvalidConfig))
	}
	if o.SuffixLength < 1 {
		errs = append(errs, fmt.Errorf("suffix length must be at least 1, got %d: %w", o.SuffixLength, ErrInvalidConfig))
	}
	if o.FilterColumn == "" {
		errs = append(errs, fmt.Errorf("filter column is required: %w", ErrInvalidConfig))
	}
	for _, name := range o.DropColumns {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("drop column names cannot be empty: %w", ErrInvalidConfig))
			break
		}
	}

	return errors.Join(errs...)
}

// RunConfig contains everything one pipeline run needs.
type RunConfig struct {
	// MessagesPath is the CSV file with the message records
	MessagesPath string

	// CategoriesPath is the CSV file with the packed category records
	CategoriesPath string

	// Destination is a SQLite file path or a PostgreSQL connection URL
	Destination string

	// TableName is the table the cleaned data replaces
	TableName string

	// KeyColumn is the column both inputs are joined on
	KeyColumn string

	// CSVDelimiter separates fields in both input files
	CSVDelimiter rune

	// Clean configures the cleaning stage
	Clean CleanOptions

	// Verbose enables row counts after each stage
	Verbose bool
}

// DefaultRunConfig returns a RunConfig with every default applied and the
// given file locations.
func DefaultRunConfig(messagesPath, categoriesPath, destination string) RunConfig {
	return RunConfig{
		MessagesPath:   messagesPath,
		CategoriesPath: categoriesPath,
		Destination:    destination,
		TableName:      DefaultTableName,
		KeyColumn:      DefaultKeyColumn,
		CSVDelimiter:   DefaultCSVDelimiter,
		Clean:          DefaultCleanOptions(),
	}
}

// Validate checks if the RunConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *RunConfig) Validate() error {
	var errs []error

	if c.MessagesPath == "" {
		errs = append(errs, fmt.Errorf("messages path is required: %w", ErrInvalidConfig))
	}
	if c.CategoriesPath == "" {
		errs = append(errs, fmt.Errorf("categories path is required: %w", ErrInvalidConfig))
	}
	if c.Destination == "" {
		errs = append(errs, fmt.Errorf("destination is required: %w", ErrInvalidConfig))
	}
	if c.TableName == "" {
		errs = append(errs, fmt.Errorf("table name is required: %w", ErrInvalidConfig))
	}
	if c.KeyColumn == "" {
		errs = append(errs, fmt.Errorf("key column is required: %w", ErrInvalidConfig))
	}
	switch c.CSVDelimiter {
	case 0, '"', '\r', '\n':
		errs = append(errs, fmt.Errorf("invalid CSV delimiter %q: %w", c.CSVDelimiter, ErrInvalidConfig))
	}
	if err := c.Clean.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
