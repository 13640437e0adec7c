package cleaner

import (
	"fmt"

	"github.com/vvka-141/msgetl/internal/frame"
	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// Cleaner implements msgetl.Cleaner.
// Stateless and safe for concurrent use.
type Cleaner struct {
	opts   msgetl.CleanOptions
	key    string
	logger msgetl.Logger
}

// New creates a Cleaner. key names the join column and is only used to
// identify offending rows in error messages.
func New(opts msgetl.CleanOptions, key string, logger msgetl.Logger) *Cleaner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Cleaner{opts: opts, key: key, logger: logger}
}

// Clean expands, filters and deduplicates the joined table.
func (c *Cleaner) Clean(table *msgetl.Table) (*msgetl.Table, error) {
	if err := c.opts.Validate(); err != nil {
		return nil, err
	}

	expanded, err := c.Expand(table)
	if err != nil {
		return nil, err
	}

	result, err := frame.DropColumns(expanded, c.opts.DropColumns...)
	if err != nil {
		return nil, err
	}
	if len(c.opts.DropColumns) > 0 {
		c.logger.Verbose("Dropped columns %v", c.opts.DropColumns)
	}

	before := result.NumRows()
	result, err = frame.ExcludeValue(result, c.opts.FilterColumn, c.opts.InvalidValue)
	if err != nil {
		return nil, err
	}
	c.logger.Verbose("Removed %d row(s) with %s=%d", before-result.NumRows(), c.opts.FilterColumn, c.opts.InvalidValue)

	before = result.NumRows()
	result = frame.DropDuplicates(result)
	c.logger.Verbose("Removed %d duplicate row(s)", before-result.NumRows())

	return result, nil
}

// Expand replaces the packed categories column with one integer column per
// category. Names come from the first row; every row must hold the same
// number of entries.
func (c *Cleaner) Expand(table *msgetl.Table) (*msgetl.Table, error) {
	catIdx := table.ColumnIndex(c.opts.CategoriesColumn)
	if catIdx < 0 {
		return nil, fmt.Errorf("joined table has no %q column: %w", c.opts.CategoriesColumn, msgetl.ErrMissingColumn)
	}
	if table.NumRows() == 0 {
		return nil, fmt.Errorf("cannot derive category names: %w", msgetl.ErrEmptyTable)
	}

	first, ok := table.Rows[0][catIdx].(string)
	if !ok {
		return nil, c.rowError(table, 0, fmt.Errorf("packed value is %v, not text: %w", table.Rows[0][catIdx], msgetl.ErrMalformedCategories))
	}
	names, err := categoryNames(first, c.opts.Delimiter, c.opts.SuffixLength)
	if err != nil {
		return nil, c.rowError(table, 0, err)
	}
	c.logger.Verbose("Expanding %d categories: %v", len(names), names)

	columns := make([]msgetl.Column, 0, len(table.Columns)-1+len(names))
	columns = append(columns, table.Columns[:catIdx]...)
	columns = append(columns, table.Columns[catIdx+1:]...)
	for _, name := range names {
		columns = append(columns, msgetl.Column{Name: name, Kind: msgetl.KindInteger})
	}

	rows := make([][]any, len(table.Rows))
	for r, src := range table.Rows {
		packed, ok := src[catIdx].(string)
		if !ok {
			return nil, c.rowError(table, r, fmt.Errorf("packed value is %v, not text: %w", src[catIdx], msgetl.ErrMalformedCategories))
		}
		flags, err := parseFlags(packed, c.opts.Delimiter, len(names))
		if err != nil {
			return nil, c.rowError(table, r, err)
		}

		row := make([]any, 0, len(columns))
		row = append(row, src[:catIdx]...)
		row = append(row, src[catIdx+1:]...)
		for _, v := range flags {
			row = append(row, v)
		}
		rows[r] = row
	}

	return &msgetl.Table{Columns: columns, Rows: rows}, nil
}

// rowError prefixes err with the row position and, when present, its key.
func (c *Cleaner) rowError(table *msgetl.Table, r int, err error) error {
	if k := table.ColumnIndex(c.key); k >= 0 {
		return fmt.Errorf("row %d (%s=%v): %w", r, c.key, table.Rows[r][k], err)
	}
	return fmt.Errorf("row %d: %w", r, err)
}

// Verify Cleaner implements the msgetl.Cleaner interface at compile time
var _ msgetl.Cleaner = (*Cleaner)(nil)
