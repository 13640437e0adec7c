package frame

import (
	"fmt"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// DropColumns removes the named columns. Every name must exist.
func DropColumns(t *msgetl.Table, names ...string) (*msgetl.Table, error) {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("cannot drop column %q: %w", name, msgetl.ErrMissingColumn)
		}
		drop[idx] = true
	}
	if len(drop) == 0 {
		return &msgetl.Table{Columns: t.Columns, Rows: t.Rows}, nil
	}

	columns := make([]msgetl.Column, 0, len(t.Columns)-len(drop))
	for i, c := range t.Columns {
		if !drop[i] {
			columns = append(columns, c)
		}
	}

	rows := make([][]any, len(t.Rows))
	for r, row := range t.Rows {
		kept := make([]any, 0, len(columns))
		for i, v := range row {
			if !drop[i] {
				kept = append(kept, v)
			}
		}
		rows[r] = kept
	}

	return &msgetl.Table{Columns: columns, Rows: rows}, nil
}

// FilterRows keeps the rows for which keep returns true.
func FilterRows(t *msgetl.Table, keep func(row []any) bool) *msgetl.Table {
	rows := make([][]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return &msgetl.Table{Columns: t.Columns, Rows: rows}
}

// ExcludeValue drops every row whose named column equals value.
// Missing cells never equal value.
func ExcludeValue(t *msgetl.Table, column string, value int64) (*msgetl.Table, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("cannot filter on column %q: %w", column, msgetl.ErrMissingColumn)
	}
	target := cellKey(value)
	return FilterRows(t, func(row []any) bool {
		return row[idx] == nil || cellKey(row[idx]) != target
	}), nil
}

// DropDuplicates removes rows equal in every column to an earlier row.
// Missing cells compare equal to each other.
func DropDuplicates(t *msgetl.Table) *msgetl.Table {
	seen := make(map[string]struct{}, len(t.Rows))
	return FilterRows(t, func(row []any) bool {
		k := rowKey(row)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}
