package msgetl

import "fmt"

// Kind is the value type of a table column.
type Kind int

const (
	// KindText columns hold string cells.
	KindText Kind = iota
	// KindInteger columns hold int64 cells.
	KindInteger
	// KindReal columns hold float64 cells.
	KindReal
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column describes one column of a Table.
type Column struct {
	Name string
	Kind Kind
}

// Table is an in-memory, row-major table.
//
// Every row has exactly len(Columns) cells. A cell is nil (missing value)
// or a string, int64 or float64 matching its column's Kind.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Column returns every cell of the named column in row order.
func (t *Table) Column(name string) ([]any, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
	}
	values := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}
