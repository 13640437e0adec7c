package frame

import (
	"fmt"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// InnerJoin joins left and right on the key column.
//
// The result holds the left columns followed by the right columns without
// the key. Non-key names present on both sides get the "_x" (left) and "_y"
// (right) suffixes. Rows follow left order; a left row matching several
// right rows is repeated once per match, in right order. Rows with a missing
// or unmatched key are dropped.
func InnerJoin(left, right *msgetl.Table, key string) (*msgetl.Table, error) {
	lk := left.ColumnIndex(key)
	if lk < 0 {
		return nil, fmt.Errorf("left table has no %q column: %w", key, msgetl.ErrMissingColumn)
	}
	rk := right.ColumnIndex(key)
	if rk < 0 {
		return nil, fmt.Errorf("right table has no %q column: %w", key, msgetl.ErrMissingColumn)
	}

	columns := joinColumns(left, right, lk, rk)

	index := make(map[string][]int, len(right.Rows))
	for i, row := range right.Rows {
		if row[rk] == nil {
			continue
		}
		k := cellKey(row[rk])
		index[k] = append(index[k], i)
	}

	var rows [][]any
	for _, lrow := range left.Rows {
		if lrow[lk] == nil {
			continue
		}
		for _, ri := range index[cellKey(lrow[lk])] {
			rrow := right.Rows[ri]
			row := make([]any, 0, len(columns))
			row = append(row, lrow...)
			row = append(row, rrow[:rk]...)
			row = append(row, rrow[rk+1:]...)
			rows = append(rows, row)
		}
	}

	return &msgetl.Table{Columns: columns, Rows: rows}, nil
}

func joinColumns(left, right *msgetl.Table, lk, rk int) []msgetl.Column {
	leftNames := make(map[string]bool, len(left.Columns))
	for i, c := range left.Columns {
		if i != lk {
			leftNames[c.Name] = true
		}
	}
	rightNames := make(map[string]bool, len(right.Columns))
	for i, c := range right.Columns {
		if i != rk {
			rightNames[c.Name] = true
		}
	}

	columns := make([]msgetl.Column, 0, len(left.Columns)+len(right.Columns)-1)
	for i, c := range left.Columns {
		if i != lk && rightNames[c.Name] {
			c.Name += msgetl.JoinSuffixLeft
		}
		columns = append(columns, c)
	}
	for i, c := range right.Columns {
		if i == rk {
			continue
		}
		if leftNames[c.Name] {
			c.Name += msgetl.JoinSuffixRight
		}
		columns = append(columns, c)
	}
	return columns
}
