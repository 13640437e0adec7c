package frame

import (
	"strconv"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// FromRecords builds a typed table from a header and string records.
//
// Empty fields become nil. A column whose non-empty fields all parse as
// base-10 integers is KindInteger; otherwise, if all parse as floats, it is
// KindReal; anything else is KindText.
func FromRecords(header []string, records [][]string) *msgetl.Table {
	columns := make([]msgetl.Column, len(header))
	for i, name := range header {
		columns[i] = msgetl.Column{Name: name, Kind: inferKind(records, i)}
	}

	rows := make([][]any, len(records))
	for r, record := range records {
		row := make([]any, len(header))
		for c := range header {
			row[c] = convert(record[c], columns[c].Kind)
		}
		rows[r] = row
	}

	return &msgetl.Table{Columns: columns, Rows: rows}
}

func inferKind(records [][]string, col int) msgetl.Kind {
	seen := false
	isInt, isReal := true, true
	for _, record := range records {
		s := record[col]
		if s == "" {
			continue
		}
		seen = true
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if !isInt {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isReal = false
				break
			}
		}
	}

	switch {
	case !seen:
		return msgetl.KindText
	case isInt:
		return msgetl.KindInteger
	case isReal:
		return msgetl.KindReal
	default:
		return msgetl.KindText
	}
}

// convert parses s according to a kind that inferKind already validated.
func convert(s string, kind msgetl.Kind) any {
	if s == "" {
		return nil
	}
	switch kind {
	case msgetl.KindInteger:
		v, _ := strconv.ParseInt(s, 10, 64)
		return v
	case msgetl.KindReal:
		v, _ := strconv.ParseFloat(s, 64)
		return v
	default:
		return s
	}
}
