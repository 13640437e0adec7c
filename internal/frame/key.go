package frame

import (
	"strconv"
	"strings"
)

// cellKey renders a cell so that equal values produce equal keys.
// Integral floats render like integers, so 1 and 1.0 match as join keys.
func cellKey(v any) string {
	switch x := v.(type) {
	case nil:
		return "\x00"
	case int64:
		return "n" + strconv.FormatInt(x, 10)
	case float64:
		if x == float64(int64(x)) {
			return "n" + strconv.FormatInt(int64(x), 10)
		}
		return "f" + strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return "s" + x
	default:
		return "?"
	}
}

// rowKey renders a whole row; cells are length-prefixed so that no two
// different rows share a key.
func rowKey(row []any) string {
	var b strings.Builder
	for _, v := range row {
		k := cellKey(v)
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}
