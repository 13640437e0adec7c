package cleaner

import (
	"fmt"
	"strings"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// categoryNames derives column names from the first packed value by
// stripping suffixLen trailing characters from every entry.
func categoryNames(packed, delimiter string, suffixLen int) ([]string, error) {
	entries := strings.Split(packed, delimiter)
	names := make([]string, len(entries))
	for i, entry := range entries {
		if len(entry) <= suffixLen {
			return nil, fmt.Errorf("entry %d %q is too short to hold a name and a %d-character value suffix: %w",
				i, entry, suffixLen, msgetl.ErrMalformedCategories)
		}
		names[i] = entry[:len(entry)-suffixLen]
	}
	return names, nil
}

// parseFlags splits one packed value into want integers, each parsed from
// the last character of its entry.
func parseFlags(packed, delimiter string, want int) ([]int64, error) {
	entries := strings.Split(packed, delimiter)
	if len(entries) != want {
		return nil, fmt.Errorf("found %d entries, expected %d: %w", len(entries), want, msgetl.ErrMalformedCategories)
	}

	values := make([]int64, want)
	for i, entry := range entries {
		if entry == "" {
			return nil, fmt.Errorf("entry %d is empty: %w", i, msgetl.ErrMalformedCategories)
		}
		last := entry[len(entry)-1]
		if last < '0' || last > '9' {
			return nil, fmt.Errorf("entry %d %q does not end in a digit: %w", i, entry, msgetl.ErrMalformedCategories)
		}
		values[i] = int64(last - '0')
	}
	return values, nil
}
