package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/msgetl/internal/files/filesystem"
	"github.com/vvka-141/msgetl/internal/frame"
	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// Loader reads message and category CSV files and returns their inner join.
// Stateless and safe for concurrent use.
type Loader struct {
	fs        filesystem.FileSystemProvider
	key       string
	delimiter rune
}

// NewLoader creates a loader that joins on key and splits fields on delimiter.
func NewLoader(fs filesystem.FileSystemProvider, key string, delimiter rune) *Loader {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &Loader{fs: fs, key: key, delimiter: delimiter}
}

// Load reads both files and joins them on the key column.
func (l *Loader) Load(ctx context.Context, messagesPath, categoriesPath string) (*msgetl.Table, error) {
	for _, path := range []string{messagesPath, categoriesPath} {
		if err := l.checkFile(path); err != nil {
			return nil, err
		}
	}

	messages, err := l.ReadTable(ctx, messagesPath)
	if err != nil {
		return nil, err
	}
	if messages.ColumnIndex(l.key) < 0 {
		return nil, fmt.Errorf("messages file %s has no %q column: %w", messagesPath, l.key, msgetl.ErrMissingColumn)
	}

	categories, err := l.ReadTable(ctx, categoriesPath)
	if err != nil {
		return nil, err
	}
	if categories.ColumnIndex(l.key) < 0 {
		return nil, fmt.Errorf("categories file %s has no %q column: %w", categoriesPath, l.key, msgetl.ErrMissingColumn)
	}

	return frame.InnerJoin(messages, categories, l.key)
}

// checkFile fails fast when an input is missing or not a regular file.
func (l *Loader) checkFile(path string) error {
	info, err := l.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w: %w", path, msgetl.ErrInputUnreadable, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a CSV file: %w", path, msgetl.ErrInputUnreadable)
	}
	return nil
}

// ReadTable reads one CSV file with a header row into a typed table.
func (l *Loader) ReadTable(ctx context.Context, path string) (*msgetl.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w: %w", path, msgetl.ErrInputUnreadable, err)
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.Comma = l.delimiter

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s is empty, a header row is required: %w", path, msgetl.ErrInputUnreadable)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w: %w", path, msgetl.ErrInputUnreadable, err)
	}
	header = stripBOM(header)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w: %w", path, msgetl.ErrInputUnreadable, err)
	}

	return frame.FromRecords(header, records), nil
}

// stripBOM removes a UTF-8 byte order mark from the first header field.
func stripBOM(header []string) []string {
	const bom = "\ufeff"
	if len(header) > 0 && len(header[0]) >= len(bom) && header[0][:len(bom)] == bom {
		header[0] = header[0][len(bom):]
	}
	return header
}

// Verify Loader implements the msgetl.Loader interface at compile time
var _ msgetl.Loader = (*Loader)(nil)
