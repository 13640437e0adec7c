package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// Open returns the Store behind destination: a PostgreSQL store for
// postgres:// and postgresql:// URLs, a SQLite file store otherwise.
func Open(ctx context.Context, destination string) (msgetl.Store, error) {
	if destination == "" {
		return nil, fmt.Errorf("destination is required: %w", msgetl.ErrInvalidConfig)
	}
	if IsPostgresURL(destination) {
		return OpenPostgres(ctx, destination)
	}
	return OpenSQLite(ctx, destination)
}

// IsPostgresURL reports whether destination names a PostgreSQL database.
func IsPostgresURL(destination string) bool {
	lower := strings.ToLower(destination)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// validateWrite checks the arguments shared by both WriteTable implementations.
func validateWrite(name string, table *msgetl.Table) error {
	if name == "" {
		return fmt.Errorf("table name is required: %w", msgetl.ErrInvalidConfig)
	}
	if table == nil || len(table.Columns) == 0 {
		return fmt.Errorf("table %q has no columns: %w", name, msgetl.ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(table.Columns))
	for _, c := range table.Columns {
		key := strings.ToLower(c.Name)
		if seen[key] {
			return fmt.Errorf("table %q has duplicate column %q: %w", name, c.Name, msgetl.ErrInvalidConfig)
		}
		seen[key] = true
	}
	return nil
}

// stagingName returns a fresh table name derived from name.
func stagingName(name string) string {
	return fmt.Sprintf("%s_staging_%s", name, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// sqlType maps a column kind to the declared SQL type; realType differs
// between backends.
func sqlType(kind msgetl.Kind, realType string) string {
	switch kind {
	case msgetl.KindInteger:
		return "BIGINT"
	case msgetl.KindReal:
		return realType
	default:
		return "TEXT"
	}
}

// kindFromDeclared maps a declared column type back to a kind.
func kindFromDeclared(declared string) msgetl.Kind {
	t := strings.ToUpper(declared)
	switch {
	case strings.Contains(t, "INT"):
		return msgetl.KindInteger
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"),
		strings.Contains(t, "NUMERIC"), strings.Contains(t, "DECIMAL"):
		return msgetl.KindReal
	default:
		return msgetl.KindText
	}
}

// normalizeCell converts driver values to the cell types a Table holds.
func normalizeCell(v any, kind msgetl.Kind) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case float32:
		return float64(x)
	case int64:
		if kind == msgetl.KindReal {
			return float64(x)
		}
		return x
	default:
		return v
	}
}
