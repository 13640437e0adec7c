package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// SQLiteStore writes tables into a single SQLite database file.
// Not safe for concurrent WriteTable calls on the same instance.
type SQLiteStore struct {
	db   *sqlx.DB
	path string
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("cannot open database %s: %w: %w", path, msgetl.ErrStoreUnavailable, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("cannot open database %s: %s is not a directory: %w", path, dir, msgetl.ErrStoreUnavailable)
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %s: %w: %w", path, msgetl.ErrStoreUnavailable, err)
	}
	// One connection keeps every statement on the same file handle
	db.SetMaxOpenConns(1)

	return &SQLiteStore{db: db, path: path}, nil
}

// WriteTable replaces the named table with the contents of table.
func (s *SQLiteStore) WriteTable(ctx context.Context, name string, table *msgetl.Table) error {
	if err := validateWrite(name, table); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction on %s: %w: %w", s.path, msgetl.ErrWriteFailed, err)
	}
	defer tx.Rollback() //nolint:errcheck

	staging := stagingName(name)
	if _, err := tx.ExecContext(ctx, createTableSQL(quoteSQLite(staging), table, "FLOAT", quoteSQLite)); err != nil {
		return fmt.Errorf("failed to create table %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}

	stmt, err := tx.PreparexContext(ctx, insertSQLite(staging, table))
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to insert row %d into %q: %w: %w", i, name, msgetl.ErrWriteFailed, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteSQLite(name)); err != nil {
		return fmt.Errorf("failed to drop previous table %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s RENAME TO %s", quoteSQLite(staging), quoteSQLite(name))); err != nil {
		return fmt.Errorf("failed to rename staging table to %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit table %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}
	return nil
}

// ReadTable returns every row of the named table in rowid order.
func (s *SQLiteStore) ReadTable(ctx context.Context, name string) (*msgetl.Table, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM "+quoteSQLite(name)+" ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %q: %w", name, err)
	}
	table := &msgetl.Table{Columns: make([]msgetl.Column, len(types))}
	for i, ct := range types {
		table.Columns[i] = msgetl.Column{Name: ct.Name(), Kind: kindFromDeclared(ct.DatabaseTypeName())}
	}

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", name, err)
		}
		for i := range values {
			values[i] = normalizeCell(values[i], table.Columns[i].Kind)
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}
	return table, nil
}

// Close closes the database file.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// quoteSQLite quotes an identifier for SQLite.
func quoteSQLite(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func createTableSQL(quotedName string, table *msgetl.Table, realType string, quote func(string) string) string {
	defs := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		defs[i] = quote(c.Name) + " " + sqlType(c.Kind, realType)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quotedName, strings.Join(defs, ", "))
}

func insertSQLite(name string, table *msgetl.Table) string {
	cols := make([]string, len(table.Columns))
	marks := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		cols[i] = quoteSQLite(c.Name)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteSQLite(name), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

// Verify SQLiteStore implements the msgetl.Store interface at compile time
var _ msgetl.Store = (*SQLiteStore)(nil)
