package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// A single writer never needs more than a couple of connections.
const (
	postgresMaxConns = 2
	postgresMinConns = 1
)

// PostgresStore writes tables into a PostgreSQL database.
// Not safe for concurrent WriteTable calls on the same instance.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the database named by connString and verifies
// the connection with a ping.
func OpenPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w: %w", msgetl.ErrInvalidConfig, err)
	}
	poolConfig.MaxConns = postgresMaxConns
	poolConfig.MinConns = postgresMinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port, poolConfig.ConnConfig.Database)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port, poolConfig.ConnConfig.Database)
	}

	return &PostgresStore{pool: pool}, nil
}

// WriteTable replaces the named table with the contents of table.
// Rows are streamed with COPY into a staging table that is renamed over
// the target before commit.
func (s *PostgresStore) WriteTable(ctx context.Context, name string, table *msgetl.Table) error {
	if err := validateWrite(name, table); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w: %w", msgetl.ErrWriteFailed, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	staging := stagingName(name)
	if _, err := tx.Exec(ctx, createTableSQL(quotePostgres(staging), table, "DOUBLE PRECISION", quotePostgres)); err != nil {
		return fmt.Errorf("failed to create table %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{staging}, table.ColumnNames(), pgx.CopyFromRows(table.Rows))
	if err != nil {
		return fmt.Errorf("failed to copy rows into %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}
	if copied != int64(len(table.Rows)) {
		return fmt.Errorf("copied %d of %d rows into %q: %w", copied, len(table.Rows), name, msgetl.ErrWriteFailed)
	}

	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+quotePostgres(name)); err != nil {
		return fmt.Errorf("failed to drop previous table %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("ALTER TABLE %s RENAME TO %s", quotePostgres(staging), quotePostgres(name))); err != nil {
		return fmt.Errorf("failed to rename staging table to %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit table %q: %w: %w", name, msgetl.ErrWriteFailed, err)
	}
	return nil
}

// ReadTable returns every row of the named table.
// PostgreSQL tables have no insertion order; rows come back in scan order.
func (s *PostgresStore) ReadTable(ctx context.Context, name string) (*msgetl.Table, error) {
	rows, err := s.pool.Query(ctx, "SELECT * FROM "+quotePostgres(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	table := &msgetl.Table{Columns: make([]msgetl.Column, len(fields))}
	for i, f := range fields {
		table.Columns[i] = msgetl.Column{Name: f.Name, Kind: kindFromOID(f.DataTypeOID)}
	}

	for rows.Next() {
		values, err := rows.Values()
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

// Close closes every pooled connection.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func quotePostgres(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func kindFromOID(oid uint32) msgetl.Kind {
	switch oid {
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID:
		return msgetl.KindInteger
	case pgtype.Float4OID, pgtype.Float8OID:
		return msgetl.KindReal
	default:
		return msgetl.KindText
	}
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
func wrapConnectionError(err error, host string, port uint16, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port in the destination URL

Original error: %w: %w`, addr, host, port, msgetl.ErrStoreUnavailable, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`password authentication failed for database "%s"

Possible causes:
  - Wrong password (check $PGPASSWORD, .env or ~/.pgpass)
  - Wrong username

Original error: %w: %w`, database, msgetl.ErrStoreUnavailable, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`database "%s" does not exist

To create it:
  createdb %s

Original error: %w: %w`, database, database, msgetl.ErrStoreUnavailable, err)

	default:
		return fmt.Errorf("failed to connect to database: %w: %w", msgetl.ErrStoreUnavailable, err)
	}
}

// Verify PostgresStore implements the msgetl.Store interface at compile time
var _ msgetl.Store = (*PostgresStore)(nil)
