// Package store persists cleaned tables.
//
// Two backends are provided:
//   - SQLiteStore: a single database file (modernc.org/sqlite, pure Go)
//   - PostgresStore: a PostgreSQL database reached through a postgres:// URL
//
// Open picks the backend from the destination string. Both backends replace
// a table atomically: rows are loaded into a uniquely named staging table
// which is renamed over the target inside one transaction, so a failed run
// leaves the previous table in place.
package store
