// Package loader reads the message and category CSV files and joins them.
//
// The loader package is responsible for:
//   - Reading both CSV files through a filesystem provider
//   - Inferring column types the way the pipeline stores them
//   - Inner joining the two tables on the key column
//
// A missing file, a malformed CSV record or an absent key column stops the
// load; nothing is returned partially.
package loader
