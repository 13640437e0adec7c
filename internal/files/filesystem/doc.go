// Package filesystem provides the file access abstraction used to read
// pipeline inputs.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
