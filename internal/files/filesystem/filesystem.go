package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives read access to input files
type FileSystemProvider interface {
	// Open opens a regular file for streaming reads.
	// The caller must close the returned reader.
	Open(path string) (io.ReadCloser, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
