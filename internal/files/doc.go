// Package files groups the input-side sub-packages.
//
//   - filesystem: file access abstraction (OS and in-memory)
//   - loader: CSV reading, type inference and the key join
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/msgetl/internal/files/filesystem"
//	    "github.com/vvka-141/msgetl/internal/files/loader"
//	)
//
//	l := loader.NewLoader(filesystem.NewOSFileSystem(), "id", ',')
//	joined, err := l.Load(ctx, "disaster_messages.csv", "disaster_categories.csv")
package files
