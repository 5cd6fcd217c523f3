package filemanager

import (
	"io/fs"
)

// FileReadOptions configures file reading behavior
type FileReadOptions struct {
	MaxSize   int64 // Maximum file size to read (0 = no limit)
	TrimLines bool  // Whether to trim whitespace from lines
	SkipEmpty bool  // Whether to skip empty lines
}

// FileWriteOptions configures file writing behavior
type FileWriteOptions struct {
	CreateDirs  bool        // Whether to create parent directories
	Permissions fs.FileMode // File permissions
}

// DefaultFileReadOptions returns default file reading options
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize:   50 * 1024 * 1024,
		TrimLines: true,
		SkipEmpty: true,
	}
}

// DefaultFileWriteOptions returns default file writing options
func DefaultFileWriteOptions() FileWriteOptions {
	return FileWriteOptions{
		CreateDirs:  true,
		Permissions: 0644,
	}
}

// FileInfo describes a file on disk
type FileInfo struct {
	Path  string
	Name  string
	Size  int64
	IsDir bool
}
