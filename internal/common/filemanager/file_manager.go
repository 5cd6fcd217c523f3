package filemanager

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/rs/zerolog"
)

// FileManager provides file operations with standardized error handling and logging
type FileManager struct {
	logger zerolog.Logger
	writer *FileWriter
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	componentLogger := logger.With().Str("component", "FileManager").Logger()

	return &FileManager{
		logger: componentLogger,
		writer: NewFileWriter(componentLogger),
	}
}

// FileExists checks if a file or directory exists
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileInfo returns information about a file
func (fm *FileManager) GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.WrapError(common.ErrNotFound, fmt.Sprintf("file not found: %s", path))
		}
		return nil, common.WrapError(err, fmt.Sprintf("failed to get file info for: %s", path))
	}

	return &FileInfo{
		Path:  path,
		Name:  stat.Name(),
		Size:  stat.Size(),
		IsDir: stat.IsDir(),
	}, nil
}

// ReadFile reads a whole file, enforcing opts.MaxSize
func (fm *FileManager) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	info, err := fm.GetFileInfo(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir {
		return nil, common.NewValidationError("path", path, "is a directory, not a file")
	}
	if opts.MaxSize > 0 && info.Size > opts.MaxSize {
		return nil, common.NewValidationError("file_size", info.Size, fmt.Sprintf("exceeds maximum size of %d bytes", opts.MaxSize))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, fmt.Sprintf("failed to read file: %s", path))
	}
	return content, nil
}

// ReadLines reads a file and returns its lines according to opts
func (fm *FileManager) ReadLines(path string, opts FileReadOptions) ([]string, error) {
	content, err := fm.ReadFile(path, opts)
	if err != nil {
		return nil, err
	}
	return splitLines(bytes.NewReader(content), opts)
}

func splitLines(r io.Reader, opts FileReadOptions) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if opts.TrimLines {
			line = strings.TrimSpace(line)
		}
		if opts.SkipEmpty && line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, common.WrapError(err, "failed to scan lines")
	}
	return lines, nil
}

// EnsureDirectory creates a directory and its parents if they don't exist.
// Safe to call concurrently for the same or overlapping paths.
func (fm *FileManager) EnsureDirectory(path string, perm fs.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return common.WrapError(err, "failed to create directory: "+path)
	}

	info, err := fm.GetFileInfo(path)
	if err != nil {
		return common.WrapError(err, "failed to check directory: "+path)
	}
	if !info.IsDir {
		return common.NewValidationError("path", path, "exists but is not a directory")
	}
	return nil
}

// ListDir returns the names of regular files directly inside dir
func (fm *FileManager) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, common.WrapError(err, "failed to list directory: "+dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// WriteFile writes data to a file with the given options
func (fm *FileManager) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	if opts.CreateDirs {
		if err := fm.EnsureDirectory(filepath.Dir(path), 0755); err != nil {
			return common.WrapError(err, "failed to create parent directories for: "+path)
		}
	}

	return fm.writer.WriteFile(path, data, opts)
}
