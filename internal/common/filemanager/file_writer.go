package filemanager

import (
	"fmt"
	"os"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/rs/zerolog"
)

// FileWriter handles file writing operations
type FileWriter struct {
	logger zerolog.Logger
}

// NewFileWriter creates a new FileWriter instance
func NewFileWriter(logger zerolog.Logger) *FileWriter {
	return &FileWriter{
		logger: logger.With().Str("component", "FileWriter").Logger(),
	}
}

// WriteFile truncates or creates path and writes data to it
func (fw *FileWriter) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	perm := opts.Permissions
	if perm == 0 {
		perm = 0644
	}

	if err := fw.performFileWrite(path, data, perm); err != nil {
		return common.WrapError(err, fmt.Sprintf("failed to write file: %s", path))
	}

	fw.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written successfully")
	return nil
}

func (fw *FileWriter) performFileWrite(path string, data []byte, perm os.FileMode) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fw.logger.Error().Err(closeErr).Str("path", path).Msg("Failed to close file after writing")
			if err == nil {
				err = closeErr
			}
		}
	}()

	_, err = file.Write(data)
	return err
}
