package datastore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/config"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// LedgerWriteResult describes a written run ledger
type LedgerWriteResult struct {
	FilePath       string
	RecordsWritten int
	FileSize       int64
	WriteTime      time.Duration
}

// LedgerWriter writes one parquet file of outcomes per run
type LedgerWriter struct {
	config      config.StorageConfig
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewLedgerWriter creates a ledger writer for cfg
func NewLedgerWriter(cfg config.StorageConfig, fileManager *filemanager.FileManager, logger zerolog.Logger) (*LedgerWriter, error) {
	if cfg.LedgerDir == "" {
		return nil, common.NewValidationError("ledger_dir", cfg.LedgerDir, "ledger directory is not configured")
	}
	return &LedgerWriter{
		config:      cfg,
		logger:      logger.With().Str("component", "LedgerWriter").Logger(),
		fileManager: fileManager,
	}, nil
}

// LedgerPath returns the file the ledger of runID is written to
func (lw *LedgerWriter) LedgerPath(runID string) string {
	return filepath.Join(lw.config.LedgerDir, runID+".parquet")
}

// Write stores records as <ledger_dir>/<runID>.parquet, replacing any
// previous file for the same run.
func (lw *LedgerWriter) Write(ctx context.Context, runID string, records []models.LedgerRecord) (*LedgerWriteResult, error) {
	startTime := time.Now()

	if runID == "" {
		return nil, common.NewValidationError("run_id", runID, "run id is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := lw.fileManager.EnsureDirectory(lw.config.LedgerDir, 0755); err != nil {
		return nil, err
	}

	filePath := lw.LedgerPath(runID)
	written, err := lw.writeToParquetFile(filePath, records)
	if err != nil {
		return nil, err
	}

	result := &LedgerWriteResult{
		FilePath:       filePath,
		RecordsWritten: written,
		WriteTime:      time.Since(startTime),
	}
	if info, err := lw.fileManager.GetFileInfo(filePath); err == nil {
		result.FileSize = info.Size
	}

	lw.logger.Info().
		Str("file_path", result.FilePath).
		Int("records_written", result.RecordsWritten).
		Dur("write_time", result.WriteTime).
		Msg("Wrote run ledger")

	return result, nil
}

func (lw *LedgerWriter) writeToParquetFile(filePath string, records []models.LedgerRecord) (int, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return 0, common.WrapError(err, "failed to create ledger file: "+filePath)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.LedgerRecord](file, compressionOption(lw.config.CompressionCodec))

	written, err := writer.Write(records)
	if err != nil {
		_ = writer.Close()
		return 0, common.WrapError(err, "failed to write ledger records")
	}
	if err := writer.Close(); err != nil {
		return 0, common.WrapError(err, "failed to finalize ledger file")
	}
	if err := file.Sync(); err != nil {
		return 0, common.WrapError(err, "failed to sync ledger file")
	}
	return written, nil
}

func compressionOption(codec string) parquet.WriterOption {
	switch strings.ToLower(codec) {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "none":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Zstd)
	}
}
