package logger

import (
	"github.com/aleister1102/polisnap/internal/config"
	"github.com/rs/zerolog"
)

// New creates a logger from the log section of the configuration
func New(cfg config.LogConfig, verbose bool) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).WithVerbose(verbose).Build()
}

// NewWithRunID creates a logger whose entries and file output are tagged with runID
func NewWithRunID(cfg config.LogConfig, verbose bool, runID string) (zerolog.Logger, error) {
	return NewLoggerBuilder().
		WithConfig(cfg).
		WithVerbose(verbose).
		WithRunID(runID).
		Build()
}
