package urlhandler

import (
	"strings"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/rs/zerolog"
)

// TargetManager loads the list of policy URLs to acquire
type TargetManager struct {
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewTargetManager creates a new TargetManager instance
func NewTargetManager(logger zerolog.Logger) *TargetManager {
	componentLogger := logger.With().Str("component", "TargetManager").Logger()
	return &TargetManager{
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
	}
}

// LoadTargets reads a newline-separated URL file. Blank lines and lines starting
// with '#' are ignored, whitespace-separated tokens on one line count as separate
// URLs and duplicates are collapsed keeping first-seen order.
func (tm *TargetManager) LoadTargets(path string) ([]string, error) {
	if path == "" {
		return nil, common.NewValidationError("input_file", path, "input file path is required")
	}

	opts := filemanager.DefaultFileReadOptions()
	opts.MaxSize = 0
	lines, err := tm.fileManager.ReadLines(path, opts)
	if err != nil {
		return nil, common.WrapError(err, "failed to load URLs from file '"+path+"'")
	}

	targets := DedupeTargets(lines)
	for _, target := range targets {
		if err := ValidateURL(target); err != nil {
			tm.logger.Warn().Err(err).Str("url", target).Msg("Target is not an absolute http(s) URL")
		}
	}
	tm.logger.Info().Int("count", len(targets)).Str("source", path).Msg("Loaded targets from input file")
	return targets, nil
}

// DedupeTargets flattens raw input lines into a unique, blank-free URL list
func DedupeTargets(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	targets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			targets = append(targets, token)
		}
	}
	return targets
}
