package datastore

import (
	"path/filepath"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// DirectoryResolver maps policy identities to their output directories
type DirectoryResolver struct {
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
	basePath    string
}

// NewDirectoryResolver creates a resolver rooted at basePath
func NewDirectoryResolver(basePath string, fileManager *filemanager.FileManager, logger zerolog.Logger) *DirectoryResolver {
	if basePath == "" {
		basePath = "."
	}
	return &DirectoryResolver{
		logger:      logger.With().Str("component", "DirectoryResolver").Logger(),
		fileManager: fileManager,
		basePath:    basePath,
	}
}

// Path returns the output directory of identity without touching the filesystem
func (dr *DirectoryResolver) Path(identity models.PolicyIdentity) string {
	return filepath.Join(dr.basePath, identity.DirectoryKey())
}

// Resolve returns the output directory of identity, creating it if absent
func (dr *DirectoryResolver) Resolve(identity models.PolicyIdentity) (string, error) {
	dir := dr.Path(identity)
	if err := dr.fileManager.EnsureDirectory(dir, 0755); err != nil {
		dr.logger.Error().Err(err).Str("url", identity.URL()).Str("directory", dir).Msg("Failed to create policy directory")
		return "", common.WrapError(err, "failed to resolve output directory for "+identity.URL())
	}

	dr.logger.Debug().
		Str("url", identity.URL()).
		Str("directory", dir).
		Str("url_hash", identity.Hash()).
		Msg("Resolved policy directory")

	return dir, nil
}
