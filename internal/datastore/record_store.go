package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// PolicyRecord is everything persisted for one acquisition
type PolicyRecord struct {
	Identity  models.PolicyIdentity
	DateStamp string
	Payload   *models.SourcePayload
	Content   *models.ExtractedContent
}

// SaveResult lists the files written for one dated file-set
type SaveResult struct {
	Directory string
	Files     []string
	HTMLMD5   string
}

// RecordStore writes and reads dated file-sets inside policy directories
type RecordStore struct {
	logger       zerolog.Logger
	fileManager  *filemanager.FileManager
	writeOptions filemanager.FileWriteOptions
	readOptions  filemanager.FileReadOptions
}

// NewRecordStore creates a record store
func NewRecordStore(fileManager *filemanager.FileManager, logger zerolog.Logger) *RecordStore {
	return &RecordStore{
		logger:       logger.With().Str("component", "RecordStore").Logger(),
		fileManager:  fileManager,
		writeOptions: filemanager.DefaultFileWriteOptions(),
		readOptions:  filemanager.FileReadOptions{MaxSize: filemanager.DefaultFileReadOptions().MaxSize},
	}
}

// FilePath returns <dir>/<stamp>.<ext>
func FilePath(dir, stamp, ext string) string {
	return filepath.Join(dir, stamp+"."+ext)
}

// Save writes every artifact the record has. Each file is written
// independently; failures are collected and returned together after all
// other artifacts were attempted.
func (rs *RecordStore) Save(ctx context.Context, dir string, record PolicyRecord) (*SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &SaveResult{Directory: dir}
	var errs common.ErrorCollector
	payload := record.Payload

	write := func(ext string, data []byte) {
		path := FilePath(dir, record.DateStamp, ext)
		if err := rs.fileManager.WriteFile(path, data, rs.writeOptions); err != nil {
			errs.AddWithContext(err, "write "+ext)
			return
		}
		result.Files = append(result.Files, path)
	}

	if payload != nil && payload.URLType.NeedsRendering() && payload.HasMarkup() {
		markup := []byte(payload.Markup())
		result.HTMLMD5 = ContentMD5(markup)
		write(ExtHTML, markup)
	}

	if payload != nil && payload.Screenshot != nil {
		write(ExtScreenshot, payload.Screenshot)
	}

	if !record.Content.IsEmpty() {
		data, err := json.Marshal(record.Content)
		if err != nil {
			errs.AddWithContext(err, "encode extracted content")
		} else {
			write(ExtContent, data)
		}
	}

	if payload != nil && payload.StaticBytes != nil {
		switch payload.URLType {
		case models.URLTypePDF:
			write(ExtPDF, payload.StaticBytes)
		case models.URLTypePlain:
			write(ExtPlainText, payload.StaticBytes)
		}
	}

	meta := models.NewPolicyMetadata(record.Identity, record.DateStamp, payload, result.HTMLMD5)
	data, err := json.Marshal(meta)
	if err != nil {
		errs.AddWithContext(err, "encode metadata")
	} else {
		write(ExtMetadata, data)
	}

	if errs.HasErrors() {
		rs.logger.Error().
			Err(errs.Error()).
			Str("url", record.Identity.URL()).
			Str("directory", dir).
			Int("files_written", len(result.Files)).
			Msg("Failed to write some policy files")
		return result, common.WrapError(errs.Error(), fmt.Sprintf("failed to save policy %s", record.Identity.URL()))
	}

	rs.logger.Debug().
		Str("url", record.Identity.URL()).
		Str("directory", dir).
		Strs("files", result.Files).
		Msg("Saved policy file-set")

	return result, nil
}

// LoadContent reads the extracted content of the file-set stamped stamp
func (rs *RecordStore) LoadContent(dir, stamp string) (*models.ExtractedContent, error) {
	path := FilePath(dir, stamp, ExtContent)
	data, err := rs.fileManager.ReadFile(path, rs.readOptions)
	if err != nil {
		return nil, err
	}

	var content models.ExtractedContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, common.WrapError(err, "failed to decode extracted content: "+path)
	}
	return &content, nil
}

// LoadMetadata reads the metadata record of the file-set stamped stamp
func (rs *RecordStore) LoadMetadata(dir, stamp string) (*models.PolicyMetadata, error) {
	path := FilePath(dir, stamp, ExtMetadata)
	data, err := rs.fileManager.ReadFile(path, rs.readOptions)
	if err != nil {
		return nil, err
	}

	var meta models.PolicyMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, common.WrapError(err, "failed to decode metadata: "+path)
	}
	return &meta, nil
}
