package orchestrator

import (
	"context"
	"time"

	"github.com/aleister1102/polisnap/internal/classifier"
	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/datastore"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// Options are the per-run switches of the acquisition pipeline
type Options struct {
	Extractors  []models.ExtractorName
	Force       bool
	RaiseErrors bool
}

// Acquirer runs the full acquisition of a single policy URL
type Acquirer struct {
	classifier  classifier.Classifier
	fetcher     SourceFetcher
	extractor   ContentExtractor
	fileManager *filemanager.FileManager
	resolver    *datastore.DirectoryResolver
	store       *datastore.RecordStore
	hasher      models.URLHasher
	options     Options
	clock       func() time.Time
	logger      zerolog.Logger
}

// Acquire takes url through classification, fetching, extraction and the
// skip-checks, then persists a new dated file-set. Skipped acquisitions return
// a nil error. Failed ones return the error that caused them, which is also
// set on the outcome.
func (a *Acquirer) Acquire(ctx context.Context, url string) (*models.Outcome, error) {
	stamp := models.DateStamp(a.clock())
	outcome := &models.Outcome{URL: url, DateStamp: stamp}

	identity, err := models.NewPolicyIdentity(url, a.hasher)
	if err != nil {
		return a.fail(outcome, "invalid policy URL", err)
	}

	dir, err := a.resolver.Resolve(identity)
	if err != nil {
		return a.fail(outcome, "failed to resolve output directory", err)
	}
	outcome.Directory = dir

	index, err := datastore.BuildFileSetIndex(a.fileManager, dir)
	if err != nil {
		return a.fail(outcome, "failed to index existing file-sets", err)
	}

	if !a.options.Force && index.HasStamp(stamp) {
		return a.skip(outcome, models.ReasonAlreadyScraped, nil), nil
	}

	payload, err := a.fetchSources(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return a.skip(outcome, models.ReasonCancelled, context.Cause(ctx)), nil
		}
		if common.IsNetworkError(err) && !a.options.RaiseErrors {
			return a.skip(outcome, models.ReasonNetworkError, err), nil
		}
		return a.fail(outcome, "failed to fetch policy", err)
	}
	outcome.URLType = payload.URLType

	content, err := a.extract(ctx, identity, payload)
	if err != nil {
		return a.fail(outcome, "failed to extract policy content", err)
	}

	if !a.options.Force && a.isUnchanged(dir, index, content) {
		return a.skip(outcome, models.ReasonContentUnchanged, nil), nil
	}

	policy := &Policy{Identity: identity, Payload: payload, Content: content}
	if _, err := a.store.Save(ctx, dir, policy.Record(stamp)); err != nil {
		return a.fail(outcome, "failed to save policy", err)
	}

	outcome.Status = models.StatusSaved
	a.logger.Info().
		Str("url", url).
		Str("directory", dir).
		Str("date_stamp", stamp).
		Str("url_type", payload.URLType.String()).
		Msg("Saved policy")

	return outcome, nil
}

// isUnchanged compares the new text with the text of the latest file-set that
// has extracted content. Missing or unreadable previous content counts as changed.
func (a *Acquirer) isUnchanged(dir string, index *datastore.FileSetIndex, content *models.ExtractedContent) bool {
	latest, ok := index.LatestWithExt(datastore.ExtContent)
	if !ok {
		return false
	}

	previous, err := a.store.LoadContent(dir, latest)
	if err != nil {
		a.logger.Warn().Err(err).Str("directory", dir).Str("date_stamp", latest).Msg("Could not load previous content, treating policy as changed")
		return false
	}

	if !previous.HasText() || !content.HasText() {
		return false
	}
	if previous.Text != content.Text {
		return false
	}

	a.logger.Debug().Str("directory", dir).Str("previous_stamp", latest).Msg("Policy text unchanged")
	return true
}

func (a *Acquirer) skip(outcome *models.Outcome, reason models.SkipReason, cause error) *models.Outcome {
	outcome.Status = models.StatusSkipped
	outcome.Reason = reason
	outcome.Err = cause

	event := a.logger.Warn().Str("url", outcome.URL).Str("reason", string(reason))
	if cause != nil {
		event = event.Err(cause)
	}
	event.Msg("Skipping policy")

	return outcome
}

func (a *Acquirer) fail(outcome *models.Outcome, message string, err error) (*models.Outcome, error) {
	outcome.Status = models.StatusFailed
	outcome.Err = err

	a.logger.Error().Err(err).Str("url", outcome.URL).Msg(message)
	return outcome, err
}
