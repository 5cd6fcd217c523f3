package orchestrator

import (
	"context"

	"github.com/aleister1102/polisnap/internal/datastore"
	"github.com/aleister1102/polisnap/internal/extractor"
	"github.com/aleister1102/polisnap/internal/models"
)

// Policy is a fetched and extracted policy that has not been persisted
type Policy struct {
	Identity models.PolicyIdentity
	Payload  *models.SourcePayload
	Content  *models.ExtractedContent
}

// Record returns the persistable form of the policy stamped with dateStamp
func (p *Policy) Record(dateStamp string) datastore.PolicyRecord {
	return datastore.PolicyRecord{
		Identity:  p.Identity,
		DateStamp: dateStamp,
		Payload:   p.Payload,
		Content:   p.Content,
	}
}

// GetPolicy classifies, fetches and extracts url without any skip-checks or
// persistence. Errors are returned as they occur.
func (a *Acquirer) GetPolicy(ctx context.Context, url string) (*Policy, error) {
	identity, err := models.NewPolicyIdentity(url, a.hasher)
	if err != nil {
		return nil, err
	}

	payload, err := a.fetchSources(ctx, url)
	if err != nil {
		return nil, err
	}

	content, err := a.extract(ctx, identity, payload)
	if err != nil {
		return nil, err
	}

	return &Policy{Identity: identity, Payload: payload, Content: content}, nil
}

func (a *Acquirer) fetchSources(ctx context.Context, url string) (*models.SourcePayload, error) {
	classified, err := a.classifier.Classify(ctx, url)
	if err != nil {
		return nil, err
	}
	return a.fetcher.Fetch(ctx, url, classified)
}

func (a *Acquirer) extract(ctx context.Context, identity models.PolicyIdentity, payload *models.SourcePayload) (*models.ExtractedContent, error) {
	return a.extractor.Extract(ctx, a.options.Extractors, extractor.NewInput(identity, payload))
}
