package orchestrator

import (
	"context"

	"github.com/aleister1102/polisnap/internal/classifier"
	"github.com/aleister1102/polisnap/internal/extractor"
	"github.com/aleister1102/polisnap/internal/models"
)

// SourceFetcher produces the source payload of a classified URL
type SourceFetcher interface {
	Fetch(ctx context.Context, url string, classified *classifier.Result) (*models.SourcePayload, error)
}

// ContentExtractor runs extractors over a source payload
type ContentExtractor interface {
	Extract(ctx context.Context, names []models.ExtractorName, input extractor.Input) (*models.ExtractedContent, error)
}
