package classifier

import (
	"context"
	"fmt"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/httpclient"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// Result is the outcome of probing a URL. Body is kept so the fetcher never
// requests the same URL twice.
type Result struct {
	Type        models.URLType
	Body        []byte
	ContentType string
	StatusCode  int
}

// Classifier determines the content type of a policy URL
type Classifier interface {
	Classify(ctx context.Context, url string) (*Result, error)
}

// HTTPClassifier classifies URLs with a single GET request
type HTTPClassifier struct {
	client *httpclient.HTTPClient
	logger zerolog.Logger
}

// NewHTTPClassifier creates a classifier on top of client
func NewHTTPClassifier(client *httpclient.HTTPClient, logger zerolog.Logger) *HTTPClassifier {
	return &HTTPClassifier{
		client: client,
		logger: logger.With().Str("component", "Classifier").Logger(),
	}
}

// Classify issues one GET for url. Any HTTP status is accepted; transport
// failures and bodies over the size limit come back as *common.NetworkError.
func (c *HTTPClassifier) Classify(ctx context.Context, url string) (*Result, error) {
	resp, err := c.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if resp.Truncated {
		return nil, common.NewNetworkError(url, "response exceeds max_body_mb",
			fmt.Errorf("body larger than %d bytes", len(resp.Body)))
	}

	contentType := resp.ContentType()
	result := &Result{
		Type:        ClassifyContentType(contentType),
		Body:        resp.Body,
		ContentType: contentType,
		StatusCode:  resp.StatusCode,
	}

	c.logger.Debug().
		Str("url", url).
		Int("status_code", resp.StatusCode).
		Str("content_type", contentType).
		Str("url_type", result.Type.String()).
		Int("body_size", len(resp.Body)).
		Msg("Classified URL")

	return result, nil
}
