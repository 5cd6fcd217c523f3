package fetcher

import (
	"context"
	"time"

	"github.com/aleister1102/polisnap/internal/browser"
	"github.com/aleister1102/polisnap/internal/classifier"
	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// Options controls what the fetcher captures
type Options struct {
	Screenshot bool
	Timeout    time.Duration
}

// Fetcher builds the source payload of a classified URL
type Fetcher struct {
	renderer browser.Renderer
	options  Options
	logger   zerolog.Logger
}

// NewFetcher creates a fetcher that renders through renderer
func NewFetcher(renderer browser.Renderer, options Options, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		renderer: renderer,
		options:  options,
		logger:   logger.With().Str("component", "Fetcher").Logger(),
	}
}

// Fetch returns the static and rendered representation of url. The static
// bytes are taken from the classification response. HTML, PDF and other types
// are rendered in a browser, plain and unknown types mirror the decoded body.
func (f *Fetcher) Fetch(ctx context.Context, url string, classified *classifier.Result) (*models.SourcePayload, error) {
	if classified == nil {
		return nil, common.NewValidationError("classified", nil, "classification result is required")
	}

	payload := &models.SourcePayload{
		URLType:     classified.Type,
		ContentType: classified.ContentType,
		StaticBytes: classified.Body,
	}

	switch classified.Type {
	case models.URLTypeHTML, models.URLTypePDF, models.URLTypeOther:
		rendered, err := f.renderer.Render(ctx, url, browser.RenderOptions{
			Screenshot: f.options.Screenshot,
			Timeout:    f.options.Timeout,
		})
		if err != nil {
			if !common.IsNetworkError(err) {
				err = common.NewNetworkError(url, "render failed", err)
			}
			return nil, err
		}
		markup := rendered.HTML
		payload.RenderedMarkup = &markup
		payload.Screenshot = rendered.Screenshot
	case models.URLTypePlain, models.URLTypeUnknown:
		markup := DecodeText(classified.Body, classified.ContentType)
		payload.RenderedMarkup = &markup
	default:
		return nil, common.WrapErrorf(common.ErrUnsupportedType, "cannot fetch %s as %s", url, classified.Type)
	}

	f.logger.Debug().
		Str("url", url).
		Str("url_type", classified.Type.String()).
		Int("static_size", len(payload.StaticBytes)).
		Int("markup_size", len(payload.Markup())).
		Bool("screenshot", payload.Screenshot != nil).
		Msg("Fetched policy sources")

	return payload, nil
}
