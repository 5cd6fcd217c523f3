package orchestrator

import (
	"github.com/aleister1102/polisnap/internal/browser"
	"github.com/aleister1102/polisnap/internal/classifier"
	"github.com/aleister1102/polisnap/internal/config"
	"github.com/aleister1102/polisnap/internal/extractor"
	"github.com/aleister1102/polisnap/internal/fetcher"
	"github.com/aleister1102/polisnap/internal/httpclient"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// NewAcquirerFromConfig wires the production classifier, headless renderer,
// fetcher and extractor from cfg.
func NewAcquirerFromConfig(cfg *config.GlobalConfig, logger zerolog.Logger) (*Acquirer, error) {
	acq := cfg.AcquisitionConfig
	timeout := acq.Timeout()

	client, err := httpclient.NewHTTPClientBuilder(logger).
		WithConfig(cfg.HTTPClientConfig).
		WithTimeout(timeout).
		Build()
	if err != nil {
		return nil, err
	}

	renderer := browser.NewRodRenderer(cfg.BrowserConfig, timeout, logger)
	sourceFetcher := fetcher.NewFetcher(renderer, fetcher.Options{
		Screenshot: acq.Screenshot,
		Timeout:    timeout,
	}, logger)

	return NewAcquirerBuilder().
		WithClassifier(classifier.NewHTTPClassifier(client, logger)).
		WithFetcher(sourceFetcher).
		WithExtractor(extractor.NewService(logger)).
		WithOutputDir(acq.OutputDir).
		WithOptions(Options{
			Extractors:  models.ToExtractorNames(acq.Extractors),
			Force:       acq.Force,
			RaiseErrors: acq.RaiseErrors,
		}).
		WithLogger(logger).
		Build()
}
