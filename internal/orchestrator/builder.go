package orchestrator

import (
	"time"

	"github.com/aleister1102/polisnap/internal/classifier"
	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/datastore"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// AcquirerBuilder provides a fluent interface for creating an Acquirer
type AcquirerBuilder struct {
	classifier classifier.Classifier
	fetcher    SourceFetcher
	extractor  ContentExtractor
	hasher     models.URLHasher
	outputDir  string
	options    Options
	clock      func() time.Time
	logger     zerolog.Logger
}

// NewAcquirerBuilder creates a builder with a no-op logger and the text extractor
func NewAcquirerBuilder() *AcquirerBuilder {
	return &AcquirerBuilder{
		options: Options{Extractors: []models.ExtractorName{models.ExtractorText}},
		clock:   time.Now,
		logger:  zerolog.Nop(),
	}
}

// WithClassifier sets the URL classifier
func (b *AcquirerBuilder) WithClassifier(c classifier.Classifier) *AcquirerBuilder {
	b.classifier = c
	return b
}

// WithFetcher sets the source fetcher
func (b *AcquirerBuilder) WithFetcher(f SourceFetcher) *AcquirerBuilder {
	b.fetcher = f
	return b
}

// WithExtractor sets the content extractor
func (b *AcquirerBuilder) WithExtractor(e ContentExtractor) *AcquirerBuilder {
	b.extractor = e
	return b
}

// WithHasher overrides the URL hasher
func (b *AcquirerBuilder) WithHasher(h models.URLHasher) *AcquirerBuilder {
	b.hasher = h
	return b
}

// WithOutputDir sets the root of the policy directories
func (b *AcquirerBuilder) WithOutputDir(dir string) *AcquirerBuilder {
	b.outputDir = dir
	return b
}

// WithOptions sets the run options
func (b *AcquirerBuilder) WithOptions(options Options) *AcquirerBuilder {
	b.options = options
	return b
}

// WithClock overrides the time source used for date stamps
func (b *AcquirerBuilder) WithClock(clock func() time.Time) *AcquirerBuilder {
	b.clock = clock
	return b
}

// WithLogger sets the logger
func (b *AcquirerBuilder) WithLogger(logger zerolog.Logger) *AcquirerBuilder {
	b.logger = logger
	return b
}

// Build creates the Acquirer
func (b *AcquirerBuilder) Build() (*Acquirer, error) {
	if b.classifier == nil {
		return nil, common.NewValidationError("classifier", nil, "classifier cannot be nil")
	}
	if b.fetcher == nil {
		return nil, common.NewValidationError("fetcher", nil, "fetcher cannot be nil")
	}
	if b.extractor == nil {
		return nil, common.NewValidationError("extractor", nil, "extractor cannot be nil")
	}
	if len(b.options.Extractors) == 0 {
		return nil, common.NewValidationError("extractors", b.options.Extractors, "at least one extractor is required")
	}
	for _, name := range b.options.Extractors {
		if !models.IsKnownExtractor(string(name)) {
			return nil, common.NewValidationError("extractors", name, "unknown extractor")
		}
	}

	hasher := b.hasher
	if hasher == nil {
		hasher = datastore.NewURLHashGenerator(datastore.DefaultURLHashLength)
	}
	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	logger := b.logger.With().Str("component", "Acquirer").Logger()
	fileManager := filemanager.NewFileManager(b.logger)

	return &Acquirer{
		classifier:  b.classifier,
		fetcher:     b.fetcher,
		extractor:   b.extractor,
		fileManager: fileManager,
		resolver:    datastore.NewDirectoryResolver(b.outputDir, fileManager, b.logger),
		store:       datastore.NewRecordStore(fileManager, b.logger),
		hasher:      hasher,
		options:     b.options,
		clock:       clock,
		logger:      logger,
	}, nil
}
