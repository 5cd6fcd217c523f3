package extractor

import (
	"context"
	"fmt"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
)

// Input is what the extractors read from
type Input struct {
	URL     string
	Domain  string
	Payload *models.SourcePayload
}

// NewInput builds extractor input for a fetched policy
func NewInput(identity models.PolicyIdentity, payload *models.SourcePayload) Input {
	return Input{
		URL:     identity.URL(),
		Domain:  identity.Domain(),
		Payload: payload,
	}
}

// Service runs the requested extractors over a source payload
type Service struct {
	logger zerolog.Logger
	tagger *KeywordTagger
}

// NewService creates an extraction service with the CCPA keyword taxonomy
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		logger: logger.With().Str("component", "Extractor").Logger(),
		tagger: NewKeywordTagger(nil),
	}
}

// Extract runs names in caller order. Every failure, including empty output
// and unknown extractor names, is a *common.ParserError.
func (s *Service) Extract(ctx context.Context, names []models.ExtractorName, input Input) (*models.ExtractedContent, error) {
	if input.Payload == nil {
		return nil, common.NewParserError(input.URL, "", "no source payload", common.ErrInvalidInput)
	}

	content := &models.ExtractedContent{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch name {
		case models.ExtractorText:
			text, err := s.extractText(input)
			if err != nil {
				return nil, err
			}
			content.Text = text
		case models.ExtractorKeywords:
			table, err := s.extractKeywords(input)
			if err != nil {
				return nil, err
			}
			content.Keywords = table
		default:
			return nil, common.NewParserError(input.URL, string(name), "unknown extractor", common.ErrInvalidInput)
		}

		s.logger.Debug().Str("url", input.URL).Str("extractor", string(name)).Msg("Extractor finished")
	}

	return content, nil
}

func (s *Service) extractText(input Input) (string, error) {
	payload := input.Payload
	extractor := string(models.ExtractorText)

	var text string
	switch payload.URLType {
	case models.URLTypeHTML, models.URLTypeOther:
		markup := payload.Markup()
		if IsGoogleDocs(input.Domain, markup) {
			text = RecombineGoogleDocs(markup)
		} else {
			normalized, err := MarkupToText(markup)
			if err != nil {
				return "", common.NewParserError(input.URL, extractor, "failed to parse markup", err)
			}
			text = normalized
		}
	case models.URLTypePDF:
		decoded, err := DecodePDF(payload.StaticBytes)
		if err != nil {
			return "", common.NewParserError(input.URL, extractor, "failed to decode PDF", err)
		}
		text = decoded
	case models.URLTypePlain:
		text = payload.Markup()
	case models.URLTypeUnknown:
		return "", common.NewParserError(input.URL, extractor, "unrecognized url type", common.ErrUnsupportedType)
	default:
		return "", common.NewParserError(input.URL, extractor, fmt.Sprintf("unrecognized url type %d", int(payload.URLType)), common.ErrUnsupportedType)
	}

	if len(text) == 0 {
		return "", common.NewParserError(input.URL, extractor, "extracted text is empty", common.ErrEmptyContent)
	}
	return text, nil
}

func (s *Service) extractKeywords(input Input) (models.KeywordTable, error) {
	payload := input.Payload
	extractor := string(models.ExtractorKeywords)

	var source string
	switch payload.URLType {
	case models.URLTypeHTML, models.URLTypeOther:
		visible, err := VisibleText(payload.Markup())
		if err != nil {
			return nil, common.NewParserError(input.URL, extractor, "failed to parse markup", err)
		}
		source = visible
	case models.URLTypePDF:
		decoded, err := DecodePDF(payload.StaticBytes)
		if err != nil {
			return nil, common.NewParserError(input.URL, extractor, "failed to decode PDF", err)
		}
		source = decoded
	case models.URLTypePlain, models.URLTypeUnknown:
		source = payload.Markup()
	default:
		return nil, common.NewParserError(input.URL, extractor, fmt.Sprintf("unrecognized url type %d", int(payload.URLType)), common.ErrUnsupportedType)
	}

	return s.tagger.Tag(source), nil
}
