package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func htmlInput(domain, markup string) Input {
	return Input{
		URL:    "https://" + domain + "/privacy",
		Domain: domain,
		Payload: &models.SourcePayload{
			URLType:        models.URLTypeHTML,
			RenderedMarkup: strPtr(markup),
		},
	}
}

func TestService_ExtractText(t *testing.T) {
	svc := NewService(zerolog.Nop())

	tests := []struct {
		name     string
		input    Input
		expected string
	}{
		{
			name:     "html markup normalized",
			input:    htmlInput("example.com", "<h1>Policy</h1><p>We  collect</p>"),
			expected: "Policy We\ncollect",
		},
		{
			name:     "google docs recombined",
			input:    htmlInput("docs.google.com", `<script>{"s":"Hello\nWorld"},{"s":"Again"},</script>`),
			expected: "Hello\nWorldAgain",
		},
		{
			name: "other type treated as markup",
			input: Input{
				URL:     "https://example.com/policy.xml",
				Domain:  "example.com",
				Payload: &models.SourcePayload{URLType: models.URLTypeOther, RenderedMarkup: strPtr("<doc><p>Terms</p></doc>")},
			},
			expected: "Terms",
		},
		{
			name: "plain text passed through",
			input: Input{
				URL:     "https://example.com/policy.txt",
				Domain:  "example.com",
				Payload: &models.SourcePayload{URLType: models.URLTypePlain, RenderedMarkup: strPtr("  raw\n\ntext  ")},
			},
			expected: "  raw\n\ntext  ",
		},
		{
			name: "pdf decoded",
			input: Input{
				URL:     "https://example.com/policy.pdf",
				Domain:  "example.com",
				Payload: &models.SourcePayload{URLType: models.URLTypePDF, StaticBytes: buildTestPDF("Hello PDF")},
			},
			expected: "Hello PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := svc.Extract(context.Background(), []models.ExtractorName{models.ExtractorText}, tt.input)
			require.NoError(t, err)
			if tt.input.Payload.URLType == models.URLTypePDF {
				assert.Contains(t, content.Text, tt.expected)
			} else {
				assert.Equal(t, tt.expected, content.Text)
			}
			assert.Nil(t, content.Keywords)
		})
	}
}

func TestService_ExtractTextFailures(t *testing.T) {
	svc := NewService(zerolog.Nop())

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty html text",
			input:   htmlInput("example.com", "<script>only()</script>"),
			wantErr: common.ErrEmptyContent,
		},
		{
			name: "unknown type",
			input: Input{
				URL:     "https://example.com",
				Payload: &models.SourcePayload{URLType: models.URLTypeUnknown},
			},
			wantErr: common.ErrUnsupportedType,
		},
		{
			name: "undecodable pdf",
			input: Input{
				URL:     "https://example.com/broken.pdf",
				Payload: &models.SourcePayload{URLType: models.URLTypePDF, StaticBytes: []byte("garbage")},
			},
		},
		{
			name: "missing payload",
			input: Input{
				URL: "https://example.com",
			},
			wantErr: common.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := svc.Extract(context.Background(), []models.ExtractorName{models.ExtractorText}, tt.input)
			require.Error(t, err)
			assert.Nil(t, content)
			assert.True(t, common.IsParserError(err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_ExtractKeywords(t *testing.T) {
	svc := NewService(zerolog.Nop())
	input := htmlInput("example.com", "<p>We collect your email address and race.</p><script>var gps = 1;</script>")

	content, err := svc.Extract(context.Background(), []models.ExtractorName{models.ExtractorText, models.ExtractorKeywords}, input)
	require.NoError(t, err)

	assert.Equal(t, "We collect your email address and race.", content.Text)
	require.Len(t, content.Keywords, len(CCPATaxonomy))
	assert.Equal(t, []string{"identifiers", "address", "email address", "email"}, content.Keywords[0])
	assert.Equal(t, []string{"geolocation data", NoMatchToken}, content.Keywords[5])
}

func TestService_ExtractKeywordsOnEmptyPage(t *testing.T) {
	svc := NewService(zerolog.Nop())

	content, err := svc.Extract(context.Background(), []models.ExtractorName{models.ExtractorKeywords}, htmlInput("example.com", ""))
	require.NoError(t, err)
	assert.Empty(t, content.Text)
	for _, row := range content.Keywords {
		assert.Equal(t, NoMatchToken, row[1])
	}
}

func TestService_UnknownExtractor(t *testing.T) {
	svc := NewService(zerolog.Nop())

	_, err := svc.Extract(context.Background(), []models.ExtractorName{"summary"}, htmlInput("example.com", "<p>x</p>"))
	require.Error(t, err)

	var parseErr *common.ParserError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "summary", parseErr.Extractor)
}

func TestService_CancelledContext(t *testing.T) {
	svc := NewService(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Extract(ctx, []models.ExtractorName{models.ExtractorText}, htmlInput("example.com", "<p>x</p>"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewInput(t *testing.T) {
	identity, err := models.NewPolicyIdentity("https://Docs.Google.com./document/d/1", stubHasher{})
	require.NoError(t, err)

	payload := &models.SourcePayload{URLType: models.URLTypeHTML}
	input := NewInput(identity, payload)

	assert.Equal(t, "https://Docs.Google.com./document/d/1", input.URL)
	assert.Equal(t, identity.Domain(), input.Domain)
	assert.Same(t, payload, input.Payload)
}

type stubHasher struct{}

func (stubHasher) GenerateHash(string) string { return "0123456789" }
