package urlhandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURLParts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected URLParts
		wantErr  bool
	}{
		{
			name:  "full url",
			input: "https://www.example.com/legal/privacy?lang=en#top",
			expected: URLParts{
				Scheme:   "https",
				Domain:   "www.example.com",
				Path:     "/legal/privacy",
				Query:    "lang=en",
				Fragment: "top",
			},
		},
		{
			name:  "host with port keeps port",
			input: "http://localhost:8080/policy",
			expected: URLParts{
				Scheme: "http",
				Domain: "localhost:8080",
				Path:   "/policy",
			},
		},
		{
			name:  "trailing dot on host is trimmed",
			input: "https://example.com./privacy",
			expected: URLParts{
				Scheme: "https",
				Domain: "example.com",
				Path:   "/privacy",
			},
		},
		{
			name:    "empty url",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "unparseable url",
			input:   "http://[::1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := ParseURLParts(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parts)
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "example.com", NormalizeDomain(" .example.com./ "))
	assert.Equal(t, "docs.google.com", NormalizeDomain("docs.google.com"))
	assert.Equal(t, "", NormalizeDomain("./"))
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://example.com/privacy"))

	var validationErr *common.ValidationError
	assert.ErrorAs(t, ValidateURL("ftp://example.com"), &validationErr)
	assert.ErrorAs(t, ValidateURL("https:///nohost"), &validationErr)
}

func TestDedupeTargets(t *testing.T) {
	lines := []string{
		"https://a.example/privacy",
		"",
		"# comment line",
		"  https://b.example/privacy  ",
		"https://a.example/privacy",
		"https://c.example/p https://b.example/privacy",
	}

	assert.Equal(t, []string{
		"https://a.example/privacy",
		"https://b.example/privacy",
		"https://c.example/p",
	}, DedupeTargets(lines))
}

func TestTargetManager_LoadTargets(t *testing.T) {
	tm := NewTargetManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://a.example\n\nhttps://a.example\nhttps://b.example\n"), 0644))

	targets, err := tm.LoadTargets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, targets)
}

func TestTargetManager_LoadTargetsMissingFile(t *testing.T) {
	tm := NewTargetManager(zerolog.Nop())

	_, err := tm.LoadTargets(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to load URLs from file")

	_, err = tm.LoadTargets("")
	assert.Error(t, err)
}
