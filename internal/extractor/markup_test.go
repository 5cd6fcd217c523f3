package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkupToText(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "text nodes joined with spaces",
			markup:   "<html><body><h1>Privacy Policy</h1><p>We collect data.</p></body></html>",
			expected: "Privacy Policy We collect data.",
		},
		{
			name:     "source line breaks kept",
			markup:   "<h1>Privacy Policy</h1>\n<p>We collect data.</p>",
			expected: "Privacy Policy\nWe collect data.",
		},
		{
			name:     "script and style removed",
			markup:   "<html><head><style>p{color:red}</style><script>var x = 1;</script></head><body><p>Visible</p></body></html>",
			expected: "Visible",
		},
		{
			name:     "double spaces split phrases",
			markup:   "<p>First  Second</p>",
			expected: "First\nSecond",
		},
		{
			name:     "blank lines dropped",
			markup:   "<div>\n\n   One\n\n\t\n Two  \n</div>",
			expected: "One\nTwo",
		},
		{
			name:     "comments ignored",
			markup:   "<p>Kept<!-- hidden --></p>",
			expected: "Kept",
		},
		{
			name:     "noscript content kept",
			markup:   "<body><noscript><p>Enable JS</p></noscript></body>",
			expected: "Enable JS",
		},
		{
			name:     "empty markup",
			markup:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := MarkupToText(tt.markup)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a\nb\nc\nd", NormalizeText("a\r\nb\rc d"))
	assert.Equal(t, "x y", NormalizeText("  x y  "))
	assert.Equal(t, "", NormalizeText(" \n \t "))
}

func TestVisibleText(t *testing.T) {
	text, err := VisibleText("<p>email</p><script>race</script><p>address</p>")
	require.NoError(t, err)
	assert.Contains(t, text, "email")
	assert.Contains(t, text, "address")
	assert.NotContains(t, text, "race")
}
