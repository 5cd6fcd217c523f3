package extractor

import "strings"

const (
	// GoogleDocsDomain is the host whose pages embed their text as JSON chunks
	GoogleDocsDomain = "docs.google.com"

	googleDocsChunkMarker = `"s":"`
	googleDocsChunkEnd    = `"},`
)

var googleDocsEscapes = strings.NewReplacer(`\n`, "\n", `\u000b`, "\n")

// IsGoogleDocs reports whether markup should be recombined from embedded chunks
func IsGoogleDocs(domain, markup string) bool {
	return domain == GoogleDocsDomain && strings.Contains(markup, googleDocsChunkMarker)
}

// RecombineGoogleDocs rebuilds document text from the "s" string chunks that
// Google Docs embeds in its page scripts. Everything before the first marker
// is dropped and each chunk ends at the first `"},`.
func RecombineGoogleDocs(markup string) string {
	chunks := strings.Split(markup, googleDocsChunkMarker)
	if len(chunks) < 2 {
		return ""
	}

	var b strings.Builder
	for _, chunk := range chunks[1:] {
		if end := strings.Index(chunk, googleDocsChunkEnd); end >= 0 {
			chunk = chunk[:end]
		}
		b.WriteString(googleDocsEscapes.Replace(chunk))
	}
	return strings.TrimSpace(b.String())
}
