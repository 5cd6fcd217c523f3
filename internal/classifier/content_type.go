package classifier

import (
	"strings"

	"github.com/aleister1102/polisnap/internal/models"
)

// ClassifyContentType maps a Content-Type header value to a URLType.
// PDF is checked before HTML and plain text, matching is case-insensitive.
func ClassifyContentType(contentType string) models.URLType {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case ct == "":
		return models.URLTypeUnknown
	case strings.Contains(ct, "application/pdf"):
		return models.URLTypePDF
	case strings.Contains(ct, "text/html"):
		return models.URLTypeHTML
	case strings.Contains(ct, "text/plain"):
		return models.URLTypePlain
	default:
		return models.URLTypeOther
	}
}
