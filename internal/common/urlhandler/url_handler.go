package urlhandler

import (
	"net/url"
	"strings"

	"github.com/aleister1102/polisnap/internal/common"
)

// URLParts are the components of a policy URL that end up in its metadata record
type URLParts struct {
	Scheme   string
	Domain   string
	Path     string
	Query    string
	Fragment string
}

// ParseURLParts splits rawURL into its components. Domain is the host including
// any port, trimmed of surrounding whitespace, dots and slashes.
func ParseURLParts(rawURL string) (URLParts, error) {
	if strings.TrimSpace(rawURL) == "" {
		return URLParts{}, common.NewValidationError("url", rawURL, "URL is empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return URLParts{}, common.WrapError(err, "could not parse URL '"+rawURL+"'")
	}

	return URLParts{
		Scheme:   parsed.Scheme,
		Domain:   NormalizeDomain(parsed.Host),
		Path:     parsed.Path,
		Query:    parsed.RawQuery,
		Fragment: parsed.Fragment,
	}, nil
}

// NormalizeDomain trims whitespace, then leading and trailing dots, then slashes
func NormalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	domain = strings.Trim(domain, ".")
	return strings.Trim(domain, "/")
}

// ValidateURL checks that rawURL is an absolute http(s) URL with a host
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return common.WrapError(err, "could not parse URL '"+rawURL+"'")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return common.NewValidationError("url", rawURL, "scheme must be http or https")
	}
	if parsed.Host == "" {
		return common.NewValidationError("url", rawURL, "host is missing")
	}
	return nil
}
