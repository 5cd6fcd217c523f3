package models

import (
	"strings"

	"github.com/aleister1102/polisnap/internal/common/urlhandler"
)

// URLHasher produces the fixed-length identifier for a URL
type URLHasher interface {
	GenerateHash(url string) string
}

// PolicyIdentity is the immutable key derived from a policy URL
type PolicyIdentity struct {
	url      string
	scheme   string
	domain   string
	path     string
	query    string
	fragment string
	hash     string
}

// NewPolicyIdentity derives the identity of rawURL
func NewPolicyIdentity(rawURL string, hasher URLHasher) (PolicyIdentity, error) {
	parts, err := urlhandler.ParseURLParts(rawURL)
	if err != nil {
		return PolicyIdentity{}, err
	}

	return PolicyIdentity{
		url:      rawURL,
		scheme:   parts.Scheme,
		domain:   parts.Domain,
		path:     parts.Path,
		query:    parts.Query,
		fragment: parts.Fragment,
		hash:     hasher.GenerateHash(rawURL),
	}, nil
}

func (p PolicyIdentity) URL() string      { return p.url }
func (p PolicyIdentity) Scheme() string   { return p.scheme }
func (p PolicyIdentity) Domain() string   { return p.domain }
func (p PolicyIdentity) Path() string     { return p.path }
func (p PolicyIdentity) Query() string    { return p.query }
func (p PolicyIdentity) Fragment() string { return p.fragment }
func (p PolicyIdentity) Hash() string     { return p.hash }

// DirectoryKey is the per-policy output directory name: the domain with dots
// replaced by underscores, then an underscore and the hash. A port stays as
// "host_tld:port" so existing archives resolve to the same directory.
func (p PolicyIdentity) DirectoryKey() string {
	domainKey := strings.ReplaceAll(p.domain, ".", "_")
	return domainKey + "_" + p.hash
}
