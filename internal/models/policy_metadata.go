package models

// PolicyMetadata is the content of the .meta file of a dated file-set
type PolicyMetadata struct {
	LastScraped string  `json:"last_scraped"`
	URL         string  `json:"url"`
	Scheme      string  `json:"scheme"`
	Domain      string  `json:"domain"`
	Path        string  `json:"path"`
	Query       string  `json:"query"`
	Fragment    string  `json:"fragment"`
	Hash        string  `json:"hash"`
	Type        URLType `json:"type"`
	ContentType string  `json:"content_type,omitempty"`
	HTMLMD5     string  `json:"html_md5,omitempty"`
}

// NewPolicyMetadata fills a metadata record from the identity and run details
func NewPolicyMetadata(identity PolicyIdentity, dateStamp string, payload *SourcePayload, htmlMD5 string) PolicyMetadata {
	meta := PolicyMetadata{
		LastScraped: dateStamp,
		URL:         identity.URL(),
		Scheme:      identity.Scheme(),
		Domain:      identity.Domain(),
		Path:        identity.Path(),
		Query:       identity.Query(),
		Fragment:    identity.Fragment(),
		Hash:        identity.Hash(),
		HTMLMD5:     htmlMD5,
	}
	if payload != nil {
		meta.Type = payload.URLType
		meta.ContentType = payload.ContentType
	}
	return meta
}
