package models

// SourcePayload holds everything fetched for one policy URL
type SourcePayload struct {
	URLType     URLType
	ContentType string
	// StaticBytes is the body of the classification request.
	StaticBytes []byte
	// RenderedMarkup is the browser-rendered page, or the decoded static body
	// for types that are not rendered. Nil when nothing was produced.
	RenderedMarkup *string
	Screenshot     []byte
}

// Markup returns the rendered markup or an empty string
func (p *SourcePayload) Markup() string {
	if p == nil || p.RenderedMarkup == nil {
		return ""
	}
	return *p.RenderedMarkup
}

// HasMarkup reports whether rendered markup is present
func (p *SourcePayload) HasMarkup() bool {
	return p != nil && p.RenderedMarkup != nil
}
