package models

// KeywordTable has one row per taxonomy category: the category name followed
// by the matched terms, or by "N/A" when nothing matched.
type KeywordTable [][]string

// ExtractedContent is the persisted result of all requested extractors
type ExtractedContent struct {
	Text     string       `json:"text,omitempty"`
	Keywords KeywordTable `json:"keywords,omitempty"`
}

// HasText reports whether the text extractor produced output
func (c *ExtractedContent) HasText() bool {
	return c != nil && c.Text != ""
}

// IsEmpty reports whether no extractor output is present
func (c *ExtractedContent) IsEmpty() bool {
	return c == nil || (c.Text == "" && len(c.Keywords) == 0)
}
