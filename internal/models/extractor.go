package models

import "strings"

// ExtractorName identifies one content extractor
type ExtractorName string

const (
	ExtractorText     ExtractorName = "text"
	ExtractorKeywords ExtractorName = "keywords"
)

// KnownExtractors lists every extractor in the order they are documented
var KnownExtractors = []ExtractorName{ExtractorText, ExtractorKeywords}

// IsKnownExtractor reports whether name is a supported extractor
func IsKnownExtractor(name string) bool {
	for _, known := range KnownExtractors {
		if string(known) == strings.ToLower(strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

// ToExtractorNames converts raw names keeping caller order and dropping blanks
func ToExtractorNames(names []string) []ExtractorName {
	result := make([]ExtractorName, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		result = append(result, ExtractorName(name))
	}
	return result
}
