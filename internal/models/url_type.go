package models

import (
	"fmt"
	"strings"
)

// URLType is the content kind a policy URL resolved to
type URLType int

const (
	URLTypeUnknown URLType = iota
	URLTypeHTML
	URLTypePDF
	URLTypePlain
	URLTypeOther
)

var urlTypeNames = map[URLType]string{
	URLTypeUnknown: "unknown",
	URLTypeHTML:    "html",
	URLTypePDF:     "pdf",
	URLTypePlain:   "plain",
	URLTypeOther:   "other",
}

// String returns the persisted name of the type
func (t URLType) String() string {
	if name, ok := urlTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("URLType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler
func (t URLType) MarshalText() ([]byte, error) {
	if _, ok := urlTypeNames[t]; !ok {
		return nil, fmt.Errorf("invalid url type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *URLType) UnmarshalText(text []byte) error {
	parsed, err := ParseURLType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseURLType converts a persisted name back to a URLType
func ParseURLType(name string) (URLType, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for t, n := range urlTypeNames {
		if n == lowered {
			return t, nil
		}
	}
	return URLTypeUnknown, fmt.Errorf("unknown url type %q", name)
}

// NeedsRendering reports whether the type is loaded in a headless browser
func (t URLType) NeedsRendering() bool {
	switch t {
	case URLTypeHTML, URLTypePDF, URLTypeOther:
		return true
	case URLTypePlain, URLTypeUnknown:
		return false
	default:
		return false
	}
}
