package fetcher

import (
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// fallbackEncoding is what charset.DetermineEncoding reports when nothing
// declared an encoding and the body is not valid UTF-8.
const fallbackEncoding = "windows-1252"

// DecodeText converts body to UTF-8 using the charset from contentType, a BOM
// or a sniffed meta tag. Without a declaration the body is read as UTF-8. It
// never fails: undecodable input is replaced with U+FFFD.
func DecodeText(body []byte, contentType string) string {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if !certain && name == fallbackEncoding {
		return strings.ToValidUTF8(string(body), "\uFFFD")
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return strings.ToValidUTF8(string(body), "\uFFFD")
	}
	return strings.ToValidUTF8(string(decoded), "\uFFFD")
}
