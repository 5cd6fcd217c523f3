package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// lineBreaks maps every line boundary character to "\n"
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\v", "\n",
	"\f", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// parseMarkup parses markup with scripting disabled so <noscript> content is
// treated as regular markup, then drops script and style elements.
func parseMarkup(markup string) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(markup), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, err
	}
	doc := goquery.NewDocumentFromNode(root)
	doc.Find("script, style").Remove()
	return doc, nil
}

// VisibleText returns every text node of markup, outside script and style
// elements, joined with single spaces.
func VisibleText(markup string) (string, error) {
	doc, err := parseMarkup(markup)
	if err != nil {
		return "", err
	}
	return joinTextNodes(doc), nil
}

func joinTextNodes(doc *goquery.Document) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// MarkupToText turns markup into readable text: one phrase per line, where
// phrases are separated by line breaks or runs of two spaces in the visible
// text, each trimmed and empty ones dropped.
func MarkupToText(markup string) (string, error) {
	visible, err := VisibleText(markup)
	if err != nil {
		return "", err
	}
	return NormalizeText(visible), nil
}

// NormalizeText applies the line and phrase normalization to already visible text
func NormalizeText(text string) string {
	var phrases []string
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		line = strings.TrimSpace(line)
		for _, phrase := range strings.Split(line, "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				phrases = append(phrases, phrase)
			}
		}
	}
	return strings.Join(phrases, "\n")
}
