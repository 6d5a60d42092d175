// Package markdown renders Markdown bodies to HTML and provides the plain-text
// helpers (tag stripping, word counting) the loader needs for excerpts and
// read-time estimation.
//
// The converter is the pipeline's markup collaborator: callers hand it a raw
// body and receive HTML back without inspecting markup semantics.
package markdown

import (
	"bytes"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	xhtml "golang.org/x/net/html"
)

// Converter turns raw Markdown bodies into HTML fragments.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM tables, fenced code blocks and
// syntax highlighting enabled.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Converter{md: md}
}

// ToHTML converts a Markdown body to an HTML fragment.
func (c *Converter) ToHTML(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// StripTags removes markup from an HTML fragment, replacing each tag with a
// single space so adjacent words do not run together.
func StripTags(html string) string {
	var b strings.Builder
	tz := xhtml.NewTokenizer(strings.NewReader(html))
	for {
		switch tz.Next() {
		case xhtml.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case xhtml.TextToken:
			b.Write(tz.Text())
		default:
			b.WriteByte(' ')
		}
	}
}

// CountWords reports the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
