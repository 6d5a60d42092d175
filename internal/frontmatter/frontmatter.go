// Package frontmatter splits a source document into its YAML metadata header
// and Markdown body.
//
// The pipeline is deliberately tolerant here: a document without a header, or
// with a malformed one, still flows through the build with defaulted metadata.
package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, or the closing
// delimiter is missing, had is false and body is the full input. Split never
// fails; malformed headers degrade to body-only documents.
func Split(content []byte) (frontmatter []byte, body []byte, had bool) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false
	}

	rest := content[len(open):]

	// Empty header: the closing delimiter follows immediately.
	if bytes.HasPrefix(rest, open) {
		return []byte{}, trimLeadingBlank(rest[len(open):]), true
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Closing delimiter may terminate the file without a trailing newline.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)+len(nl)], []byte{}, true
		}
		return nil, content, false
	}

	fm := rest[:idx+len(nl)]
	return fm, trimLeadingBlank(rest[idx+len(closeSeq):]), true
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
//
// A nil map is never returned; on parse failure the error is reported alongside
// an empty map so callers can apply defaults and keep the document.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return map[string]any{}, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}

// trimLeadingBlank drops blank lines between the closing delimiter and the body.
func trimLeadingBlank(body []byte) []byte {
	return bytes.TrimLeft(body, "\r\n")
}
