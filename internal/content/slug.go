package content

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphenRuns = regexp.MustCompile(`-+`)
)

// Slugify normalizes text into a URL-safe identifier: lowercase, characters
// outside [a-z0-9\s-] stripped, whitespace runs and hyphen runs collapsed to a
// single hyphen, leading and trailing hyphens trimmed.
//
// The result matches [a-z0-9-]* and may be empty when the input contains no
// usable characters.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
