// Package content loads source documents and normalizes them into the
// fully-defaulted Document model every downstream component consumes.
package content

import (
	"time"
)

// Document is one content item after loading and normalization.
//
// A Document is constructed once per source file and never mutated afterwards;
// every field is fully defaulted by the loader so no consumer needs inline
// fallback logic.
type Document struct {
	Title       string
	Slug        string
	Date        time.Time
	Excerpt     string
	CoverImage  string
	Author      string
	Tags        []string
	BodyHTML    string
	ReadMinutes int

	// SourcePath is the file the document came from, kept for diagnostics.
	SourcePath string
}

// DateString returns the document's publish date in YYYY-MM-DD form, the
// format used in templates, exports and the sitemap.
func (d *Document) DateString() string {
	return d.Date.Format("2006-01-02")
}

// DetailPath returns the site-root-relative output path of the document's
// detail page.
func (d *Document) DetailPath() string {
	return "article/" + d.Slug + "/index.html"
}
