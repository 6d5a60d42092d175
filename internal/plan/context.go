// Package plan decides the complete set of output pages for one build and
// assembles the typed data context each page's template consumes.
package plan

import (
	"html/template"

	"blogforge/internal/config"
	"blogforge/internal/content"
	"blogforge/internal/paths"
	"blogforge/internal/taxonomy"
)

// Meta carries the SEO head data every page includes.
type Meta struct {
	Title       string
	Description string
	Canonical   string // absolute URL
	OGType      string
	Image       string // absolute URL, may be empty
	// JSONLD is a serialized structured-data payload. Typed as template.JS so
	// the templating engine embeds it verbatim inside the ld+json script tag.
	JSONLD template.JS
}

// Nav holds the navigation links resolved for one page's depth.
type Nav struct {
	Home       string
	Articles   string
	Categories string
	About      string
	Contact    string
	Active     string
}

// Base is the context shared by every page kind.
type Base struct {
	Site      *config.Site
	AssetBase string
	Nav       Nav
	Meta      Meta
}

// TagLink is a tag reference inside a post card.
type TagLink struct {
	Slug  string
	Label string
	URL   string
}

// TagBadge is a tag entry on the home and categories pages.
type TagBadge struct {
	Label string
	Count int
	URL   string
}

// PostView is a document projected for listing cards, with all URLs resolved
// for the consuming page's depth.
type PostView struct {
	Title       string
	Excerpt     string
	Date        string
	Author      string
	ReadMinutes int
	ImageURL    string
	ImageAlt    string
	URL         string
	Tags        []TagLink
}

// ArticleView extends PostView with the rendered body for detail pages.
type ArticleView struct {
	PostView
	ContentHTML template.HTML
}

// Pagination is the listing-page navigation block. It is nil on single-page
// listings; PrevURL is empty on page 1 and NextURL on the last page.
type Pagination struct {
	Current int
	Total   int
	PrevURL string
	NextURL string
}

// HomeContext feeds the home page template.
type HomeContext struct {
	Base
	Latest    []PostView
	Trending  []PostView
	Tags      []TagBadge
	HeroPanel []string
}

// ListingContext feeds one paginated articles page.
type ListingContext struct {
	Base
	PageTitle    string
	PageSubtitle string
	Posts        []PostView
	Pagination   *Pagination
}

// CategoriesContext feeds the taxonomy index page.
type CategoriesContext struct {
	Base
	Tags []TagBadge
}

// TagInfo is the header block of a tag page.
type TagInfo struct {
	Label string
	Count int
}

// TagContext feeds one tag page.
type TagContext struct {
	Base
	Tag   TagInfo
	Posts []PostView
}

// ArticleContext feeds one document detail page.
type ArticleContext struct {
	Base
	Post ArticleView
}

// AboutContext feeds the static informational page.
type AboutContext struct {
	Base
	Title      string
	Subtitle   string
	Image      string
	Paragraphs []string
}

// navFor resolves the navigation links for a page at the given relative root.
func navFor(relRoot, active string) Nav {
	return Nav{
		Home:       paths.Resolve(relRoot, "index.html"),
		Articles:   paths.Resolve(relRoot, "articles/index.html"),
		Categories: paths.Resolve(relRoot, "categories/index.html"),
		About:      paths.Resolve(relRoot, "chi-siamo.html"),
		Contact:    paths.Resolve(relRoot, "index.html") + "#contact",
		Active:     active,
	}
}

// postView projects a document for a page at the given relative root.
func postView(doc *content.Document, relRoot string) PostView {
	tags := make([]TagLink, 0, len(doc.Tags))
	for _, slug := range doc.Tags {
		tags = append(tags, TagLink{
			Slug:  slug,
			Label: taxonomy.Label(slug),
			URL:   paths.Resolve(relRoot, "tag/"+slug+"/index.html"),
		})
	}
	return PostView{
		Title:       doc.Title,
		Excerpt:     doc.Excerpt,
		Date:        doc.DateString(),
		Author:      doc.Author,
		ReadMinutes: doc.ReadMinutes,
		ImageURL:    paths.Resolve(relRoot, doc.CoverImage),
		ImageAlt:    doc.Title,
		URL:         paths.Resolve(relRoot, doc.DetailPath()),
		Tags:        tags,
	}
}

// tagBadges projects the ranked tag list for a page at the given relative root.
func tagBadges(ranked []*taxonomy.Tag, relRoot string) []TagBadge {
	badges := make([]TagBadge, 0, len(ranked))
	for _, tag := range ranked {
		badges = append(badges, TagBadge{
			Label: tag.Label,
			Count: tag.Count,
			URL:   paths.Resolve(relRoot, tag.PagePath()),
		})
	}
	return badges
}
