// Package taxonomy aggregates documents into tag buckets and ranks tags by
// usage. Tags are derived from document metadata, never authored directly, so
// a tag with zero documents cannot exist.
package taxonomy

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"blogforge/internal/content"
)

var titleCaser = cases.Title(language.English)

// Tag is one taxonomy bucket.
type Tag struct {
	Slug  string
	Label string
	Count int

	// Documents holds references to member documents in document order (the
	// canonical date-descending order of the build, not insertion-by-tag).
	Documents []*content.Document
}

// PagePath returns the site-root-relative output path of the tag's page.
func (t *Tag) PagePath() string {
	return "tag/" + t.Slug + "/index.html"
}

// Index is the result of one aggregation pass: tag buckets plus the order in
// which tags were first encountered.
type Index struct {
	bySlug map[string]*Tag
	// firstSeen records aggregation encounter order, the tiebreak for ranking.
	firstSeen []string
}

// Aggregate performs a single pass over the ordered document sequence,
// counting tag membership and collecting member documents. Membership lists
// preserve the incoming document order; the first-seen order of tags follows
// document order, then tag order within a document.
func Aggregate(docs []*content.Document) *Index {
	idx := &Index{bySlug: make(map[string]*Tag)}
	for _, doc := range docs {
		for _, slug := range doc.Tags {
			bucket, ok := idx.bySlug[slug]
			if !ok {
				bucket = &Tag{Slug: slug, Label: Label(slug)}
				idx.bySlug[slug] = bucket
				idx.firstSeen = append(idx.firstSeen, slug)
			}
			bucket.Count++
			bucket.Documents = append(bucket.Documents, doc)
		}
	}
	return idx
}

// Get returns the bucket for slug, or nil when no document carries the tag.
func (idx *Index) Get(slug string) *Tag {
	return idx.bySlug[slug]
}

// Len returns the number of distinct tags.
func (idx *Index) Len() int {
	return len(idx.firstSeen)
}

// Ranked returns all tags sorted by document count descending. Tags with
// equal counts retain their first-seen relative order; the sort is explicitly
// stable so the tiebreak is an invariant, not an accident of map iteration.
func (idx *Index) Ranked() []*Tag {
	ranked := make([]*Tag, 0, len(idx.firstSeen))
	for _, slug := range idx.firstSeen {
		ranked = append(ranked, idx.bySlug[slug])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Label derives the human-readable form of a tag slug: separators become
// spaces and each word is title-cased. The derivation is deterministic so the
// label never needs storing.
func Label(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
