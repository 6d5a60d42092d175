package content

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"blogforge/internal/config"
	bferrors "blogforge/internal/errors"
	"blogforge/internal/frontmatter"
	"blogforge/internal/markdown"
)

// wordsPerMinute is the reading speed used for read-time estimation.
const wordsPerMinute = 200

// minReadMinutes is the floor applied to every read-time estimate.
const minReadMinutes = 3

// excerptWords caps a derived excerpt at this many words of stripped body text.
const excerptWords = 32

// dateLayouts are the accepted frontmatter date forms, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Loader reads a directory of Markdown documents and produces normalized
// Documents, newest first.
type Loader struct {
	site      *config.Site
	converter *markdown.Converter

	// Now supplies the default publish date for documents without one.
	Now func() time.Time
}

// NewLoader creates a Loader for the configured content directory.
func NewLoader(site *config.Site) *Loader {
	return &Loader{
		site:      site,
		converter: markdown.NewConverter(),
		Now:       time.Now,
	}
}

// Load reads every *.md file directly inside the content directory, in
// lexicographic filename order (the canonical discovery order), and returns
// the normalized documents sorted by publish date descending. Documents with
// equal dates keep their discovery order.
//
// Documents without a usable title are skipped, not failed. Unparseable dates
// and identifier collisions abort the load.
func (l *Loader) Load() ([]*Document, error) {
	entries, err := os.ReadDir(l.site.ContentDir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("content directory does not exist, building empty site", "dir", l.site.ContentDir)
			return nil, nil
		}
		return nil, bferrors.ContentDirMissing(l.site.ContentDir, err)
	}

	docs := make([]*Document, 0, len(entries))
	bySlug := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(l.site.ContentDir, entry.Name())

		doc, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}

		if other, dup := bySlug[doc.Slug]; dup {
			return nil, bferrors.SlugCollision(doc.Slug, path, other)
		}
		bySlug[doc.Slug] = path

		docs = append(docs, doc)
	}

	// Stable sort keeps discovery order for equal dates.
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Date.After(docs[j].Date)
	})

	return docs, nil
}

// loadFile normalizes a single source file. A nil document with nil error
// means the file was skipped (no usable title).
func (l *Loader) loadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, bferrors.Wrap(err, bferrors.CategoryContent, bferrors.SeverityFatal, "read source file").
			WithContext("file", path)
	}

	header, body, _ := frontmatter.Split(raw)
	meta, err := frontmatter.ParseYAML(header)
	if err != nil {
		slog.Warn("malformed frontmatter, applying defaults", "file", path, "error", err)
	}

	title := strings.TrimSpace(stringField(meta, "title"))
	if title == "" {
		slog.Info("skipping document without title", "file", path)
		return nil, nil
	}

	slug := strings.TrimSpace(stringField(meta, "slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		slug = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	date, err := l.resolveDate(meta, path)
	if err != nil {
		return nil, err
	}

	bodyHTML, err := l.converter.ToHTML(body)
	if err != nil {
		return nil, bferrors.Wrap(err, bferrors.CategoryContent, bferrors.SeverityFatal, "markdown conversion failed").
			WithContext("file", path)
	}

	excerpt := strings.TrimSpace(stringField(meta, "excerpt"))
	if excerpt == "" {
		excerpt = deriveExcerpt(bodyHTML)
	}

	cover := strings.TrimSpace(stringField(meta, "cover_image"))
	if cover == "" {
		cover = l.site.DefaultImage
	}

	author := strings.TrimSpace(stringField(meta, "author"))
	if author == "" {
		author = l.site.Author
	}

	return &Document{
		Title:       title,
		Slug:        slug,
		Date:        date,
		Excerpt:     excerpt,
		CoverImage:  cover,
		Author:      author,
		Tags:        normalizeTags(meta["tags"]),
		BodyHTML:    bodyHTML,
		ReadMinutes: estimateReadTime(string(body)),
		SourcePath:  path,
	}, nil
}

// resolveDate extracts the publish date, defaulting to the current time when
// absent. An unreadable date is fatal: chronological position drives ordering
// and pagination, so guessing one would silently misplace the document.
func (l *Loader) resolveDate(meta map[string]any, path string) (time.Time, error) {
	raw, ok := meta["date"]
	if !ok || raw == nil {
		return l.Now().UTC(), nil
	}

	switch v := raw.(type) {
	case time.Time:
		return v, nil
	default:
		text := strings.TrimSpace(fmt.Sprint(v))
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, nil
			}
		}
		return time.Time{}, bferrors.DateInvalid(path, text, nil)
	}
}

// normalizeTags accepts either a YAML list or a comma-separated string,
// slugifies each entry, and drops empties and duplicates while preserving
// first occurrence order.
func normalizeTags(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		parts = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
	default:
		parts = []string{fmt.Sprint(v)}
	}

	tags := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		tag := Slugify(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// deriveExcerpt takes the first excerptWords words of the tag-stripped body.
func deriveExcerpt(bodyHTML string) string {
	words := strings.Fields(markdown.StripTags(bodyHTML))
	if len(words) > excerptWords {
		words = words[:excerptWords]
	}
	return strings.Join(words, " ")
}

// estimateReadTime computes reading minutes from the raw body word count.
func estimateReadTime(body string) int {
	minutes := int(math.Round(float64(markdown.CountWords(body)) / wordsPerMinute))
	if minutes < minReadMinutes {
		return minReadMinutes
	}
	return minutes
}

// stringField reads a scalar metadata field as a trimmed-to-string value.
// Missing fields yield the empty string.
func stringField(meta map[string]any, key string) string {
	raw, ok := meta[key]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
