// Package export serializes the computed document and tag index to JSON data
// files and emits the crawl-policy and sitemap artifacts. Everything here is
// a pure serialization of state already finalized by the loader, aggregator
// and planner.
package export

import (
	"encoding/json"
	"path/filepath"

	"blogforge/internal/content"
	bferrors "blogforge/internal/errors"
	"blogforge/internal/plan"
	"blogforge/internal/render"
	"blogforge/internal/taxonomy"
)

const (
	dataDir      = "data"
	postsFile    = "posts.json"
	tagsFile     = "tags.json"
	postsVersion = 2
	tagsVersion  = 1
)

// PostEntry is one row of the machine-readable document index.
type PostEntry struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Date        string   `json:"date"`
	ReadMinutes int      `json:"read_minutes"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Path        string   `json:"path"`
	Slug        string   `json:"slug"`
}

// TagEntry is one row of the machine-readable tag index.
type TagEntry struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Path  string `json:"path"`
}

type postsPayload struct {
	Version int         `json:"version"`
	Posts   []PostEntry `json:"posts"`
}

type tagsPayload struct {
	Version int        `json:"version"`
	Tags    []TagEntry `json:"tags"`
}

// Emitter writes the data files and SEO artifacts under outputDir.
type Emitter struct {
	outputDir string
	baseURL   string
}

// NewEmitter creates an Emitter rooted at outputDir with the canonical site
// origin used for sitemap URLs and the robots sitemap pointer.
func NewEmitter(outputDir, baseURL string) *Emitter {
	return &Emitter{outputDir: outputDir, baseURL: baseURL}
}

// WriteDocumentIndex emits data/posts.json in canonical document order.
func (e *Emitter) WriteDocumentIndex(docs []*content.Document) error {
	entries := make([]PostEntry, 0, len(docs))
	for _, doc := range docs {
		tags := doc.Tags
		if tags == nil {
			tags = []string{}
		}
		entries = append(entries, PostEntry{
			Title:       doc.Title,
			Summary:     doc.Excerpt,
			Date:        doc.DateString(),
			ReadMinutes: doc.ReadMinutes,
			Author:      doc.Author,
			Tags:        tags,
			Image:       doc.CoverImage,
			Path:        doc.DetailPath(),
			Slug:        doc.Slug,
		})
	}
	return e.writeJSON(filepath.Join(dataDir, postsFile), postsPayload{Version: postsVersion, Posts: entries})
}

// WriteTagIndex emits data/tags.json in ranked tag order.
func (e *Emitter) WriteTagIndex(ranked []*taxonomy.Tag) error {
	entries := make([]TagEntry, 0, len(ranked))
	for _, tag := range ranked {
		entries = append(entries, TagEntry{
			Tag:   tag.Slug,
			Label: tag.Label,
			Count: tag.Count,
			Path:  tag.PagePath(),
		})
	}
	return e.writeJSON(filepath.Join(dataDir, tagsFile), tagsPayload{Version: tagsVersion, Tags: entries})
}

// WriteRobots emits an allow-all crawl policy pointing at the sitemap.
func (e *Emitter) WriteRobots() error {
	robots := "User-agent: *\nAllow: /\nSitemap: " + e.baseURL + "/sitemap.xml\n"
	return render.WriteFile(filepath.Join(e.outputDir, "robots.txt"), []byte(robots))
}

// WriteSitemap emits one URL entry per planned page, in plan order.
func (e *Emitter) WriteSitemap(pages []plan.Page) error {
	sm := newSitemap()
	for _, page := range pages {
		sm.add(e.baseURL+page.Canonical, page.Lastmod)
	}
	data, err := sm.encode()
	if err != nil {
		return bferrors.Wrap(err, bferrors.CategoryInternal, bferrors.SeverityFatal, "sitemap serialization failed")
	}
	return render.WriteFile(filepath.Join(e.outputDir, "sitemap.xml"), data)
}

func (e *Emitter) writeJSON(relPath string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return bferrors.Wrap(err, bferrors.CategoryInternal, bferrors.SeverityFatal, "index serialization failed").
			WithContext("file", relPath)
	}
	data = append(data, '\n')
	return render.WriteFile(filepath.Join(e.outputDir, relPath), data)
}
