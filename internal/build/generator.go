// Package build sequences one complete site build: load, aggregate, plan,
// render, export. The build is a single synchronous pass with a hard barrier
// between computing the document/tag model and writing any output.
package build

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"blogforge/internal/config"
	"blogforge/internal/content"
	"blogforge/internal/export"
	"blogforge/internal/metrics"
	"blogforge/internal/plan"
	"blogforge/internal/render"
	"blogforge/internal/taxonomy"
)

// Result summarizes one completed build.
type Result struct {
	BuildID   string
	Documents int
	Pages     int
	Tags      int
	Duration  time.Duration
}

// Generator drives one complete build per invocation. Each invocation is a
// fresh recomputation from source files; with unchanged sources the output is
// byte-identical apart from build-stamped lastmod dates.
type Generator struct {
	site     *config.Site
	recorder metrics.Recorder

	// Now is injectable for deterministic builds in tests.
	Now func() time.Time
}

// NewGenerator creates a Generator for the given site configuration.
func NewGenerator(site *config.Site) *Generator {
	return &Generator{
		site:     site,
		recorder: metrics.NoopRecorder{},
		Now:      time.Now,
	}
}

// SetRecorder injects a metrics recorder. Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// Build runs the full pipeline and writes every artifact under the configured
// output directory. The first fatal error aborts the build; partial output on
// disk is acceptable because a re-run regenerates everything.
func (g *Generator) Build() (*Result, error) {
	buildID := uuid.NewString()[:8]
	start := g.Now()
	slog.Info("build starting", "build_id", buildID, "content_dir", g.site.ContentDir, "output_dir", g.site.OutputDir)

	// Compute phase: the complete document and tag model is finalized before
	// a single byte of output is written. Listing pages, tag pages and the
	// sitemap all need the full document set.
	var docs []*content.Document
	err := g.stage(buildID, "load", func() error {
		loader := content.NewLoader(g.site)
		loader.Now = g.Now
		var err error
		docs, err = loader.Load()
		return err
	})
	if err != nil {
		return nil, g.fail(buildID, err)
	}

	var tags *taxonomy.Index
	_ = g.stage(buildID, "aggregate", func() error {
		tags = taxonomy.Aggregate(docs)
		return nil
	})

	var pages []plan.Page
	_ = g.stage(buildID, "plan", func() error {
		pages = plan.NewPlanner(g.site, docs, tags, start).Plan()
		return nil
	})

	// Render phase.
	err = g.stage(buildID, "render", func() error {
		engine, err := render.NewEngine(g.site.TemplatesDir)
		if err != nil {
			return err
		}
		for _, page := range pages {
			out, err := engine.Render(page.Template, page.Data)
			if err != nil {
				return err
			}
			if err := render.WriteFile(filepath.Join(g.site.OutputDir, page.OutputPath), []byte(out)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, g.fail(buildID, err)
	}

	err = g.stage(buildID, "export", func() error {
		emitter := export.NewEmitter(g.site.OutputDir, g.site.BaseURL)
		if err := emitter.WriteDocumentIndex(docs); err != nil {
			return err
		}
		if err := emitter.WriteTagIndex(tags.Ranked()); err != nil {
			return err
		}
		if err := emitter.WriteRobots(); err != nil {
			return err
		}
		return emitter.WriteSitemap(pages)
	})
	if err != nil {
		return nil, g.fail(buildID, err)
	}

	result := &Result{
		BuildID:   buildID,
		Documents: len(docs),
		Pages:     len(pages),
		Tags:      tags.Len(),
		Duration:  time.Since(start),
	}

	g.recorder.SetDocumentsLoaded(result.Documents)
	g.recorder.SetPagesRendered(result.Pages)
	g.recorder.SetTagsIndexed(result.Tags)
	g.recorder.ObserveBuildDuration(result.Duration)
	g.recorder.IncBuildOutcome("success")

	slog.Info("build complete",
		"build_id", buildID,
		"documents", result.Documents,
		"pages", result.Pages,
		"tags", result.Tags,
		"duration", result.Duration.Round(time.Millisecond),
	)
	return result, nil
}

func (g *Generator) stage(buildID, name string, fn func() error) error {
	started := time.Now()
	err := fn()
	elapsed := time.Since(started)
	g.recorder.ObserveStageDuration(name, elapsed)
	if err != nil {
		slog.Error("stage failed", "build_id", buildID, "stage", name, "error", err)
		return err
	}
	slog.Debug("stage complete", "build_id", buildID, "stage", name, "duration", elapsed.Round(time.Millisecond))
	return nil
}

func (g *Generator) fail(buildID string, err error) error {
	g.recorder.IncBuildOutcome("failed")
	slog.Error("build failed", "build_id", buildID, "error", err)
	return err
}
