// Package render binds page contexts to named templates and writes the
// result to the output tree. It is a thin adapter over html/template, which
// the rest of the pipeline treats as a black box: a template name plus a data
// context in, rendered text out.
package render

import (
	"bytes"
	"os"
	"path/filepath"

	"html/template"

	bferrors "blogforge/internal/errors"
)

// Engine renders named templates with typed page contexts.
//
// Auto-escaping applies to every untrusted string field; fields that already
// contain HTML (the document body, JSON-LD payloads) are passed through via
// template.HTML / template.JS typing at context construction.
type Engine struct {
	templates *template.Template
}

// NewEngine parses every *.html template in dir, including partials. A
// missing or unparseable template set is fatal: there is no degraded
// rendering mode.
func NewEngine(dir string) (*Engine, error) {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, bferrors.TemplateMissing(filepath.Join(dir, "*.html"), err)
	}
	return &Engine{templates: tmpl}, nil
}

// Render executes the named template with data and returns the output text.
func (e *Engine) Render(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", bferrors.TemplateMissing(name, nil)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", bferrors.RenderFailed(name, "", err)
	}
	return buf.String(), nil
}

// WriteFile writes content to path, creating intermediate directories and
// overwriting any pre-existing file. Exactly one write happens per planned
// page; a failure aborts the build.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return bferrors.WriteFailed(path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return bferrors.WriteFailed(path, err)
	}
	return nil
}
