// Package config holds the site configuration: process-wide constants read
// once per build and passed explicitly into every component. Nothing reads
// configuration ambiently.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	bferrors "blogforge/internal/errors"
)

// DefaultPageSize is the listing pagination size when none is configured.
const DefaultPageSize = 8

// DefaultBaseURL is the placeholder origin used when SITE_BASE_URL is unset.
const DefaultBaseURL = "https://example.com"

// About describes the static informational page.
type About struct {
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Image      string   `yaml:"image"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Site is the immutable site configuration for one build.
type Site struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Author       string   `yaml:"author"`
	Eyebrow      string   `yaml:"eyebrow,omitempty"`
	HeroTitle    string   `yaml:"hero_title,omitempty"`
	HeroSubtitle string   `yaml:"hero_subtitle,omitempty"`
	HeroPanel    []string `yaml:"hero_panel,omitempty"`
	Copyright    string   `yaml:"copyright,omitempty"`
	DefaultImage string   `yaml:"default_image,omitempty"`

	About About `yaml:"about,omitempty"`

	PageSize int `yaml:"page_size,omitempty"`

	ContentDir   string `yaml:"content_dir,omitempty"`
	TemplatesDir string `yaml:"templates_dir,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty"`

	// BaseURL comes from the SITE_BASE_URL environment variable, never from
	// the YAML file, so deployments can re-point a checked-in config.
	BaseURL string `yaml:"-"`
}

// Load reads the site configuration from path, applies defaults, and overlays
// environment-provided values. A missing file is a fatal configuration error.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bferrors.ConfigNotFound(path)
	}

	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, bferrors.ConfigInvalid("yaml parse", err)
	}

	site.applyDefaults()
	site.BaseURL = BaseURLFromEnv()

	if err := site.validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Default returns the built-in configuration used when no site.yaml exists.
func Default() *Site {
	site := &Site{}
	site.applyDefaults()
	site.BaseURL = BaseURLFromEnv()
	return site
}

// BaseURLFromEnv resolves the canonical site origin. It loads .env and
// .env.local first (existing process environment wins) and falls back to a
// placeholder origin so a local build never fails on a missing variable.
func BaseURLFromEnv() string {
	// godotenv never overrides variables already present in the environment.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	base := os.Getenv("SITE_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func (s *Site) applyDefaults() {
	if s.Name == "" {
		s.Name = "Tech Blog"
	}
	if s.Description == "" {
		s.Description = "Practical articles on systems, security and automation."
	}
	if s.Author == "" {
		s.Author = "Diego"
	}
	if s.DefaultImage == "" {
		s.DefaultImage = "assets/images/chip.svg"
	}
	if s.Copyright == "" {
		s.Copyright = fmt.Sprintf("%s - %s", s.Name, s.Author)
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.ContentDir == "" {
		s.ContentDir = "content/posts"
	}
	if s.TemplatesDir == "" {
		s.TemplatesDir = "templates"
	}
	if s.OutputDir == "" {
		s.OutputDir = "."
	}
	if s.About.Title == "" {
		s.About.Title = "About"
	}
	if s.About.Image == "" {
		s.About.Image = "assets/images/author-placeholder.svg"
	}
}

func (s *Site) validate() error {
	if s.PageSize <= 0 {
		return bferrors.ConfigInvalid("page_size must be positive", nil)
	}
	if s.ContentDir == "" {
		return bferrors.ConfigInvalid("content_dir must not be empty", nil)
	}
	return nil
}
