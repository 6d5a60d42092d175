package main

import (
	"fmt"
	"log/slog"
	"os"
)

const starterConfig = `# blogforge site configuration
name: Tech Blog
description: Practical articles on systems, security and automation.
author: Diego
eyebrow: Firmware - Cybersecurity - Embedded Systems
hero_title: Technology. Code. Systems.
hero_subtitle: Practical articles on infrastructure, security and automation.
default_image: assets/images/chip.svg

about:
  title: About
  subtitle: A technical blog focused on systems, security and automation.
  image: assets/images/author-placeholder.svg
  paragraphs:
    - Write something about yourself here.

# page_size: 8
# content_dir: content/posts
# templates_dir: templates
# output_dir: .
`

const starterEnv = `# Canonical site origin used for absolute URLs in the sitemap and metadata.
SITE_BASE_URL=https://example.com
`

// runInit writes a starter configuration and .env next to the content tree.
func runInit(configPath string, force bool) error {
	files := map[string]string{
		configPath: starterConfig,
		".env":     starterEnv,
	}
	for path, content := range files {
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
		slog.Info("wrote starter file", "path", path)
	}
	return nil
}
