// Package paths computes relative addressing for output pages.
//
// Every generated page links to site resources (assets, other pages) through
// paths relative to its own location, so the site can be mounted at any base
// path or served from a sub-directory. The resolution depends only on the
// page's own output location; an off-by-one here would break every page of a
// deep site uniformly, which is why it lives in its own package with its own
// tests.
package paths

import (
	"path"
	"strings"
)

// RelRoot returns the relative path from an output page back to the site
// root, given the page's path relative to the site root (the filename is
// excluded from depth). Pages at the root resolve to ".".
func RelRoot(outputPath string) string {
	return rootForDepth(Depth(outputPath))
}

// Depth returns the number of directory levels an output page sits below the
// site root, excluding the filename itself.
func Depth(outputPath string) int {
	dir := path.Dir(strings.TrimPrefix(path.Clean(outputPath), "/"))
	if dir == "." || dir == "" {
		return 0
	}
	return strings.Count(dir, "/") + 1
}

// Resolve joins a site-root-relative target onto a page's relative root. With
// relRoot "." the target is returned unchanged.
func Resolve(relRoot, target string) string {
	if relRoot == "." || relRoot == "" {
		return target
	}
	return relRoot + "/" + target
}

func rootForDepth(depth int) string {
	if depth == 0 {
		return "."
	}
	parts := make([]string, depth)
	for i := range parts {
		parts[i] = ".."
	}
	return strings.Join(parts, "/")
}
