package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MinimalFile_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: My Blog\nauthor: Ada\n"), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "My Blog", site.Name)
	require.Equal(t, "Ada", site.Author)
	require.Equal(t, DefaultPageSize, site.PageSize)
	require.Equal(t, "content/posts", site.ContentDir)
	require.Equal(t, "assets/images/chip.svg", site.DefaultImage)
	require.NotEmpty(t, site.BaseURL)
}

func TestLoad_MissingFile_ReturnsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML_ReturnsConfigError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestBaseURLFromEnv_Unset_UsesPlaceholder(t *testing.T) {
	t.Setenv("SITE_BASE_URL", "")

	require.Equal(t, DefaultBaseURL, BaseURLFromEnv())
}

func TestBaseURLFromEnv_TrailingSlash_Trimmed(t *testing.T) {
	t.Setenv("SITE_BASE_URL", "https://blog.example.org/")

	require.Equal(t, "https://blog.example.org", BaseURLFromEnv())
}

func TestDefault_PageSizeAndDirsPopulated(t *testing.T) {
	site := Default()
	require.Equal(t, DefaultPageSize, site.PageSize)
	require.Equal(t, "templates", site.TemplatesDir)
	require.Equal(t, ".", site.OutputDir)
}
