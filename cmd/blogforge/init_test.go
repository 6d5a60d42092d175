package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"blogforge/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestRunInit_WritesStarterFilesOnce(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	configPath := filepath.Join(dir, "site.yaml")

	require.NoError(t, runInit(configPath, false))

	_, err := os.Stat(configPath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, ".env"))
	require.NoError(t, err)

	// Second run without --force refuses to clobber.
	require.Error(t, runInit(configPath, false))
	require.NoError(t, runInit(configPath, true))
}

func TestRunInit_StarterConfigIsLoadable(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	configPath := filepath.Join(dir, "site.yaml")

	require.NoError(t, runInit(configPath, false))

	site, err := config.Load(configPath)
	require.NoError(t, err)
	require.Equal(t, "Tech Blog", site.Name)
	require.Equal(t, config.DefaultPageSize, site.PageSize)
}
