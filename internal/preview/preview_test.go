package preview

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"blogforge/internal/config"
)

func previewSite(t *testing.T) *config.Site {
	t.Helper()
	site := config.Default()
	site.OutputDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(site.OutputDir, "index.html"), []byte("<html>home</html>"), 0o644))
	return site
}

func TestHandler_ServesBuiltSite(t *testing.T) {
	handler := newHandler(previewSite(t), prom.NewRegistry(), &buildStatus{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "home")
}

func TestHandler_ExposesMetricsEndpoint(t *testing.T) {
	handler := newHandler(previewSite(t), prom.NewRegistry(), &buildStatus{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthz_ReflectsLastBuildOutcome(t *testing.T) {
	status := &buildStatus{}
	handler := newHandler(previewSite(t), prom.NewRegistry(), status)

	status.record(nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	status.record(errors.New("template exploded"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "template exploded")
}

func TestBuildStatus_CountsBuilds(t *testing.T) {
	status := &buildStatus{}
	status.record(nil)
	status.record(errors.New("boom"))

	builds, lastErr := status.snapshot()
	require.Equal(t, 2, builds)
	require.Error(t, lastErr)
}
