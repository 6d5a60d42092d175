// Package preview serves a built site over HTTP for local authoring and
// rebuilds it when content or templates change.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"

	"blogforge/internal/build"
	"blogforge/internal/config"
	"blogforge/internal/metrics"
)

// debounceDelay coalesces rapid editor save bursts into one rebuild.
const debounceDelay = 500 * time.Millisecond

// buildStatus tracks the latest rebuild result for logging and the status
// endpoint.
type buildStatus struct {
	mu        sync.RWMutex
	lastError error
	builds    int
}

func (bs *buildStatus) record(err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = err
	bs.builds++
}

func (bs *buildStatus) snapshot() (int, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.builds, bs.lastError
}

// Run performs an initial build, then serves the output directory on port
// and rebuilds whenever the content or templates directories change. The
// initial build must succeed; later rebuild failures are logged and the last
// good output keeps being served. Run blocks until ctx is canceled.
func Run(ctx context.Context, site *config.Site, port int) error {
	registry := prom.NewRegistry()
	gen := build.NewGenerator(site).SetRecorder(metrics.NewPrometheusRecorder(registry))

	status := &buildStatus{}
	if _, err := gen.Build(); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}
	status.record(nil)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range []string{site.ContentDir, site.TemplatesDir} {
		if err := watcher.Add(dir); err != nil {
			slog.Warn("cannot watch directory", "dir", dir, "error", err)
		}
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: newHandler(site, registry, status),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("preview server listening", "addr", server.Addr, "output_dir", site.OutputDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go watchLoop(ctx, watcher, gen, status)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

// watchLoop debounces filesystem events into rebuilds until ctx is canceled.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, gen *build.Generator, status *buildStatus) {
	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watcher error", "error", err)
		case <-rebuild:
			result, err := gen.Build()
			status.record(err)
			if err != nil {
				slog.Error("rebuild failed, still serving last good output", "error", err)
				continue
			}
			slog.Info("site rebuilt", "build_id", result.BuildID, "pages", result.Pages)
		}
	}
}

func newHandler(site *config.Site, registry *prom.Registry, status *buildStatus) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(site.OutputDir)))
	mux.Handle("/metrics", metrics.HTTPHandler(registry))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		builds, lastErr := status.snapshot()
		if lastErr != nil {
			http.Error(w, fmt.Sprintf("last rebuild failed after %d builds: %v", builds, lastErr), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "ok (%d builds)\n", builds)
	})
	return mux
}
