// Package metrics provides observability hooks for site builds.
//
// Components receive a Recorder through dependency injection; the default
// NoopRecorder does nothing, so metrics stay zero-overhead unless the preview
// server (or another host) injects the Prometheus implementation.
package metrics

import "time"

// Recorder defines observability hooks for build and stage metrics.
// Implementations must be safe for concurrent use; the preview server
// rebuilds while scrapes are in flight.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // outcome: success|failed
	SetDocumentsLoaded(n int)
	SetPagesRendered(n int)
	SetTagsIndexed(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncBuildOutcome(string)                     {}
func (NoopRecorder) SetDocumentsLoaded(int)                     {}
func (NoopRecorder) SetPagesRendered(int)                       {}
func (NoopRecorder) SetTagsIndexed(int)                         {}
