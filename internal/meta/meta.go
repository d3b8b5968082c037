// Package meta loads display metadata for media identifiers and guards
// against stale asynchronous results.
package meta

import (
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// MediaInfo describes one media identifier. It is immutable once fetched and
// superseded wholesale by the next successful fetch for the active identifier.
type MediaInfo struct {
	DisplayLabel string
	CreatedAt    time.Time
}

// FetchFunc retrieves metadata for an identifier. It may fail; failures are
// recovered with Fallback and never surfaced to the renderer.
type FetchFunc func(id string) (MediaInfo, error)

// ApplyFunc receives a settled load result together with the identifier it was
// requested for, so the owner can discard it if that identifier is no longer
// current.
type ApplyFunc func(id string, info MediaInfo)

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// Fallback synthesizes metadata from the identifier itself, used when the
// fetch collaborator fails.
func Fallback(id string) MediaInfo {
	label := filepath.Base(strings.TrimSuffix(id, "/"))
	if label == "." || label == "" {
		label = id
	}
	return MediaInfo{
		DisplayLabel: label,
		CreatedAt:    time.Now(),
	}
}

// Loader runs metadata fetches and drops results that have been superseded by
// a newer load. At most one load is "current" at a time: each Load bumps a
// generation counter, and a settlement whose generation is no longer current
// never reaches the apply callback.
type Loader struct {
	mu     sync.Mutex
	gen    uint64
	fetch  FetchFunc
	apply  ApplyFunc
	logger LoggerFunc
}

// NewLoader creates a Loader. apply is invoked once per non-superseded load,
// on the fetching goroutine; logger may be nil.
func NewLoader(fetch FetchFunc, apply ApplyFunc, logger LoggerFunc) *Loader {
	if logger == nil {
		logger = func(string) {}
	}
	return &Loader{
		fetch:  fetch,
		apply:  apply,
		logger: logger,
	}
}

// Load starts an asynchronous fetch for id, superseding any load still in
// flight. A fetch error degrades to Fallback(id); it is not an error path.
func (l *Loader) Load(id string) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	go func() {
		info, err := l.fetch(id)
		if err != nil {
			l.logger("metadata fetch failed for " + id + ": " + err.Error())
			info = Fallback(id)
		}

		l.mu.Lock()
		stale := gen != l.gen
		l.mu.Unlock()
		if stale {
			return
		}
		l.apply(id, info)
	}()
}

// Invalidate supersedes any in-flight load without starting a new one. Used
// when the lightbox closes while a fetch is still outstanding.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.gen++
	l.mu.Unlock()
}
