package meta

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedFetch blocks each fetch until its identifier's gate is released, so
// tests can settle fetches in an order of their choosing.
type gatedFetch struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	errs  map[string]error
}

func newGatedFetch() *gatedFetch {
	return &gatedFetch{gates: make(map[string]chan struct{}), errs: make(map[string]error)}
}

func (g *gatedFetch) gate(id string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[id]
	if !ok {
		ch = make(chan struct{})
		g.gates[id] = ch
	}
	return ch
}

func (g *gatedFetch) fail(id string, err error) {
	g.mu.Lock()
	g.errs[id] = err
	g.mu.Unlock()
}

func (g *gatedFetch) fetch(id string) (MediaInfo, error) {
	<-g.gate(id)
	g.mu.Lock()
	err := g.errs[id]
	g.mu.Unlock()
	if err != nil {
		return MediaInfo{}, err
	}
	return MediaInfo{DisplayLabel: "label-" + id, CreatedAt: time.Unix(42, 0)}, nil
}

func (g *gatedFetch) release(id string) {
	close(g.gate(id))
}

type applied struct {
	id   string
	info MediaInfo
}

func collectApplies() (ApplyFunc, chan applied) {
	ch := make(chan applied, 16)
	return func(id string, info MediaInfo) { ch <- applied{id, info} }, ch
}

func TestLoaderAppliesCurrentLoad(t *testing.T) {
	g := newGatedFetch()
	apply, got := collectApplies()
	l := NewLoader(g.fetch, apply, nil)

	l.Load("m1")
	g.release("m1")

	select {
	case a := <-got:
		assert.Equal(t, "m1", a.id)
		assert.Equal(t, "label-m1", a.info.DisplayLabel)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for load to apply")
	}
}

func TestLoaderDropsSupersededLoad(t *testing.T) {
	g := newGatedFetch()
	apply, got := collectApplies()
	l := NewLoader(g.fetch, apply, nil)

	// Rapid identifier changes m1 -> m2 -> m3 while m1 is still in flight.
	l.Load("m1")
	l.Load("m2")
	l.Load("m3")

	// m2 settles first, then m3, then the abandoned m1.
	g.release("m2")
	g.release("m3")
	g.release("m1")

	select {
	case a := <-got:
		assert.Equal(t, "m3", a.id, "only the newest load may apply")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for load to apply")
	}

	select {
	case a := <-got:
		t.Fatalf("superseded load for %q applied", a.id)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLoaderFallbackOnError(t *testing.T) {
	g := newGatedFetch()
	g.fail("m2", errors.New("boom"))
	apply, got := collectApplies()

	var logged []string
	l := NewLoader(g.fetch, apply, func(msg string) { logged = append(logged, msg) })

	l.Load("m2")
	g.release("m2")

	select {
	case a := <-got:
		assert.Equal(t, "m2", a.id)
		assert.Contains(t, a.info.DisplayLabel, "m2", "fallback label derives from the identifier")
		assert.False(t, a.info.CreatedAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fallback to apply")
	}
	require.NotEmpty(t, logged)
}

func TestLoaderInvalidate(t *testing.T) {
	g := newGatedFetch()
	apply, got := collectApplies()
	l := NewLoader(g.fetch, apply, nil)

	l.Load("m1")
	l.Invalidate()
	g.release("m1")

	select {
	case a := <-got:
		t.Fatalf("invalidated load for %q applied", a.id)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFallbackLabel(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"/media/photos/beach.jpg", "beach.jpg"},
		{"clip.mp4", "clip.mp4"},
		{"m2", "m2"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Fallback(test.id).DisplayLabel, "id %q", test.id)
	}
}
