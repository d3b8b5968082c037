// Package input routes key events to lightbox intents while the lightbox is
// open.
package input

import "sync"

// Key is a key the router understands. Sources translate their native key
// events into these before handing them over; anything else is dropped at the
// source.
type Key int

const (
	// KeyPrev requests navigation to the previous item (left arrow).
	KeyPrev Key = iota
	// KeyNext requests navigation to the next item (right arrow).
	KeyNext
	// KeyClose requests closing the lightbox (escape).
	KeyClose
)

// Handler receives translated keys from a Source.
type Handler func(Key)

// Source is where key events come from. SetKeyHandler installs the single
// active handler; a nil handler removes it.
type Source interface {
	SetKeyHandler(h Handler)
}

// Intents are the actions the router dispatches to. They must read current
// navigation state when invoked, not state captured at bind time.
type Intents struct {
	Prev  func()
	Next  func()
	Close func()
}

// Router binds a single key handler to a source for the lifetime of the
// lightbox's open state. Bind and Unbind are idempotent, so re-binding never
// stacks duplicate handlers.
type Router struct {
	mu      sync.Mutex
	src     Source
	intents Intents
	bound   bool
}

// NewRouter creates a Router over the given source.
func NewRouter(src Source, intents Intents) *Router {
	return &Router{src: src, intents: intents}
}

// Bind installs the key handler. Binding an already bound router does nothing.
func (r *Router) Bind() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bound {
		return
	}
	r.bound = true
	if r.src != nil {
		r.src.SetKeyHandler(r.dispatch)
	}
}

// Unbind removes the key handler. Safe to call when not bound.
func (r *Router) Unbind() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.bound {
		return
	}
	r.bound = false
	if r.src != nil {
		r.src.SetKeyHandler(nil)
	}
}

// Bound reports whether the handler is currently installed.
func (r *Router) Bound() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bound
}

func (r *Router) dispatch(k Key) {
	switch k {
	case KeyPrev:
		if r.intents.Prev != nil {
			r.intents.Prev()
		}
	case KeyNext:
		if r.intents.Next != nil {
			r.intents.Next()
		}
	case KeyClose:
		if r.intents.Close != nil {
			r.intents.Close()
		}
	}
}
