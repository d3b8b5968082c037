// Package scroll manages the background scroll suppression flag for the
// lifetime of an open lightbox.
package scroll

import "sync"

// Suppressor is the process-wide scroll flag the lock controls. It is shared
// with any other consumer of the same flag; the UI layer provides one backed
// by its scroll container.
type Suppressor interface {
	SetScrollDisabled(disabled bool)
}

// Lock pairs scroll suppression with the lightbox open/close lifecycle.
// Acquire and Release are idempotent, so double-release on a teardown path is
// a no-op rather than a fault. At most one lightbox instance is assumed to
// control the flag; there is no reference counting.
type Lock struct {
	mu     sync.Mutex
	target Suppressor
	held   bool
}

// NewLock creates a Lock over the given suppressor, which may be nil for a
// lock that only tracks state.
func NewLock(target Suppressor) *Lock {
	return &Lock{target: target}
}

// Acquire suppresses background scroll. Acquiring an already held lock does
// nothing.
func (l *Lock) Acquire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return
	}
	l.held = true
	if l.target != nil {
		l.target.SetScrollDisabled(true)
	}
}

// Release restores scroll. It is safe to call on every exit path, held or not.
func (l *Lock) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.held {
		return
	}
	l.held = false
	if l.target != nil {
		l.target.SetScrollDisabled(false)
	}
}

// Held reports whether the lock currently suppresses scroll.
func (l *Lock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}
