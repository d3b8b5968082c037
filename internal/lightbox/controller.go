// Package lightbox owns the lightbox state machine: it resolves the display
// index for the active identifier, loads its metadata, and keeps the keyboard
// binding and scroll lock paired with the open/close lifecycle.
package lightbox

import (
	"sync"

	"lightbox/internal/input"
	"lightbox/internal/media"
	"lightbox/internal/meta"
	"lightbox/internal/nav"
	"lightbox/internal/scroll"
)

// Props are the renderer-driven inputs. The renderer pushes a new Props value
// through Update whenever the open flag, active identifier, or collection
// changes.
type Props struct {
	ActiveID   string
	IsOpen     bool
	Collection []string
}

// View is the derived state the renderer draws from. A zero Visible means
// nothing to show: the lightbox is closed or has no active identifier.
type View struct {
	CurrentID    string
	ResourceURL  string
	DisplayLabel string
	IsVideo      bool
	IsLoading    bool
	Visible      bool
	Position     int // position of CurrentID in the collection, -1 if unresolved
	Count        int
}

// Options wires the controller's collaborators. Fetch is required; everything
// else has a usable zero behaviour.
type Options struct {
	// ResolveURL maps an identifier to a fetchable resource location.
	// Pure and infallible; defaults to the identity mapping.
	ResolveURL func(id string) string
	// Fetch retrieves display metadata for an identifier.
	Fetch meta.FetchFunc
	// Suppressor is the process-wide scroll flag held while open.
	Suppressor scroll.Suppressor
	// Keys is the key event source bound while open.
	Keys input.Source
	// Classifier decides image vs video; defaults to label extension matching.
	Classifier media.Classifier
	// NavigateDelegate, when set, owns navigation: intents are forwarded to it
	// and the controller never mutates its own index. The delegate pushes the
	// resulting identifier back in through Update.
	NavigateDelegate func(nav.Direction)
	// OnClose is invoked when the user requests closing. The renderer responds
	// by updating props with IsOpen false; navigation state is not cleared
	// until the next open.
	OnClose func()
	// OnChange receives a fresh View after every observable change.
	OnChange func(View)
	// Logger receives diagnostics; may be nil.
	Logger meta.LoggerFunc
}

// Controller composes the resolver, loader, router, lock, and classifier into
// the lightbox contract exposed to the renderer.
type Controller struct {
	mu         sync.Mutex
	resolveURL func(id string) string
	classifier media.Classifier
	strategy   nav.Strategy
	lock       *scroll.Lock
	router     *input.Router
	loader     *meta.Loader
	onClose    func()
	onChange   func(View)

	isOpen      bool
	activeID    string
	activeIndex int
	collection  []string
	info        *meta.MediaInfo
	loading     bool
}

// New creates a Controller. The navigation strategy is fixed here: delegated
// when a delegate is configured, self-managed otherwise.
func New(opts Options) *Controller {
	c := &Controller{
		resolveURL:  opts.ResolveURL,
		classifier:  opts.Classifier,
		onClose:     opts.OnClose,
		onChange:    opts.OnChange,
		activeIndex: -1,
	}
	if c.resolveURL == nil {
		c.resolveURL = func(id string) string { return id }
	}
	if c.classifier == nil {
		c.classifier = media.ExtensionClassifier{}
	}
	if opts.NavigateDelegate != nil {
		c.strategy = nav.Delegated{Notify: opts.NavigateDelegate}
	} else {
		c.strategy = nav.SelfManaged{}
	}
	c.lock = scroll.NewLock(opts.Suppressor)
	c.router = input.NewRouter(opts.Keys, input.Intents{
		Prev:  func() { c.Navigate(nav.Prev) },
		Next:  func() { c.Navigate(nav.Next) },
		Close: func() { c.Close() },
	})
	c.loader = meta.NewLoader(opts.Fetch, c.applyLoad, opts.Logger)
	return c
}

// Update is the prop-change entry point. It runs the Closed/Open transitions
// and their side effects: lock and keyboard pairing, index resolution, and
// metadata loads.
func (c *Controller) Update(p Props) {
	c.mu.Lock()
	wasShowing := c.isOpen && c.activeID != ""
	idChanged := p.ActiveID != c.activeID
	collectionChanged := !equalIDs(p.Collection, c.collection)

	c.isOpen = p.IsOpen
	c.activeID = p.ActiveID
	if collectionChanged {
		c.collection = append([]string(nil), p.Collection...)
	}
	showing := c.isOpen && c.activeID != ""

	changed := false
	switch {
	case showing && !wasShowing:
		// Closed -> Open: re-entry resets whatever the last close left behind.
		c.activeIndex = nav.ResolveIndex(c.activeID, c.collection)
		c.info = nil
		c.startLoadLocked()
		c.lock.Acquire()
		c.router.Bind()
		changed = true
	case showing && (idChanged || collectionChanged):
		// Open, identifier or collection change. Previous metadata is kept so
		// classification stays on the last loaded info until the new fetch
		// settles.
		c.activeIndex = nav.ResolveIndex(c.activeID, c.collection)
		c.startLoadLocked()
		changed = true
	case !showing && wasShowing:
		// Open -> Closed.
		c.loader.Invalidate()
		c.lock.Release()
		c.router.Unbind()
		changed = true
	}
	v := c.viewLocked()
	c.mu.Unlock()

	if changed {
		c.notify(v)
	}
}

// Navigate handles a navigation intent. With a delegate configured the intent
// is forwarded and local state is untouched; otherwise the controller adopts
// the circular neighbour itself.
func (c *Controller) Navigate(d nav.Direction) {
	c.mu.Lock()
	if !c.isOpen || c.activeID == "" {
		c.mu.Unlock()
		return
	}
	index := c.activeIndex
	collection := c.collection
	strategy := c.strategy
	c.mu.Unlock()

	// The delegate may call straight back into Update, so the strategy runs
	// outside the lock.
	id, idx, ok := strategy.Advance(d, index, collection)
	if !ok {
		return
	}

	c.mu.Lock()
	if !c.isOpen {
		c.mu.Unlock()
		return
	}
	c.activeID = id
	c.activeIndex = idx
	c.startLoadLocked()
	v := c.viewLocked()
	c.mu.Unlock()
	c.notify(v)
}

// Close invokes the close notification. Navigation state is left in place;
// the next Closed->Open transition resets it.
func (c *Controller) Close() {
	if c.onClose != nil {
		c.onClose()
	}
}

// Teardown releases the scroll lock and keyboard binding regardless of the
// current state. Safe to call more than once and on any exit path.
func (c *Controller) Teardown() {
	c.mu.Lock()
	c.isOpen = false
	c.loader.Invalidate()
	c.mu.Unlock()
	c.lock.Release()
	c.router.Unbind()
}

// View returns a snapshot of the derived state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// applyLoad is the loader's settlement callback. The result is applied only
// if it targets the identifier that is still active; anything else arrived
// too late and is dropped.
func (c *Controller) applyLoad(id string, info meta.MediaInfo) {
	c.mu.Lock()
	if id != c.activeID {
		c.mu.Unlock()
		return
	}
	c.info = &info
	c.loading = false
	v := c.viewLocked()
	c.mu.Unlock()
	c.notify(v)
}

func (c *Controller) startLoadLocked() {
	c.loading = true
	c.loader.Load(c.activeID)
}

func (c *Controller) viewLocked() View {
	if !c.isOpen || c.activeID == "" {
		return View{Position: -1}
	}
	v := View{
		CurrentID:   c.activeID,
		ResourceURL: c.resolveURL(c.activeID),
		IsLoading:   c.loading,
		Visible:     true,
		Position:    c.activeIndex,
		Count:       len(c.collection),
	}
	if c.info != nil {
		v.DisplayLabel = c.info.DisplayLabel
		v.IsVideo = c.classifier.Classify(*c.info) == media.Video
	}
	return v
}

func (c *Controller) notify(v View) {
	if c.onChange != nil {
		c.onChange(v)
	}
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
