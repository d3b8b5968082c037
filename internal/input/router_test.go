package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSource records installed handlers so tests can count them and feed keys
// through whichever is current.
type fakeSource struct {
	handler Handler
	sets    int
	clears  int
}

func (f *fakeSource) SetKeyHandler(h Handler) {
	if h == nil {
		f.clears++
	} else {
		f.sets++
	}
	f.handler = h
}

func (f *fakeSource) press(k Key) {
	if f.handler != nil {
		f.handler(k)
	}
}

func TestRouterDispatch(t *testing.T) {
	var prev, next, closed int
	src := &fakeSource{}
	r := NewRouter(src, Intents{
		Prev:  func() { prev++ },
		Next:  func() { next++ },
		Close: func() { closed++ },
	})

	r.Bind()
	src.press(KeyPrev)
	src.press(KeyNext)
	src.press(KeyNext)
	src.press(KeyClose)

	assert.Equal(t, 1, prev)
	assert.Equal(t, 2, next)
	assert.Equal(t, 1, closed)
}

func TestRouterBindIdempotent(t *testing.T) {
	src := &fakeSource{}
	r := NewRouter(src, Intents{})

	r.Bind()
	r.Bind()
	r.Bind()
	assert.Equal(t, 1, src.sets, "re-binding must not stack handlers")
	assert.True(t, r.Bound())

	r.Unbind()
	r.Unbind()
	assert.Equal(t, 1, src.clears)
	assert.False(t, r.Bound())
	assert.Nil(t, src.handler)
}

func TestRouterUnboundIgnoresKeys(t *testing.T) {
	var next int
	src := &fakeSource{}
	r := NewRouter(src, Intents{Next: func() { next++ }})

	r.Bind()
	r.Unbind()
	src.press(KeyNext)
	assert.Zero(t, next)
}

func TestRouterRebindCycle(t *testing.T) {
	src := &fakeSource{}
	r := NewRouter(src, Intents{})

	// open -> close -> open installs exactly one handler per open.
	r.Bind()
	r.Unbind()
	r.Bind()
	assert.Equal(t, 2, src.sets)
	assert.Equal(t, 1, src.clears)
	assert.NotNil(t, src.handler)
}
