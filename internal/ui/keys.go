package ui

import (
	"fyne.io/fyne/v2"

	"lightbox/internal/input"
)

// canvasKeySource adapts the window canvas's typed-key callback to the
// router's key source contract. The canvas holds a single callback, so
// installing and clearing here keeps the router's no-duplicate-listener
// guarantee.
type canvasKeySource struct {
	canvas       fyne.Canvas
	onTogglePlay func()
}

func (s *canvasKeySource) SetKeyHandler(h input.Handler) {
	if h == nil {
		s.canvas.SetOnTypedKey(nil)
		return
	}
	s.canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			h(input.KeyPrev)
		case fyne.KeyRight:
			h(input.KeyNext)
		case fyne.KeyEscape:
			h(input.KeyClose)
		case fyne.KeyP, fyne.KeySpace:
			if s.onTogglePlay != nil {
				s.onTogglePlay()
			}
		}
	})
}
