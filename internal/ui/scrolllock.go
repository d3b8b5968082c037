package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// scrollSuppressor exposes the browse scroller as the process-wide scroll
// flag held by the lightbox while it is open.
type scrollSuppressor struct {
	scroll *container.Scroll
}

func (s *scrollSuppressor) SetScrollDisabled(disabled bool) {
	if s.scroll == nil {
		return
	}
	fyne.Do(func() {
		if disabled {
			s.scroll.Direction = container.ScrollNone
		} else {
			s.scroll.Direction = container.ScrollBoth
		}
		s.scroll.Refresh()
	})
}
