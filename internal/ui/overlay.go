package ui

import (
	"fmt"
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lightbox/internal/lightbox"
	"lightbox/internal/nav"
)

// overlayView is the lightbox chrome drawn over the browser while open.
type overlayView struct {
	root    fyne.CanvasObject
	content *fyne.Container
	title   *widget.Label
	status  *widget.Label
	shown   bool
}

func newOverlayView(a *App) *overlayView {
	o := &overlayView{
		content: container.NewStack(),
		title:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		status:  widget.NewLabel(""),
	}

	backdrop := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 235})
	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		a.controller.Navigate(nav.Prev)
	})
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		a.controller.Navigate(nav.Next)
	})
	playBtn := widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		a.togglePlay()
	})
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		a.controller.Close()
	})

	controls := container.NewHBox(prevBtn, nextBtn, playBtn, o.status, layout.NewSpacer(), closeBtn)
	o.root = container.NewStack(
		backdrop,
		container.NewBorder(
			o.title,  // top
			controls, // bottom
			nil, nil,
			o.content,
		),
	)
	return o
}

// render redraws the overlay from a controller view snapshot. Must run on the
// Fyne goroutine.
func (a *App) render(v lightbox.View) {
	overlays := a.win.Canvas().Overlays()

	if !v.Visible {
		if a.overlay.shown {
			overlays.Remove(a.overlay.root)
			a.overlay.shown = false
			a.statusLabel.SetText(fmt.Sprintf("%d media files", len(a.ids)))
		}
		return
	}
	if !a.overlay.shown {
		overlays.Add(a.overlay.root)
		a.overlay.shown = true
	}

	label := v.DisplayLabel
	if label == "" {
		// Metadata not loaded yet; the raw identifier is the display key.
		label = filepath.Base(v.CurrentID)
	}
	a.overlay.title.SetText(label)

	if v.Position >= 0 {
		a.overlay.status.SetText(fmt.Sprintf("%d / %d", v.Position+1, v.Count))
	} else {
		a.overlay.status.SetText(filepath.Base(v.CurrentID))
	}

	a.overlay.content.Objects = []fyne.CanvasObject{a.buildContent(v)}
	a.overlay.content.Refresh()
}

// buildContent picks the center widget for the current view: a spinner while
// loading, a video placeholder, or the image itself.
func (a *App) buildContent(v lightbox.View) fyne.CanvasObject {
	if v.IsLoading {
		return container.NewCenter(container.NewVBox(
			widget.NewLabel("Loading..."),
			widget.NewProgressBarInfinite(),
		))
	}
	if v.IsVideo {
		// No in-process video playback; show a labelled placeholder.
		return container.NewCenter(container.NewVBox(
			widget.NewIcon(theme.FileVideoIcon()),
			widget.NewLabelWithStyle(v.DisplayLabel, fyne.TextAlignCenter, fyne.TextStyle{}),
		))
	}

	uri, err := storage.ParseURI(v.ResourceURL)
	if err != nil {
		guiLogger(fmt.Sprintf("bad resource URL %q: %v", v.ResourceURL, err))
		return widget.NewLabel(v.CurrentID)
	}
	img := canvas.NewImageFromURI(uri)
	img.FillMode = canvas.ImageFillContain
	return img
}
