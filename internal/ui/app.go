// Package ui contains the Fyne front end: a media browser window and the
// lightbox overlay rendered from the controller's view state.
package ui

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lightbox/internal/autoplay"
	"lightbox/internal/library"
	"lightbox/internal/lightbox"
	"lightbox/internal/nav"
	"lightbox/internal/service"
)

const autoplayInterval = 3 * time.Second

// App represents the whole application with all its windows, widgets and functions
type App struct {
	app fyne.App
	win fyne.Window

	lib        *library.Library
	svc        *service.Service
	controller *lightbox.Controller
	player     *autoplay.Player

	ids          []string
	browseBox    *fyne.Container
	browseScroll *container.Scroll
	statusLabel  *widget.Label

	overlay *overlayView
	keys    *canvasKeySource
}

func guiLogger(msg string) {
	log.Printf("[lightbox] %s", msg)
}

// CreateApplication wires the library, controller, and window together and
// runs the event loop.
func CreateApplication() {
	dirFlag := flag.String("dir", "", "directory to scan for media before starting")
	dbFlag := flag.String("db", "", "path to the media library database")
	flag.Parse()

	lib, err := library.Open(*dbFlag, guiLogger)
	if err != nil {
		log.Fatalf("failed to open media library: %v", err)
	}

	a := &App{
		app: app.New(),
		lib: lib,
		svc: service.NewService(lib, service.FSScanner{}, guiLogger),
	}
	a.win = a.app.NewWindow("Lightbox")

	if *dirFlag != "" {
		added, err := a.svc.ScanDirectory(*dirFlag)
		if err != nil {
			guiLogger(fmt.Sprintf("scan of %s failed: %v", *dirFlag, err))
		} else {
			guiLogger(fmt.Sprintf("scanned %s, %d media files", *dirFlag, added))
		}
	}
	a.ids, err = a.svc.ListMedia()
	if err != nil {
		log.Fatalf("failed to list media: %v", err)
	}

	a.win.SetContent(a.buildMainUI())

	a.keys = &canvasKeySource{
		canvas:       a.win.Canvas(),
		onTogglePlay: func() { a.togglePlay() },
	}
	a.controller = lightbox.New(lightbox.Options{
		ResolveURL: fileURL,
		Fetch:      lib.Fetcher(),
		Suppressor: &scrollSuppressor{scroll: a.browseScroll},
		Keys:       a.keys,
		OnClose:    func() { a.closeLightbox() },
		OnChange:   func(v lightbox.View) { fyne.Do(func() { a.render(v) }) },
		Logger:     guiLogger,
	})
	a.player = autoplay.NewPlayer(autoplayInterval, func() {
		a.controller.Navigate(nav.Next)
	})
	a.overlay = newOverlayView(a)

	a.win.SetOnClosed(func() {
		a.player.Stop()
		a.controller.Teardown()
		a.lib.Close()
	})
	a.win.Resize(fyne.NewSize(900, 650))
	a.win.ShowAndRun()
}

// fileURL maps a media identifier (an absolute file path) to a fetchable
// resource location.
func fileURL(id string) string {
	return storage.NewFileURI(id).String()
}

func (a *App) buildMainUI() fyne.CanvasObject {
	a.browseBox = container.NewVBox()
	for _, id := range a.ids {
		id := id
		icon := theme.FileImageIcon()
		switch strings.ToLower(filepath.Ext(id)) {
		case ".mp4", ".webm", ".ogg", ".mov":
			icon = theme.FileVideoIcon()
		}
		a.browseBox.Add(widget.NewButtonWithIcon(filepath.Base(id), icon, func() {
			a.openLightbox(id)
		}))
	}
	a.browseScroll = container.NewScroll(a.browseBox)

	a.statusLabel = widget.NewLabel(fmt.Sprintf("%d media files", len(a.ids)))
	return container.NewBorder(
		nil,           // top
		a.statusLabel, // bottom
		nil, nil,
		a.browseScroll,
	)
}

func (a *App) openLightbox(id string) {
	a.controller.Update(lightbox.Props{
		ActiveID:   id,
		IsOpen:     true,
		Collection: a.ids,
	})
}

func (a *App) closeLightbox() {
	a.player.Stop()
	v := a.controller.View()
	a.controller.Update(lightbox.Props{
		ActiveID:   v.CurrentID,
		IsOpen:     false,
		Collection: a.ids,
	})
}

func (a *App) togglePlay() {
	if !a.controller.View().Visible {
		return
	}
	if a.player.Toggle() {
		a.statusLabel.SetText("Playing")
	} else {
		a.statusLabel.SetText("Paused")
	}
}
