// Package media derives the kind of a media item from its metadata.
package media

import (
	"path/filepath"
	"strings"

	"lightbox/internal/meta"
)

// Kind is the display kind of a media item.
type Kind int

const (
	// Image is the default kind; anything not recognised as video.
	Image Kind = iota
	// Video is matched by a trailing video file extension on the display label.
	Video
)

func (k Kind) String() string {
	if k == Video {
		return "video"
	}
	return "image"
}

// Classifier decides the kind of a media item from its loaded metadata.
// While metadata is still loading the kind is indeterminate and the renderer
// should show a loading state instead of guessing.
type Classifier interface {
	Classify(info meta.MediaInfo) Kind
}

// ExtensionClassifier matches a trailing file extension on the display label.
// A label without an extension classifies as image. Classifying by label
// rather than actual content is a compatibility behaviour; swap in another
// Classifier to inspect content types without touching callers.
type ExtensionClassifier struct{}

// Classify reports Video for .mp4/.webm/.ogg/.mov labels, Image otherwise.
func (ExtensionClassifier) Classify(info meta.MediaInfo) Kind {
	switch strings.ToLower(filepath.Ext(info.DisplayLabel)) {
	case ".mp4", ".webm", ".ogg", ".mov":
		return Video
	default:
		return Image
	}
}
