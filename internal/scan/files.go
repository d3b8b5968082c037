// Package scan discovers media files in a directory and its subdirectories.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileItem represents one discovered media file.
type FileItem struct {
	Path string
	Info os.FileInfo
}

// FileItems is a slice of FileItem
type FileItems []FileItem

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// NewFileItem creates a new FileItem
func NewFileItem(p string, info os.FileInfo) FileItem {
	return FileItem{
		Path: p,
		Info: info,
	}
}

// Run walks dir and streams every non-empty media file on the returned
// channel. Paths are absolute. The channel is closed when the walk finishes.
func Run(dir string, logger LoggerFunc) <-chan FileItem {
	if logger == nil {
		logger = func(string) {}
	}
	items := make(chan FileItem)

	go func() {
		defer close(items)
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				logger(fmt.Sprintf("skipping %s: %v", p, err))
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isMedia(p) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				logger(fmt.Sprintf("stat failed for %s: %v", p, err))
				return nil
			}
			if info.Size() == 0 {
				return nil
			}
			abs, err := filepath.Abs(p)
			if err != nil {
				logger(fmt.Sprintf("abs failed for %s: %v", p, err))
				return nil
			}
			items <- NewFileItem(abs, info)
			return nil
		})
		if err != nil {
			logger(fmt.Sprintf("walk of %s failed: %v", dir, err))
		}
	}()

	return items
}

// isMedia checks if a file is a supported image or video.
func isMedia(n string) bool {
	switch strings.ToLower(filepath.Ext(n)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	case ".mp4", ".webm", ".ogg", ".mov":
		return true
	default:
		return false
	}
}
