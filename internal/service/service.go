// Package service holds the library management logic shared by the GUI and
// the CLI: ingesting scanned media files and maintaining the metadata store.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lightbox/internal/meta"
	"lightbox/internal/scan"
)

// MediaStore abstracts the metadata library for easier testing and decoupling.
type MediaStore interface {
	Put(id string, info meta.MediaInfo) error
	Get(id string) (meta.MediaInfo, error)
	Remove(id string) error
	IDs() ([]string, error)
	Count() (int, error)
	Close() error
}

// FileScanner abstracts file scanning.
type FileScanner interface {
	Run(dir string, logger scan.LoggerFunc) <-chan scan.FileItem
}

// FSScanner is the filesystem-backed FileScanner.
type FSScanner struct{}

// Run delegates to the scan package's directory walk.
func (FSScanner) Run(dir string, logger scan.LoggerFunc) <-chan scan.FileItem {
	return scan.Run(dir, logger)
}

// Service is the main entry point for library management logic.
type Service struct {
	Store  MediaStore
	Scan   FileScanner
	Logger func(string)
}

// NewService constructs a new Service.
func NewService(store MediaStore, scanner FileScanner, logger func(string)) *Service {
	if logger == nil {
		logger = func(string) {}
	}
	return &Service{
		Store:  store,
		Scan:   scanner,
		Logger: logger,
	}
}

// ScanDirectory ingests every media file under dir into the store. The file
// path becomes the identifier, its base name the display label, and its
// creation time comes from EXIF data when available. Returns the number of
// records stored.
func (s *Service) ScanDirectory(dir string) (int, error) {
	if dir == "" {
		return 0, errors.New("directory required")
	}
	added := 0
	items := s.Scan.Run(dir, func(msg string) { s.Logger(fmt.Sprintf("ScanDirectory: %s", msg)) })
	for item := range items {
		info := meta.MediaInfo{
			DisplayLabel: filepath.Base(item.Path),
			CreatedAt:    creationTime(item.Path, item.Info),
		}
		if err := s.Store.Put(item.Path, info); err != nil {
			s.Logger(fmt.Sprintf("Failed to store %s: %v", item.Path, err))
			continue
		}
		added++
	}
	return added, nil
}

// ListMedia returns all identifiers in the store, in collection order.
func (s *Service) ListMedia() ([]string, error) {
	return s.Store.IDs()
}

// Info returns the stored metadata for an identifier.
func (s *Service) Info(id string) (meta.MediaInfo, error) {
	if id == "" {
		return meta.MediaInfo{}, errors.New("media identifier required")
	}
	return s.Store.Get(id)
}

// RemoveMedia deletes the record for an identifier.
func (s *Service) RemoveMedia(id string) error {
	if id == "" {
		return errors.New("media identifier required")
	}
	return s.Store.Remove(id)
}

// CleanLibrary removes records whose backing files no longer exist.
// Returns the number of records removed.
func (s *Service) CleanLibrary() (int, error) {
	ids, err := s.Store.IDs()
	if err != nil {
		return 0, fmt.Errorf("failed to list media: %w", err)
	}
	removed := 0
	for _, id := range ids {
		if _, statErr := os.Stat(id); os.IsNotExist(statErr) {
			if err := s.Store.Remove(id); err != nil {
				s.Logger(fmt.Sprintf("Error removing record for missing file %s: %v", id, err))
				continue
			}
			removed++
		}
	}
	return removed, nil
}
