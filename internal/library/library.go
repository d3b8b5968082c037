// Package library stores display metadata for media identifiers in a BoltDB
// database. It backs the metadata-fetch collaborator consumed by the lightbox
// controller.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"lightbox/internal/meta"
)

const (
	dbFileName = "lightbox_media.db"
	// MediaBucket maps a media identifier to its JSON-encoded metadata record.
	MediaBucket = "MediaInfo"
)

// ErrNotFound is returned by Get for identifiers without a stored record.
var ErrNotFound = errors.New("media not found in library")

// LoggerFunc defines a function signature for logging messages.
// This allows the caller to provide its logging mechanism.
type LoggerFunc func(message string)

// record is the stored form of meta.MediaInfo.
type record struct {
	DisplayLabel string    `json:"label"`
	CreatedAt    time.Time `json:"created_at"`
}

// Library manages the metadata database.
type Library struct {
	db     *bolt.DB
	logger LoggerFunc
}

// Open creates or opens the library database file. dbPath may name the file
// directly; when empty, the user config directory is used with a fallback to
// the current directory.
func Open(dbPath string, logger LoggerFunc) (*Library, error) {
	if dbPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Printf("Warning: Could not get user config dir: %v. Using current dir.", err)
			dbPath = dbFileName
		} else {
			appConfigDir := filepath.Join(configDir, "lightbox")
			if err := os.MkdirAll(appConfigDir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create config directory %s: %w", appConfigDir, err)
			}
			dbPath = filepath.Join(appConfigDir, dbFileName)
		}
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open library database %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(MediaBucket)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", MediaBucket, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Library{db: db, logger: logger}, nil
}

// logMessage is a helper to use the configured logger or fallback to standard log.
func (l *Library) logMessage(format string, args ...interface{}) {
	if l.logger != nil {
		l.logger(fmt.Sprintf(format, args...))
	} else {
		log.Printf(format, args...)
	}
}

// Close closes the database connection.
func (l *Library) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Put stores or replaces the metadata record for an identifier.
func (l *Library) Put(id string, info meta.MediaInfo) error {
	if id == "" {
		return fmt.Errorf("media identifier cannot be empty")
	}
	data, err := json.Marshal(record{DisplayLabel: info.DisplayLabel, CreatedAt: info.CreatedAt})
	if err != nil {
		return fmt.Errorf("failed to encode record for '%s': %w", id, err)
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(MediaBucket))
		if err := bucket.Put([]byte(id), data); err != nil {
			return fmt.Errorf("failed to put record for '%s': %w", id, err)
		}
		return nil
	})
}

// Get retrieves the metadata record for an identifier, or ErrNotFound.
func (l *Library) Get(id string) (meta.MediaInfo, error) {
	var rec record
	err := l.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(MediaBucket))
		data := bucket.Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("failed to decode record for '%s': %w", id, err)
		}
		return nil
	})
	if err != nil {
		return meta.MediaInfo{}, err
	}
	return meta.MediaInfo{DisplayLabel: rec.DisplayLabel, CreatedAt: rec.CreatedAt}, nil
}

// Remove deletes the record for an identifier. Removing an absent identifier
// is a no-op.
func (l *Library) Remove(id string) error {
	if id == "" {
		return fmt.Errorf("media identifier cannot be empty")
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(MediaBucket))
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete record for '%s': %w", id, err)
		}
		return nil
	})
}

// IDs retrieves a sorted list of all identifiers in the library. This is the
// collection order the lightbox navigates in.
func (l *Library) IDs() ([]string, error) {
	var ids []string
	err := l.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(MediaBucket))
		return bucket.ForEach(func(k, v []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list media identifiers: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Count returns the number of records in the library.
func (l *Library) Count() (int, error) {
	count := 0
	err := l.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket([]byte(MediaBucket)).Stats().KeyN
		return nil
	})
	return count, err
}

// Fetcher adapts the library into the asynchronous metadata-fetch collaborator
// consumed by the controller. Lookup failures propagate so the controller can
// degrade to its fallback metadata.
func (l *Library) Fetcher() meta.FetchFunc {
	return func(id string) (meta.MediaInfo, error) {
		info, err := l.Get(id)
		if err != nil {
			l.logMessage("library fetch for '%s' failed: %v", id, err)
			return meta.MediaInfo{}, err
		}
		return info, nil
	}
}
