package service

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// creationTime returns the EXIF capture time of the file when present,
// falling back to the filesystem modification time. Videos and EXIF-less
// images always use the fallback.
func creationTime(path string, fi os.FileInfo) time.Time {
	fallback := time.Now()
	if fi != nil {
		fallback = fi.ModTime()
	}

	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return fallback
	}
	if tm, err := x.DateTime(); err == nil {
		return tm
	}
	return fallback
}
