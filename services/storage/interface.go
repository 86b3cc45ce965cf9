package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"
	"time"
)

// ErrForeignURL is returned by Delete when the URL was not issued by the store.
var ErrForeignURL = errors.New("url does not belong to this store")

// StorageService defines the blob operations the dashboards rely on.
type StorageService interface {
	// Upload stores the content under objectPath and returns its public URL.
	Upload(ctx context.Context, objectPath string, r io.Reader) (string, error)
	// Delete removes the object behind a URL previously returned by Upload.
	Delete(ctx context.Context, url string) error
	// Owns reports whether the URL points into this store.
	Owns(url string) bool
}

// ObjectPath builds "<folder>/<ownerID>/<unixMillis>_<filename>".
func ObjectPath(folder, ownerID, filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "image"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return path.Join(folder, ownerID, strconv.FormatInt(now.UnixMilli(), 10)+"_"+name)
}

// HallImageFolder is the top-level folder for hall listing images.
const HallImageFolder = "hallImages"
