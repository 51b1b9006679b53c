// Package storage is the image blob store: bytes go in under a generated key,
// an opaque locator comes back. Two interchangeable backends exist, S3 and
// GridFS; callers never parse locators.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get when no object exists under the key.
var ErrNotFound = errors.New("storage: object not found")

// MaxImageSize caps uploads at 5MB.
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// AllowedImageType reports whether the upload content type is accepted.
func AllowedImageType(contentType string) bool {
	_, ok := allowedImageTypes[contentType]
	return ok
}

// Store is the blob-store contract shared by both backends.
type Store interface {
	// Put stores the payload under key and returns a retrievable locator.
	Put(ctx context.Context, r io.Reader, key, contentType string) (string, error)
	// Get streams the payload back with its content type.
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	// Delete removes the object behind the locator. Absence is not an error.
	Delete(ctx context.Context, locator string) error
}

// NewKey builds a collision-resistant object key, keeping the original file
// extension so the key stays recognizable.
func NewKey(prefix, originalName string) string {
	return fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), path.Ext(originalName))
}

// KeyFromLocator recovers the object key from a stored locator, whichever
// backend produced it (the key is always the last path segment).
func KeyFromLocator(locator string) string {
	if i := strings.LastIndexByte(locator, '/'); i >= 0 {
		return locator[i+1:]
	}
	return locator
}
