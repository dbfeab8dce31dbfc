// Package local stores uploaded objects on the local filesystem and serves
// them under /uploads.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

// PathPrefix is the URL path the HTTP adapter serves the upload directory on.
const PathPrefix = "/uploads"

// ErrInvalidName is returned for buckets or keys that could escape the upload
// directory.
var ErrInvalidName = errors.New("invalid bucket or key")

// Storage implements ports.ObjectStorage on a directory tree laid out as
// <dir>/<bucket>/<key>.
type Storage struct {
	dir     string
	baseURL string
}

// New creates the upload directory if needed. baseURL is the externally
// visible address of this service (e.g. "http://localhost:8080").
func New(dir, baseURL string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local: failed to create upload dir: %w", err)
	}
	return &Storage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *Storage) Name() string {
	return "local"
}

// Dir returns the root upload directory.
func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) Upload(ctx context.Context, bucket, key string, body io.Reader, _ string) (domain.StoredObject, error) {
	if err := validName(bucket); err != nil {
		return domain.StoredObject{}, err
	}
	if err := validName(key); err != nil {
		return domain.StoredObject{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.StoredObject{}, err
	}

	bucketDir := filepath.Join(s.dir, bucket)
	if err := os.MkdirAll(bucketDir, 0o755); err != nil {
		return domain.StoredObject{}, fmt.Errorf("local: failed to create bucket dir: %w", err)
	}

	finalPath := filepath.Join(bucketDir, key)
	partialPath := finalPath + ".partial"

	dst, err := os.Create(partialPath)
	if err != nil {
		return domain.StoredObject{}, fmt.Errorf("local: failed to create file: %w", err)
	}
	n, err := io.Copy(dst, body)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(partialPath)
		return domain.StoredObject{}, fmt.Errorf("local: failed to write file: %w", err)
	}
	if err := os.Rename(partialPath, finalPath); err != nil {
		os.Remove(partialPath)
		return domain.StoredObject{}, fmt.Errorf("local: failed to finalize file: %w", err)
	}

	return domain.StoredObject{Bucket: bucket, Key: key, Size: n}, nil
}

func (s *Storage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s%s/%s/%s", s.baseURL, PathPrefix, url.PathEscape(bucket), url.PathEscape(key))
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
