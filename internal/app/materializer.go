package app

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jpp0ca/storybook-media/internal/domain"
	"github.com/jpp0ca/storybook-media/internal/ports"
)

// FallbackPrefix is the path used for degraded references. Nothing is ever
// written under it.
const FallbackPrefix = "/downloads/"

var (
	// ErrUnreadableFile is returned when an image cannot be read for inline
	// encoding. It is the only failure Materialize does not absorb.
	ErrUnreadableFile = errors.New("unreadable file")

	// ErrUploadDegraded marks a result whose upload failed. The accompanying
	// asset carries a fallback reference that does not point at stored bytes.
	ErrUploadDegraded = errors.New("upload degraded")

	errNoContent = errors.New("file has no content")
	errNoStorage = errors.New("no object storage configured")
)

// DegradedError is returned together with a degraded asset. It matches both
// ErrUploadDegraded and the underlying cause under errors.Is.
type DegradedError struct {
	Bucket string
	Key    string
	Cause  error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("upload degraded: %s/%s: %v", e.Bucket, e.Key, e.Cause)
}

func (e *DegradedError) Unwrap() []error {
	return []error{ErrUploadDegraded, e.Cause}
}

// Materializer converts operator uploads into durable references: images are
// inlined as data URIs, everything else goes to object storage.
type Materializer struct {
	storage       ports.ObjectStorage
	logger        *slog.Logger
	now           func() time.Time
	defaultBucket string
}

// MaterializerOption customizes a Materializer.
type MaterializerOption func(*Materializer)

// WithClock overrides the clock used for storage keys.
func WithClock(now func() time.Time) MaterializerOption {
	return func(m *Materializer) { m.now = now }
}

// WithDefaultBucket sets the bucket used when an upload has no destination hint.
func WithDefaultBucket(bucket string) MaterializerOption {
	return func(m *Materializer) { m.defaultBucket = bucket }
}

// NewMaterializer creates a materializer backed by storage.
func NewMaterializer(storage ports.ObjectStorage, logger *slog.Logger, opts ...MaterializerOption) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Materializer{
		storage:       storage,
		logger:        logger.With(slog.String("component", "materializer")),
		now:           time.Now,
		defaultBucket: "uploads",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize produces the storage representation for target.
//
// A failed upload does not fail the call: the returned asset is in degraded
// mode and the error wraps ErrUploadDegraded so callers can warn or retry.
// Only an unreadable image yields an error with a zero asset.
func (m *Materializer) Materialize(ctx context.Context, target domain.UploadTarget) (domain.MaterializedAsset, error) {
	sizeLabel := FormatSize(target.SizeBytes)

	if isImage(target.MimeType) {
		uri, err := dataURI(target)
		if err != nil {
			return domain.MaterializedAsset{}, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, target.Name, err)
		}
		m.logger.Debug("[materializer] inlined image", "name", target.Name, "size", sizeLabel)
		return domain.MaterializedAsset{
			FileURL:       uri,
			FileSizeLabel: sizeLabel,
			Mode:          domain.MaterializeInline,
		}, nil
	}

	bucket := target.DestinationHint
	if bucket == "" {
		bucket = m.defaultBucket
	}
	key := StorageKey(m.now(), target.Name)

	if err := m.upload(ctx, bucket, key, target); err != nil {
		m.logger.Warn("[materializer] upload failed, using fallback reference",
			"bucket", bucket, "key", key, "error", err)
		return domain.MaterializedAsset{
			FileURL:       FallbackPrefix + key,
			FileSizeLabel: sizeLabel,
			Mode:          domain.MaterializeDegraded,
			StorageKey:    key,
		}, &DegradedError{Bucket: bucket, Key: key, Cause: err}
	}

	publicURL := m.storage.PublicURL(bucket, key)
	m.logger.Info("[materializer] stored file", "bucket", bucket, "key", key, "size", sizeLabel)
	return domain.MaterializedAsset{
		FileURL:       publicURL,
		FileSizeLabel: sizeLabel,
		Mode:          domain.MaterializeStored,
		StorageKey:    key,
	}, nil
}

func (m *Materializer) upload(ctx context.Context, bucket, key string, target domain.UploadTarget) error {
	if m.storage == nil {
		return errNoStorage
	}
	if target.Content == nil {
		return errNoContent
	}
	if _, err := m.storage.Upload(ctx, bucket, key, target.Content, target.MimeType); err != nil {
		return fmt.Errorf("%s: %w", m.storage.Name(), err)
	}
	return nil
}

// StorageKey builds the object key "<unixMillis>-<name>".
func StorageKey(now time.Time, name string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}

// FormatSize renders a byte count as "<n> bytes", "<x.x> KB" or "<x.x> MB".
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

func isImage(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}

func dataURI(target domain.UploadTarget) (string, error) {
	if target.Content == nil {
		return "", errNoContent
	}
	data, err := io.ReadAll(target.Content)
	if err != nil {
		return "", err
	}
	return "data:" + target.MimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
