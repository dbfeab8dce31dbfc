package ports

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("not found")

// ObjectStorage is the driven port for remote file storage. Backends are
// expected to be consistent immediately: PublicURL is valid as soon as Upload
// returns without error.
type ObjectStorage interface {
	// Upload writes body under bucket/key.
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (domain.StoredObject, error)

	// PublicURL returns the public HTTP(S) URL for an uploaded object.
	PublicURL(bucket, key string) string

	// Name returns the backend identifier (e.g., "local", "supabase").
	Name() string
}

// MultimediaStore persists catalog entries.
type MultimediaStore interface {
	Create(ctx context.Context, m domain.Multimedia) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Multimedia, error)
	// List returns entries newest first. An empty kind returns every entry.
	List(ctx context.Context, kind domain.MediaKind) ([]domain.Multimedia, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MediaService defines the driving port used by the HTTP adapter and the CLI.
type MediaService interface {
	// ResolveMedia classifies rawURL. With strict set, a recognized platform
	// whose ID could not be extracted is reported as an error.
	ResolveMedia(ctx context.Context, src domain.MediaSource, origin string, strict bool) (domain.ResolvedMedia, error)

	// MaterializeAsset converts an uploaded file into a durable reference.
	MaterializeAsset(ctx context.Context, target domain.UploadTarget) (domain.MaterializedAsset, error)

	CreateMultimedia(ctx context.Context, req domain.CreateMultimediaRequest, origin string) (*domain.Multimedia, error)
	GetMultimedia(ctx context.Context, id uuid.UUID) (*domain.Multimedia, error)
	ListMultimedia(ctx context.Context, kind domain.MediaKind) ([]domain.Multimedia, error)
	DeleteMultimedia(ctx context.Context, id uuid.UUID) error

	// ImportMultimedia creates entries concurrently and reports per-item status.
	ImportMultimedia(ctx context.Context, items []domain.CreateMultimediaRequest, origin string) (*domain.ImportResult, error)

	// Playback re-resolves a stored entry and returns the element to render.
	Playback(ctx context.Context, id uuid.UUID, origin string) (*domain.PlaybackElement, error)
}
