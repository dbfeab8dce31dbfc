package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jpp0ca/storybook-media/internal/domain"
	"github.com/jpp0ca/storybook-media/internal/embed"
	"github.com/jpp0ca/storybook-media/internal/metrics"
	"github.com/jpp0ca/storybook-media/internal/ports"
)

// ErrInvalidInput is returned for requests that fail validation.
var ErrInvalidInput = errors.New("invalid input")

var _ ports.MediaService = (*Service)(nil)

// Service implements ports.MediaService. It wires the resolver, the
// materializer and the multimedia catalog together and records metrics.
type Service struct {
	materializer  *Materializer
	store         ports.MultimediaStore
	metrics       *metrics.Metrics
	logger        *slog.Logger
	defaultOrigin string
	importWorkers int
	now           func() time.Time
}

// ServiceConfig carries the optional collaborators of a Service.
type ServiceConfig struct {
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	DefaultOrigin string
	// ImportWorkers bounds the concurrency of ImportMultimedia. Defaults to 1.
	ImportWorkers int
}

// NewService creates the media service.
func NewService(materializer *Materializer, store ports.MultimediaStore, cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.ImportWorkers
	if workers < 1 {
		workers = 1
	}
	return &Service{
		materializer:  materializer,
		store:         store,
		metrics:       cfg.Metrics,
		logger:        logger.With(slog.String("service", "media")),
		defaultOrigin: cfg.DefaultOrigin,
		importWorkers: workers,
		now:           time.Now,
	}
}

func (s *Service) resolver(origin string) *embed.Resolver {
	if origin == "" {
		origin = s.defaultOrigin
	}
	return embed.NewResolver(embed.StaticOrigin(origin))
}

func (s *Service) ResolveMedia(_ context.Context, src domain.MediaSource, origin string, strict bool) (domain.ResolvedMedia, error) {
	r := s.resolver(origin)

	var (
		res domain.ResolvedMedia
		err error
	)
	if strict {
		res, err = r.ResolveStrict(src.RawURL, src.Kind)
	} else {
		res = r.Resolve(src.RawURL, src.Kind)
	}

	s.metrics.ObserveResolution(res)
	s.logger.Debug("[resolver] resolved media url",
		"platform", res.Platform, "kind", res.Kind, "embedded", res.IsEmbedded)
	return res, err
}

func (s *Service) MaterializeAsset(ctx context.Context, target domain.UploadTarget) (domain.MaterializedAsset, error) {
	asset, err := s.materializer.Materialize(ctx, target)
	s.metrics.ObserveMaterialization(asset.Mode, target.SizeBytes)
	if err != nil && !errors.Is(err, ErrUploadDegraded) {
		s.logger.Error("[materializer] failed to process file", "name", target.Name, "error", err)
	}
	return asset, err
}

func (s *Service) CreateMultimedia(ctx context.Context, req domain.CreateMultimediaRequest, origin string) (*domain.Multimedia, error) {
	title := strings.TrimSpace(req.Title)
	rawURL := strings.TrimSpace(req.URL)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if rawURL == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be video or audio, got %q", ErrInvalidInput, req.Kind)
	}

	res, _ := s.ResolveMedia(ctx, domain.MediaSource{RawURL: rawURL, Kind: req.Kind}, origin, false)

	m := domain.Multimedia{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Kind:        req.Kind,
		SourceURL:   rawURL,
		Platform:    res.Platform,
		EmbedURL:    res.EmbedURL,
		IsEmbedded:  res.IsEmbedded,
		FileSize:    req.FileSize,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save multimedia: %w", err)
	}

	s.logger.Info("[catalog] created multimedia", "id", m.ID, "platform", m.Platform)
	return &m, nil
}

func (s *Service) GetMultimedia(ctx context.Context, id uuid.UUID) (*domain.Multimedia, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListMultimedia(ctx context.Context, kind domain.MediaKind) ([]domain.Multimedia, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be video or audio, got %q", ErrInvalidInput, kind)
	}
	return s.store.List(ctx, kind)
}

func (s *Service) DeleteMultimedia(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("[catalog] deleted multimedia", "id", id)
	return nil
}

// Playback re-runs the resolver on the stored source URL so that changes to
// embed rules apply to existing entries.
func (s *Service) Playback(ctx context.Context, id uuid.UUID, origin string) (*domain.PlaybackElement, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, _ := s.ResolveMedia(ctx, domain.MediaSource{RawURL: m.SourceURL, Kind: m.Kind}, origin, false)
	pb := res.Playback()
	return &pb, nil
}
