package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memstorage "github.com/jpp0ca/storybook-media/internal/adapters/storage/memory"
	"github.com/jpp0ca/storybook-media/internal/adapters/store"
	"github.com/jpp0ca/storybook-media/internal/domain"
	"github.com/jpp0ca/storybook-media/internal/embed"
	"github.com/jpp0ca/storybook-media/internal/metrics"
	"github.com/jpp0ca/storybook-media/internal/ports"
)

func newTestService(t *testing.T, storage ports.ObjectStorage) (*Service, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	mat := NewMaterializer(storage, nil, WithClock(func() time.Time { return fixedNow }))
	svc := NewService(mat, store.NewMemory(), ServiceConfig{
		Metrics:       m,
		DefaultOrigin: "https://stories.example",
	})
	return svc, m
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestService_ResolveMedia_DefaultOrigin(t *testing.T) {
	svc, m := newTestService(t, memstorage.New())

	res, err := svc.ResolveMedia(context.Background(),
		domain.MediaSource{RawURL: "https://youtu.be/dQw4w9WgXcQ", Kind: domain.MediaKindVideo}, "", false)

	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=0&origin=https://stories.example", res.EmbedURL)
	assert.Contains(t, scrape(t, m), `storybook_media_resolutions_total{kind="video",platform="youtube"} 1`)
}

func TestService_ResolveMedia_CallerOrigin(t *testing.T) {
	svc, _ := newTestService(t, memstorage.New())

	res, err := svc.ResolveMedia(context.Background(),
		domain.MediaSource{RawURL: "https://youtu.be/dQw4w9WgXcQ", Kind: domain.MediaKindVideo}, "https://author.example", false)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.EmbedURL, "origin=https://author.example"))
}

func TestService_ResolveMedia_Strict(t *testing.T) {
	svc, _ := newTestService(t, memstorage.New())
	src := domain.MediaSource{RawURL: "https://www.youtube.com/channel/abc", Kind: domain.MediaKindVideo}

	res, err := svc.ResolveMedia(context.Background(), src, "", false)
	require.NoError(t, err)
	assert.Equal(t, src.RawURL, res.EmbedURL)

	_, err = svc.ResolveMedia(context.Background(), src, "", true)
	assert.True(t, errors.Is(err, embed.ErrUnresolvableMediaURL))
}

func TestService_MaterializeAsset(t *testing.T) {
	storage := memstorage.New()
	svc, m := newTestService(t, storage)

	asset, err := svc.MaterializeAsset(context.Background(), domain.UploadTarget{
		Name:            "kit.pdf",
		MimeType:        "application/pdf",
		SizeBytes:       4,
		DestinationHint: "materials",
		Content:         strings.NewReader("%PDF"),
	})

	require.NoError(t, err)
	assert.Equal(t, "memory://materials/1700000000123-kit.pdf", asset.FileURL)
	obj, ok := storage.Get("materials", "1700000000123-kit.pdf")
	require.True(t, ok)
	assert.Equal(t, "%PDF", string(obj.Data))
	assert.Contains(t, scrape(t, m), `storybook_media_materializations_total{mode="stored"} 1`)
}

func TestService_MaterializeAsset_Degraded(t *testing.T) {
	svc, m := newTestService(t, &mockStorage{uploadErr: errors.New("503 from storage")})

	asset, err := svc.MaterializeAsset(context.Background(), domain.UploadTarget{
		Name:     "kit.pdf",
		MimeType: "application/pdf",
		Content:  strings.NewReader("%PDF"),
	})

	assert.True(t, errors.Is(err, ErrUploadDegraded))
	assert.Equal(t, "/downloads/1700000000123-kit.pdf", asset.FileURL)
	assert.Contains(t, scrape(t, m), `storybook_media_materializations_total{mode="degraded"} 1`)
}

func TestService_MaterializeAsset_Failed(t *testing.T) {
	svc, m := newTestService(t, memstorage.New())

	_, err := svc.MaterializeAsset(context.Background(), domain.UploadTarget{
		Name:     "cover.png",
		MimeType: "image/png",
		Content:  failingReader{},
	})

	assert.True(t, errors.Is(err, ErrUnreadableFile))
	assert.Contains(t, scrape(t, m), `storybook_media_materializations_total{mode="failed"} 1`)
}

func TestService_CreateMultimedia(t *testing.T) {
	svc, _ := newTestService(t, memstorage.New())
	ctx := context.Background()

	created, err := svc.CreateMultimedia(ctx, domain.CreateMultimediaRequest{
		Title: "  Bedtime song ",
		Kind:  domain.MediaKindAudio,
		URL:   "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC?si=abc",
	}, "")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Bedtime song", created.Title)
	assert.Equal(t, domain.PlatformSpotify, created.Platform)
	assert.Equal(t, "https://open.spotify.com/embed/track/4uLU6hMCjMI75M1A2tKUQC", created.EmbedURL)
	assert.True(t, created.IsEmbedded)

	got, err := svc.GetMultimedia(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.SourceURL, got.SourceURL)
}

func TestService_CreateMultimedia_Validation(t *testing.T) {
	svc, _ := newTestService(t, memstorage.New())

	tests := []struct {
		name string
		req  domain.CreateMultimediaRequest
	}{
		{"blank title", domain.CreateMultimediaRequest{Title: " ", Kind: domain.MediaKindVideo, URL: "https://a.example/v.mp4"}},
		{"blank url", domain.CreateMultimediaRequest{Title: "t", Kind: domain.MediaKindVideo, URL: "  "}},
		{"bad kind", domain.CreateMultimediaRequest{Title: "t", Kind: "podcast", URL: "https://a.example/v.mp4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMultimedia(context.Background(), tt.req, "")
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestService_ListAndDelete(t *testing.T) {
	svc, _ := newTestService(t, memstorage.New())
	ctx := context.Background()

	video, err := svc.CreateMultimedia(ctx, domain.CreateMultimediaRequest{
		Title: "Story time", Kind: domain.MediaKindVideo, URL: "https://vimeo.com/76979871",
	}, "")
	require.NoError(t, err)
	_, err = svc.CreateMultimedia(ctx, domain.CreateMultimediaRequest{
		Title: "Lullaby", Kind: domain.MediaKindAudio, URL: "https://cdn.example.com/lullaby.mp3",
	}, "")
	require.NoError(t, err)

	all, err := svc.ListMultimedia(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	videos, err := svc.ListMultimedia(ctx, domain.MediaKindVideo)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "https://player.vimeo.com/video/76979871", videos[0].EmbedURL)

	_, err = svc.ListMultimedia(ctx, "podcast")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	require.NoError(t, svc.DeleteMultimedia(ctx, video.ID))
	_, err = svc.GetMultimedia(ctx, video.ID)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
	assert.True(t, errors.Is(svc.DeleteMultimedia(ctx, video.ID), ports.ErrNotFound))
}

func TestService_Playback(t *testing.T) {
	svc, _ := newTestService(t, memstorage.New())
	ctx := context.Background()

	direct, err := svc.CreateMultimedia(ctx, domain.CreateMultimediaRequest{
		Title: "Lullaby", Kind: domain.MediaKindAudio, URL: "https://cdn.example.com/lullaby.mp3",
	}, "")
	require.NoError(t, err)

	pb, err := svc.Playback(ctx, direct.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "audio", pb.Element)
	assert.Equal(t, "https://cdn.example.com/lullaby.mp3", pb.Src)
	assert.Contains(t, pb.Controls, domain.TransportSkip)

	embedded, err := svc.CreateMultimedia(ctx, domain.CreateMultimediaRequest{
		Title: "Story", Kind: domain.MediaKindVideo, URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, "")
	require.NoError(t, err)

	pb, err = svc.Playback(ctx, embedded.ID, "https://author.example")
	require.NoError(t, err)
	assert.Equal(t, "iframe", pb.Element)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=0&origin=https://author.example", pb.Src)
	assert.Empty(t, pb.Controls)

	_, err = svc.Playback(ctx, uuid.New(), "")
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}
