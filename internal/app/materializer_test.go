package app

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jpp0ca/storybook-media/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Mock storage ------------------------------------------------------------

type mockStorage struct {
	mu        sync.Mutex
	uploadErr error
	uploads   []uploadCall
}

type uploadCall struct {
	bucket      string
	key         string
	body        string
	contentType string
}

func (m *mockStorage) Name() string { return "mock" }

func (m *mockStorage) Upload(_ context.Context, bucket, key string, body io.Reader, contentType string) (domain.StoredObject, error) {
	data, _ := io.ReadAll(body)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, uploadCall{bucket: bucket, key: key, body: string(data), contentType: contentType})
	if m.uploadErr != nil {
		return domain.StoredObject{}, m.uploadErr
	}
	return domain.StoredObject{Bucket: bucket, Key: key, Size: int64(len(data))}, nil
}

func (m *mockStorage) PublicURL(bucket, key string) string {
	return "https://cdn.example.com/" + bucket + "/" + key
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// stepClock returns a clock that advances one millisecond per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := cur
		cur = cur.Add(time.Millisecond)
		return t
	}
}

var fixedNow = time.UnixMilli(1700000000123)

// -- Tests -------------------------------------------------------------------

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048575, "1024.0 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{1610612736, "1536.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.n), "size %d", tt.n)
	}
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "1700000000123-kindness-kit.pdf", StorageKey(fixedNow, "kindness-kit.pdf"))
}

func TestMaterialize_ImageIsInlined(t *testing.T) {
	store := &mockStorage{}
	m := NewMaterializer(store, nil)

	for _, mime := range []string{"image/png", "image/jpeg", "image/svg+xml"} {
		asset, err := m.Materialize(context.Background(), domain.UploadTarget{
			Name:            "cover.png",
			MimeType:        mime,
			SizeBytes:       3,
			Category:        domain.UploadCategoryOther,
			DestinationHint: "covers",
			Content:         strings.NewReader("abc"),
		})

		require.NoError(t, err)
		assert.Equal(t, "data:"+mime+";base64,YWJj", asset.FileURL)
		assert.True(t, strings.HasPrefix(asset.FileURL, "data:"))
		assert.Equal(t, "3 bytes", asset.FileSizeLabel)
		assert.Equal(t, domain.MaterializeInline, asset.Mode)
		assert.Empty(t, asset.StorageKey)
	}

	assert.Empty(t, store.uploads, "images must never reach object storage")
}

func TestMaterialize_ImageCategoryWithoutImageMimeIsUploaded(t *testing.T) {
	store := &mockStorage{}
	m := NewMaterializer(store, nil, WithClock(func() time.Time { return fixedNow }))

	asset, err := m.Materialize(context.Background(), domain.UploadTarget{
		Name:            "scan.pdf",
		MimeType:        "application/pdf",
		SizeBytes:       2048,
		Category:        domain.UploadCategoryImage,
		DestinationHint: "materials",
		Content:         strings.NewReader("%PDF"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MaterializeStored, asset.Mode)
	require.Len(t, store.uploads, 1)
}

func TestMaterialize_UnreadableImage(t *testing.T) {
	store := &mockStorage{}
	m := NewMaterializer(store, nil)

	asset, err := m.Materialize(context.Background(), domain.UploadTarget{
		Name:     "broken.jpg",
		MimeType: "image/jpeg",
		Content:  failingReader{},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableFile))
	assert.False(t, errors.Is(err, ErrUploadDegraded))
	assert.Empty(t, asset.FileURL)
	assert.Empty(t, store.uploads)
}

func TestMaterialize_StoresNonImage(t *testing.T) {
	store := &mockStorage{}
	m := NewMaterializer(store, nil, WithClock(func() time.Time { return fixedNow }))

	asset, err := m.Materialize(context.Background(), domain.UploadTarget{
		Name:            "kindness-kit.pdf",
		MimeType:        "application/pdf",
		SizeBytes:       2 * 1024 * 1024,
		Category:        domain.UploadCategoryOther,
		DestinationHint: "materials",
		Content:         strings.NewReader("%PDF-1.7"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/materials/1700000000123-kindness-kit.pdf", asset.FileURL)
	assert.Equal(t, "2.0 MB", asset.FileSizeLabel)
	assert.Equal(t, domain.MaterializeStored, asset.Mode)
	assert.Equal(t, "1700000000123-kindness-kit.pdf", asset.StorageKey)

	require.Len(t, store.uploads, 1)
	assert.Equal(t, "materials", store.uploads[0].bucket)
	assert.Equal(t, "%PDF-1.7", store.uploads[0].body)
	assert.Equal(t, "application/pdf", store.uploads[0].contentType)
}

func TestMaterialize_DefaultBucket(t *testing.T) {
	store := &mockStorage{}
	m := NewMaterializer(store, nil, WithDefaultBucket("misc"))

	_, err := m.Materialize(context.Background(), domain.UploadTarget{
		Name:     "song.mp3",
		MimeType: "audio/mpeg",
		Content:  strings.NewReader("ID3"),
	})

	require.NoError(t, err)
	require.Len(t, store.uploads, 1)
	assert.Equal(t, "misc", store.uploads[0].bucket)
}

func TestMaterialize_UploadFailureDegrades(t *testing.T) {
	store := &mockStorage{uploadErr: errors.New("quota exceeded")}
	m := NewMaterializer(store, nil, WithClock(func() time.Time { return fixedNow }))

	asset, err := m.Materialize(context.Background(), domain.UploadTarget{
		Name:            "worksheet.docx",
		MimeType:        "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		SizeBytes:       1500,
		DestinationHint: "materials",
		Content:         strings.NewReader("PK"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUploadDegraded))
	assert.Contains(t, err.Error(), "quota exceeded")

	var degraded *DegradedError
	require.True(t, errors.As(err, &degraded))
	assert.Equal(t, "materials", degraded.Bucket)

	assert.Equal(t, "/downloads/1700000000123-worksheet.docx", asset.FileURL)
	assert.Regexp(t, regexp.MustCompile(`^/downloads/\d+-.+`), asset.FileURL)
	assert.Equal(t, "1.5 KB", asset.FileSizeLabel)
	assert.Equal(t, domain.MaterializeDegraded, asset.Mode)
}

func TestMaterialize_NoStorageDegrades(t *testing.T) {
	m := NewMaterializer(nil, nil)

	asset, err := m.Materialize(context.Background(), domain.UploadTarget{
		Name:     "a.zip",
		MimeType: "application/zip",
		Content:  strings.NewReader("PK"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUploadDegraded))
	assert.True(t, strings.HasPrefix(asset.FileURL, FallbackPrefix))
}

func TestMaterialize_NotIdempotent(t *testing.T) {
	store := &mockStorage{}
	m := NewMaterializer(store, nil, WithClock(stepClock(fixedNow)))

	target := func() domain.UploadTarget {
		return domain.UploadTarget{
			Name:            "audiobook.mp3",
			MimeType:        "audio/mpeg",
			SizeBytes:       10,
			DestinationHint: "materials",
			Content:         strings.NewReader("same bytes"),
		}
	}

	first, err := m.Materialize(context.Background(), target())
	require.NoError(t, err)
	second, err := m.Materialize(context.Background(), target())
	require.NoError(t, err)

	assert.NotEqual(t, first.StorageKey, second.StorageKey)
	assert.NotEqual(t, first.FileURL, second.FileURL)
	assert.Len(t, store.uploads, 2)
}
