package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadAndGet(t *testing.T) {
	s := New()

	obj, err := s.Upload(context.Background(), "materials", "1-kit.pdf", strings.NewReader("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(4), obj.Size)

	got, ok := s.Get("materials", "1-kit.pdf")
	require.True(t, ok)
	assert.Equal(t, "%PDF", string(got.Data))
	assert.Equal(t, "application/pdf", got.ContentType)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "memory://materials/1-kit.pdf", s.PublicURL("materials", "1-kit.pdf"))
}

func TestUpload_CancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Upload(ctx, "materials", "x", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Len())
}
