package supabase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_Success(t *testing.T) {
	var (
		gotPath, gotAuth, gotKey, gotType, gotBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Key":"materials/1700000000000-kit.pdf","Id":"abc"}`))
	}))
	defer srv.Close()

	s := New(srv.Client(), srv.URL+"/", "service-key")
	obj, err := s.Upload(context.Background(), "materials", "1700000000000-kit.pdf", strings.NewReader("%PDF-1.7"), "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/materials/1700000000000-kit.pdf", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "service-key", gotKey)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, "%PDF-1.7", gotBody)
	assert.Equal(t, int64(8), obj.Size)
	assert.Equal(t, "materials", obj.Bucket)
}

func TestUpload_DefaultContentType(t *testing.T) {
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"Key":"b/k"}`))
	}))
	defer srv.Close()

	_, err := New(srv.Client(), srv.URL, "k").Upload(context.Background(), "b", "k", strings.NewReader("x"), "")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", gotType)
}

func TestUpload_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"statusCode":"403","error":"Unauthorized","message":"new row violates row-level security policy"}`))
	}))
	defer srv.Close()

	_, err := New(srv.Client(), srv.URL, "bad").Upload(context.Background(), "materials", "k", strings.NewReader("x"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), "row-level security")
}

func TestUpload_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket quota exceeded", http.StatusInsufficientStorage)
	}))
	defer srv.Close()

	_, err := New(srv.Client(), srv.URL, "k").Upload(context.Background(), "materials", "k", strings.NewReader("x"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket quota exceeded")
}

func TestUpload_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(nil, url, "k").Upload(context.Background(), "materials", "k", strings.NewReader("x"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supabase: failed to upload")
}

func TestPublicURL(t *testing.T) {
	s := New(nil, "https://xyz.supabase.co/", "k")
	assert.Equal(t,
		"https://xyz.supabase.co/storage/v1/object/public/covers/1700000000000-my%20book.pdf",
		s.PublicURL("covers", "1700000000000-my book.pdf"))
}
