// Package supabase uploads objects through the Supabase Storage REST API.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

// Storage implements ports.ObjectStorage for Supabase Storage.
type Storage struct {
	client     *http.Client
	baseURL    string
	serviceKey string
}

// New creates a Supabase storage client. baseURL is the project URL
// (e.g. "https://xyz.supabase.co"). If client is nil, http.DefaultClient is used.
func New(client *http.Client, baseURL, serviceKey string) *Storage {
	if client == nil {
		client = http.DefaultClient
	}
	return &Storage{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
	}
}

func (s *Storage) Name() string {
	return "supabase"
}

// -- API response types (internal) ------------------------------------------

type uploadResponse struct {
	Key string `json:"Key"`
	ID  string `json:"Id"`
}

type errorResponse struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// -- ObjectStorage implementation --------------------------------------------

func (s *Storage) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (domain.StoredObject, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, objectPath(bucket, key))

	counter := &countingReader{r: body}
	respBody, err := s.doUpload(ctx, endpoint, counter, contentType)
	if err != nil {
		return domain.StoredObject{}, fmt.Errorf("supabase: failed to upload %s/%s: %w", bucket, key, err)
	}

	var resp uploadResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return domain.StoredObject{}, fmt.Errorf("supabase: failed to parse upload response: %w", err)
	}

	return domain.StoredObject{Bucket: bucket, Key: key, Size: counter.n}, nil
}

// PublicURL builds the URL of an object in a public bucket. No request is made.
func (s *Storage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s", s.baseURL, objectPath(bucket, key))
}

// -- HTTP helpers ------------------------------------------------------------

func (s *Storage) doUpload(ctx context.Context, endpoint string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "max-age=3600")
	req.Header.Set("x-upsert", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("supabase API returned status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("supabase API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// -- Helpers -----------------------------------------------------------------

func objectPath(bucket, key string) string {
	return url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
