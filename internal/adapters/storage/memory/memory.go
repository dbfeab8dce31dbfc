// Package memory is an in-process object store for development and tests.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

// Object is a stored blob.
type Object struct {
	Data        []byte
	ContentType string
}

// Storage keeps objects in a map keyed by "<bucket>/<key>".
type Storage struct {
	mu      sync.RWMutex
	objects map[string]Object
}

// New creates an empty store.
func New() *Storage {
	return &Storage{objects: make(map[string]Object)}
}

func (s *Storage) Name() string {
	return "memory"
}

func (s *Storage) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (domain.StoredObject, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredObject{}, err
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, body)
	if err != nil {
		return domain.StoredObject{}, fmt.Errorf("memory: failed to read body: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = Object{Data: buf.Bytes(), ContentType: contentType}
	return domain.StoredObject{Bucket: bucket, Key: key, Size: n}, nil
}

func (s *Storage) PublicURL(bucket, key string) string {
	return "memory://" + bucket + "/" + key
}

// Get returns a stored object.
func (s *Storage) Get(bucket, key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[bucket+"/"+key]
	return obj, ok
}

// Len returns the number of stored objects.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
