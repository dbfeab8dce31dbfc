package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jpp0ca/storybook-media/internal/domain"
	"github.com/jpp0ca/storybook-media/internal/ports"
)

var _ ports.MultimediaStore = (*Memory)(nil)

// Memory keeps catalog entries in a map. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]domain.Multimedia
}

// NewMemory creates an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{entries: make(map[uuid.UUID]domain.Multimedia)}
}

func (s *Memory) Create(_ context.Context, m domain.Multimedia) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[m.ID] = m
	return nil
}

func (s *Memory) Get(_ context.Context, id uuid.UUID) (*domain.Multimedia, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.entries[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &m, nil
}

func (s *Memory) List(_ context.Context, kind domain.MediaKind) ([]domain.Multimedia, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Multimedia, 0, len(s.entries))
	for _, m := range s.entries {
		if kind != "" && m.Kind != kind {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Memory) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}
