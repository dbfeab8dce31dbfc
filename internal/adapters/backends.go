package adapters

import (
	"fmt"
	"net/http"

	"github.com/jpp0ca/storybook-media/internal/adapters/storage/local"
	"github.com/jpp0ca/storybook-media/internal/adapters/storage/memory"
	"github.com/jpp0ca/storybook-media/internal/adapters/storage/supabase"
	"github.com/jpp0ca/storybook-media/internal/config"
)

// NewDefaultStorageRegistry registers every backend the configuration can
// support: local and memory always, supabase once its URL and key are set.
func NewDefaultStorageRegistry(cfg *config.Config, client *http.Client) (*StorageRegistry, error) {
	registry := NewStorageRegistry()

	localStorage, err := local.New(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("local storage: %w", err)
	}
	registry.Register(localStorage)
	registry.Register(memory.New())

	if cfg.SupabaseURL != "" && cfg.SupabaseServiceKey != "" {
		registry.Register(supabase.New(client, cfg.SupabaseURL, cfg.SupabaseServiceKey))
	}
	return registry, nil
}
