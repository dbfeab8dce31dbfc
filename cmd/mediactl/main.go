package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpp0ca/storybook-media/internal/adapters"
	"github.com/jpp0ca/storybook-media/internal/app"
	"github.com/jpp0ca/storybook-media/internal/config"
	"github.com/jpp0ca/storybook-media/internal/domain"
	"github.com/jpp0ca/storybook-media/internal/embed"
	"github.com/jpp0ca/storybook-media/internal/logger"
)

func main() {
	cfg := config.Load()
	// stdout carries the JSON result.
	slog.SetDefault(logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "mediactl",
		Short:        "Resolve media URLs and materialize files from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newResolveCmd(cfg), newMaterializeCmd(cfg))
	return root
}

type resolveOptions struct {
	kind   string
	origin string
	strict bool
}

type resolveOutput struct {
	domain.ResolvedMedia
	Playback domain.PlaybackElement `json:"playback"`
}

func newResolveCmd(cfg *config.Config) *cobra.Command {
	var opts resolveOptions
	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Print the embed URL and playback element for a media URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.MediaKind(opts.kind)
			if !kind.Valid() {
				return fmt.Errorf("--kind must be video or audio, got %q", opts.kind)
			}

			origin := opts.origin
			if origin == "" {
				origin = cfg.PublicOrigin
			}
			r := embed.NewResolver(embed.StaticOrigin(origin))

			var (
				res domain.ResolvedMedia
				err error
			)
			if opts.strict {
				if res, err = r.ResolveStrict(args[0], kind); err != nil {
					return err
				}
			} else {
				res = r.Resolve(args[0], kind)
			}
			return writeJSON(cmd.OutOrStdout(), resolveOutput{ResolvedMedia: res, Playback: res.Playback()})
		},
	}
	cmd.Flags().StringVar(&opts.kind, "kind", string(domain.MediaKindVideo), "Declared media kind (video or audio)")
	cmd.Flags().StringVar(&opts.origin, "origin", "", "Page origin passed to YouTube embeds (default PUBLIC_ORIGIN)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when a recognized platform's media ID cannot be extracted")
	return cmd
}

type materializeOptions struct {
	category    string
	destination string
	mimeType    string
	backend     string
	timeout     time.Duration
}

type materializeOutput struct {
	domain.MaterializedAsset
	Degraded bool   `json:"degraded"`
	Warning  string `json:"warning,omitempty"`
}

func newMaterializeCmd(cfg *config.Config) *cobra.Command {
	var opts materializeOptions
	cmd := &cobra.Command{
		Use:   "materialize <path>",
		Short: "Inline an image or upload a file to the configured storage backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := adapters.NewDefaultStorageRegistry(cfg, &http.Client{Timeout: opts.timeout})
			if err != nil {
				return err
			}
			storage, err := registry.Get(opts.backend)
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.Available(), ", "))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}

			mimeType := opts.mimeType
			if mimeType == "" {
				mimeType = mime.TypeByExtension(strings.ToLower(filepath.Ext(info.Name())))
			}
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			m := app.NewMaterializer(storage, slog.Default(), app.WithDefaultBucket(cfg.DefaultBucket))
			asset, err := m.Materialize(ctx, domain.UploadTarget{
				Name:            info.Name(),
				MimeType:        mimeType,
				SizeBytes:       info.Size(),
				Category:        domain.UploadCategory(opts.category),
				DestinationHint: opts.destination,
				Content:         f,
			})
			out := materializeOutput{MaterializedAsset: asset}
			if err != nil {
				if !errors.Is(err, app.ErrUploadDegraded) {
					return err
				}
				out.Degraded = true
				out.Warning = err.Error()
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&opts.category, "category", string(domain.UploadCategoryOther), "Declared category (image or other)")
	cmd.Flags().StringVar(&opts.destination, "destination", "", "Storage bucket (default DEFAULT_BUCKET)")
	cmd.Flags().StringVar(&opts.mimeType, "mime", "", "MIME type (default detected from the file extension)")
	cmd.Flags().StringVar(&opts.backend, "backend", cfg.StorageBackend, "Storage backend (local, memory or supabase)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Upload timeout")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
