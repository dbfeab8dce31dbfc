// Package embed classifies media URLs by hosting platform and rewrites them
// into URLs that can be placed in an iframe src.
package embed

import (
	"errors"
	"strings"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

// ErrUnresolvableMediaURL is returned by ResolveStrict when the URL belongs to a
// recognized platform but no media ID could be extracted from it.
var ErrUnresolvableMediaURL = errors.New("unresolvable media url")

// OriginFunc supplies the origin of the page that will host the embed. It
// returns "" when no browsing context is available.
type OriginFunc func() string

// StaticOrigin returns an OriginFunc that always reports origin.
func StaticOrigin(origin string) OriginFunc {
	return func() string { return origin }
}

// Resolver turns raw URLs into ResolvedMedia. It holds no state besides the
// origin accessor and is safe for concurrent use.
type Resolver struct {
	origin OriginFunc
}

// NewResolver creates a resolver. A nil origin behaves like StaticOrigin("").
func NewResolver(origin OriginFunc) *Resolver {
	if origin == nil {
		origin = StaticOrigin("")
	}
	return &Resolver{origin: origin}
}

// Resolve classifies rawURL and builds its embed URL. It never fails: when an
// ID cannot be extracted the result still names the detected platform and
// carries a best-effort URL.
func (r *Resolver) Resolve(rawURL string, kind domain.MediaKind) domain.ResolvedMedia {
	res := domain.ResolvedMedia{
		RawURL:     rawURL,
		Kind:       kind,
		Platform:   classify(rawURL, kind),
		IsEmbedded: true,
	}

	switch res.Platform {
	case domain.PlatformYouTube:
		res.MediaID = youtubeID(rawURL)
		res.EmbedURL = youtubeEmbed(res.MediaID, rawURL, r.origin())
	case domain.PlatformVimeo:
		res.MediaID = vimeoID(rawURL)
		res.EmbedURL = vimeoEmbed(res.MediaID)
	case domain.PlatformSpotify:
		res.SpotifyKind, res.MediaID = spotifyID(rawURL)
		res.EmbedURL = spotifyEmbed(res.SpotifyKind, res.MediaID, rawURL)
	case domain.PlatformSoundCloud:
		res.EmbedURL = soundcloudEmbed(rawURL)
	case domain.PlatformSuno:
		res.MediaID = sunoID(rawURL)
		res.EmbedURL = sunoEmbed(res.MediaID, rawURL)
	default:
		res.EmbedURL = rawURL
		res.IsEmbedded = false
	}

	return res
}

// ResolveStrict is Resolve for callers that prefer to reject a broken embed
// early. The resolved value is always returned alongside the error.
func (r *Resolver) ResolveStrict(rawURL string, kind domain.MediaKind) (domain.ResolvedMedia, error) {
	res := r.Resolve(rawURL, kind)
	switch res.Platform {
	case domain.PlatformYouTube, domain.PlatformVimeo, domain.PlatformSpotify, domain.PlatformSuno:
		if res.MediaID == "" {
			return res, ErrUnresolvableMediaURL
		}
	}
	return res, nil
}

// classify picks the platform. Checks are ordered and the first match wins.
func classify(rawURL string, kind domain.MediaKind) domain.Platform {
	switch kind {
	case domain.MediaKindVideo:
		switch {
		case strings.Contains(rawURL, "youtube.com"), strings.Contains(rawURL, "youtu.be"):
			return domain.PlatformYouTube
		case strings.Contains(rawURL, "vimeo.com"):
			return domain.PlatformVimeo
		}
	case domain.MediaKindAudio:
		switch {
		case strings.Contains(rawURL, "spotify.com"):
			return domain.PlatformSpotify
		case strings.Contains(rawURL, "soundcloud.com"):
			return domain.PlatformSoundCloud
		case strings.Contains(rawURL, "suno.com"):
			return domain.PlatformSuno
		}
	}
	return domain.PlatformDirect
}

// segmentAfter returns the text following marker, cut at the first '?'.
// ok is false when marker is absent.
func segmentAfter(rawURL, marker string) (string, bool) {
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", false
	}
	seg := rawURL[idx+len(marker):]
	if q := strings.IndexByte(seg, '?'); q >= 0 {
		seg = seg[:q]
	}
	return seg, true
}
