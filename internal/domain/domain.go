package domain

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// MediaKind is declared by the caller and selects which platform family a URL
// is tested against.
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
)

// Valid reports whether k is one of the known media kinds.
func (k MediaKind) Valid() bool {
	return k == MediaKindVideo || k == MediaKindAudio
}

// Platform identifies the host a media URL belongs to.
type Platform string

const (
	PlatformYouTube    Platform = "youtube"
	PlatformVimeo      Platform = "vimeo"
	PlatformSpotify    Platform = "spotify"
	PlatformSoundCloud Platform = "soundcloud"
	PlatformSuno       Platform = "suno"
	PlatformDirect     Platform = "direct"
)

// SpotifyKind is the Spotify resource type found in the URL path.
type SpotifyKind string

const (
	SpotifyTrack    SpotifyKind = "track"
	SpotifyAlbum    SpotifyKind = "album"
	SpotifyPlaylist SpotifyKind = "playlist"
)

// MediaSource is an operator-supplied URL together with its declared kind.
type MediaSource struct {
	RawURL string    `json:"raw_url"`
	Kind   MediaKind `json:"kind"`
}

// ResolvedMedia is the outcome of classifying a MediaSource.
//
// MediaID and SpotifyKind carry the per-platform payload; they are empty when
// the platform has no ID (soundcloud, direct) or when extraction failed.
type ResolvedMedia struct {
	RawURL      string      `json:"raw_url"`
	Kind        MediaKind   `json:"kind"`
	Platform    Platform    `json:"platform"`
	EmbedURL    string      `json:"embed_url"`
	IsEmbedded  bool        `json:"is_embedded"`
	MediaID     string      `json:"media_id,omitempty"`
	SpotifyKind SpotifyKind `json:"spotify_kind,omitempty"`
}

// Transport is a playback control the caller may drive programmatically.
type Transport string

const (
	TransportPlay  Transport = "play"
	TransportPause Transport = "pause"
	TransportMute  Transport = "mute"
	TransportSeek  Transport = "seek"
	TransportSkip  Transport = "skip"
)

// SkipSeconds is the step used by the skip-forward and skip-back controls.
const SkipSeconds = 10

// PlaybackElement tells a rendering surface which element to build.
type PlaybackElement struct {
	Element     string      `json:"element"` // "iframe", "video" or "audio"
	Src         string      `json:"src"`
	Sandbox     string      `json:"sandbox,omitempty"`
	Allow       string      `json:"allow,omitempty"`
	Controls    []Transport `json:"controls"`
	SkipSeconds int         `json:"skip_seconds,omitempty"`
}

const (
	iframeSandbox = "allow-scripts allow-same-origin allow-presentation allow-popups"
	iframeAllow   = "encrypted-media; fullscreen; picture-in-picture"
)

// Playback selects the element for r. Embedded media plays inside the
// platform's own iframe player and exposes no transport controls; direct media
// is bound to a native element the caller fully controls.
func (r ResolvedMedia) Playback() PlaybackElement {
	if r.IsEmbedded {
		return PlaybackElement{
			Element:  "iframe",
			Src:      r.EmbedURL,
			Sandbox:  iframeSandbox,
			Allow:    iframeAllow,
			Controls: []Transport{},
		}
	}

	element := "video"
	if r.Kind == MediaKindAudio {
		element = "audio"
	}
	return PlaybackElement{
		Element: element,
		Src:     r.EmbedURL,
		Controls: []Transport{
			TransportPlay, TransportPause, TransportMute, TransportSeek, TransportSkip,
		},
		SkipSeconds: SkipSeconds,
	}
}

// UploadCategory is declared by the caller; it does not drive routing.
type UploadCategory string

const (
	UploadCategoryImage UploadCategory = "image"
	UploadCategoryOther UploadCategory = "other"
)

// UploadTarget is a local file selected by an operator.
type UploadTarget struct {
	Name            string
	MimeType        string
	SizeBytes       int64
	Category        UploadCategory
	DestinationHint string
	Content         io.Reader
}

// MaterializeMode records which branch produced a MaterializedAsset.
type MaterializeMode string

const (
	MaterializeInline   MaterializeMode = "inline"
	MaterializeStored   MaterializeMode = "stored"
	MaterializeDegraded MaterializeMode = "degraded"
)

// MaterializedAsset is a durable (or, in degraded mode, synthetic) reference
// to an uploaded file.
type MaterializedAsset struct {
	FileURL       string          `json:"file_url"`
	FileSizeLabel string          `json:"file_size"`
	Mode          MaterializeMode `json:"mode"`
	StorageKey    string          `json:"storage_key,omitempty"`
}

// StoredObject is what an object storage backend reports after an upload.
type StoredObject struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Size   int64  `json:"size"`
}

// Multimedia is a catalog entry shown on the public multimedia page.
type Multimedia struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Kind        MediaKind `json:"kind"`
	SourceURL   string    `json:"source_url"`
	Platform    Platform  `json:"platform"`
	EmbedURL    string    `json:"embed_url"`
	IsEmbedded  bool      `json:"is_embedded"`
	FileSize    string    `json:"file_size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateMultimediaRequest is the payload used to add a catalog entry.
type CreateMultimediaRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Kind        MediaKind `json:"kind" binding:"required"`
	URL         string    `json:"url" binding:"required"`
	FileSize    string    `json:"file_size"`
}

// ImportStatus is the outcome of one item in a bulk import.
type ImportStatus string

const (
	ImportCreated ImportStatus = "created"
	ImportInvalid ImportStatus = "invalid"
	ImportFailed  ImportStatus = "failed"
)

// ImportRequest adds several catalog entries at once.
type ImportRequest struct {
	Items []CreateMultimediaRequest `json:"items" binding:"required"`
}

// ImportItemResult reports what happened to one requested entry.
type ImportItemResult struct {
	Request    CreateMultimediaRequest `json:"request"`
	Status     ImportStatus            `json:"status"`
	Multimedia *Multimedia             `json:"multimedia,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// ImportResult summarizes a bulk import. Results keep the request order.
type ImportResult struct {
	Total   int                `json:"total"`
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
	Results []ImportItemResult `json:"results"`
}
