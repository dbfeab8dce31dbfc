package embed

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

const (
	youtubeEmbedBase    = "https://www.youtube.com/embed/"
	vimeoEmbedBase      = "https://player.vimeo.com/video/"
	spotifyEmbedBase    = "https://open.spotify.com/embed/"
	soundcloudEmbedBase = "https://w.soundcloud.com/player/?url="
	sunoEmbedBase       = "https://suno.com/embed/song/"

	// Fixed display options of the SoundCloud widget.
	soundcloudParams = "&color=%23ff5500&auto_play=false&hide_related=false" +
		"&show_comments=true&show_user=true&show_reposts=false&show_teaser=true&visual=true"
)

var vimeoIDPattern = regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`)

// -- YouTube -----------------------------------------------------------------

// youtubeID extracts the video ID from watch, youtu.be and shorts URLs.
func youtubeID(rawURL string) string {
	switch {
	case strings.Contains(rawURL, "youtube.com/watch"):
		return watchParam(rawURL)
	case strings.Contains(rawURL, "youtu.be/"):
		id, _ := segmentAfter(rawURL, "youtu.be/")
		return id
	case strings.Contains(rawURL, "youtube.com/shorts/"):
		id, _ := segmentAfter(rawURL, "youtube.com/shorts/")
		return id
	}
	return ""
}

// watchParam reads the "v" query parameter. Unparseable URLs fall back to a
// plain split on "v=".
func watchParam(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		return u.Query().Get("v")
	}
	parts := strings.SplitN(rawURL, "v=", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.Split(parts[1], "&")[0]
}

func youtubeEmbed(id, rawURL, origin string) string {
	if id == "" {
		return rawURL
	}
	return youtubeEmbedBase + id + "?autoplay=0&origin=" + origin
}

// -- Vimeo -------------------------------------------------------------------

func vimeoID(rawURL string) string {
	m := vimeoIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// vimeoEmbed always synthesizes a player URL, even for an empty id.
func vimeoEmbed(id string) string {
	return vimeoEmbedBase + id
}

// -- Spotify -----------------------------------------------------------------

var spotifyKinds = []domain.SpotifyKind{
	domain.SpotifyTrack,
	domain.SpotifyAlbum,
	domain.SpotifyPlaylist,
}

func spotifyID(rawURL string) (domain.SpotifyKind, string) {
	for _, kind := range spotifyKinds {
		if id, ok := segmentAfter(rawURL, string(kind)+"/"); ok {
			return kind, id
		}
	}
	return "", ""
}

func spotifyEmbed(kind domain.SpotifyKind, id, rawURL string) string {
	if kind == "" {
		return strings.Replace(rawURL, "/track/", "/embed/track/", 1)
	}
	return spotifyEmbedBase + string(kind) + "/" + id
}

// -- SoundCloud --------------------------------------------------------------

func soundcloudEmbed(rawURL string) string {
	return soundcloudEmbedBase + encodeURIComponent(rawURL) + soundcloudParams
}

// -- Suno --------------------------------------------------------------------

func sunoID(rawURL string) string {
	id, _ := segmentAfter(rawURL, "song/")
	return id
}

func sunoEmbed(id, rawURL string) string {
	if id == "" {
		return rawURL
	}
	return sunoEmbedBase + id
}
