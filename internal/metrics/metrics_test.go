package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

func TestObserveResolution(t *testing.T) {
	m := New()
	m.ObserveResolution(domain.ResolvedMedia{Platform: domain.PlatformYouTube, Kind: domain.MediaKindVideo})
	m.ObserveResolution(domain.ResolvedMedia{Platform: domain.PlatformYouTube, Kind: domain.MediaKindVideo})
	m.ObserveResolution(domain.ResolvedMedia{Platform: domain.PlatformDirect, Kind: domain.MediaKindAudio})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolutions.WithLabelValues("youtube", "video")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("direct", "audio")))
}

func TestObserveMaterialization(t *testing.T) {
	m := New()
	m.ObserveMaterialization(domain.MaterializeDegraded, 2048)
	m.ObserveMaterialization("", 10)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.materializations.WithLabelValues("degraded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.materializations.WithLabelValues("failed")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveResolution(domain.ResolvedMedia{})
		m.ObserveMaterialization(domain.MaterializeInline, 1)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveMaterialization(domain.MaterializeStored, 4096)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `storybook_media_materializations_total{mode="stored"} 1`)
}
