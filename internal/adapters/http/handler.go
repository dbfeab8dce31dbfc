package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jpp0ca/storybook-media/internal/app"
	"github.com/jpp0ca/storybook-media/internal/embed"
	"github.com/jpp0ca/storybook-media/internal/ports"
)

// Handler holds the HTTP handlers for the media API.
type Handler struct {
	service        ports.MediaService
	publicOrigin   string
	maxUploadBytes int64
	uploadLimiter  *rate.Limiter
	metrics        http.Handler
	logger         *slog.Logger
}

// Options configures a Handler. Zero values disable the matching feature.
type Options struct {
	// PublicOrigin overrides the request Origin header for YouTube embeds.
	PublicOrigin   string
	MaxUploadBytes int64
	UploadLimiter  *rate.Limiter
	Metrics        http.Handler
	Logger         *slog.Logger
}

// NewHandler creates a new HTTP handler with the given media service.
func NewHandler(service ports.MediaService, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service:        service,
		publicOrigin:   opts.PublicOrigin,
		maxUploadBytes: opts.MaxUploadBytes,
		uploadLimiter:  opts.UploadLimiter,
		metrics:        opts.Metrics,
		logger:         logger,
	}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(RequestID(h.logger))

	r.GET("/health", h.Health)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics))
	}

	api := r.Group("/api/v1")
	{
		api.GET("/media/resolve", h.ResolveMedia)
		api.POST("/assets", RateLimit(h.uploadLimiter), h.UploadAsset)

		api.POST("/multimedia", h.CreateMultimedia)
		api.GET("/multimedia", h.ListMultimedia)
		api.POST("/multimedia/import", h.ImportMultimedia)
		api.GET("/multimedia/:id", h.GetMultimedia)
		api.DELETE("/multimedia/:id", h.DeleteMultimedia)
		api.GET("/multimedia/:id/playback", h.Playback)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// origin picks the embedding origin: the configured public origin wins over
// the caller's Origin header.
func (h *Handler) origin(c *gin.Context) string {
	if h.publicOrigin != "" {
		return h.publicOrigin
	}
	return c.GetHeader("Origin")
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// writeError maps service errors onto HTTP status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		status, code = http.StatusBadRequest, "bad_request"
	case errors.Is(err, ports.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, app.ErrUnreadableFile):
		status, code = http.StatusUnprocessableEntity, "unreadable_file"
	case errors.Is(err, embed.ErrUnresolvableMediaURL):
		status, code = http.StatusUnprocessableEntity, "unresolvable_url"
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("[http] request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}
