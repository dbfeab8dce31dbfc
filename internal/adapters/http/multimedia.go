package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jpp0ca/storybook-media/internal/domain"
)

// CreateMultimedia adds a catalog entry.
//
//	@Summary		Create multimedia entry
//	@Description	Resolves the URL and stores the entry with its embed URL.
//	@Tags			multimedia
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.CreateMultimediaRequest	true	"Entry to create"
//	@Success		201		{object}	domain.Multimedia
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/multimedia [post]
func (h *Handler) CreateMultimedia(c *gin.Context) {
	var req domain.CreateMultimediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	m, err := h.service.CreateMultimedia(c.Request.Context(), req, h.origin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// ImportMultimedia creates several catalog entries concurrently.
//
//	@Summary		Bulk import multimedia entries
//	@Description	Creates every item with a bounded worker pool. Per-item failures are reported in the
//	@Description	result and do not fail the request.
//	@Tags			multimedia
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.ImportRequest	true	"Entries to create"
//	@Success		200		{object}	domain.ImportResult
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/multimedia/import [post]
func (h *Handler) ImportMultimedia(c *gin.Context) {
	var req domain.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.ImportMultimedia(c.Request.Context(), req.Items, h.origin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMultimedia returns catalog entries, newest first.
//
//	@Summary		List multimedia entries
//	@Tags			multimedia
//	@Produce		json
//	@Param			kind	query		string	false	"Filter by kind"	Enums(video, audio)
//	@Success		200		{array}		domain.Multimedia
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/multimedia [get]
func (h *Handler) ListMultimedia(c *gin.Context) {
	items, err := h.service.ListMultimedia(c.Request.Context(), domain.MediaKind(c.Query("kind")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if items == nil {
		items = []domain.Multimedia{}
	}

	c.JSON(http.StatusOK, items)
}

// GetMultimedia returns one catalog entry.
//
//	@Summary		Get multimedia entry
//	@Tags			multimedia
//	@Produce		json
//	@Param			id	path		string	true	"Entry ID"
//	@Success		200	{object}	domain.Multimedia
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/multimedia/{id} [get]
func (h *Handler) GetMultimedia(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, err := h.service.GetMultimedia(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// DeleteMultimedia removes a catalog entry.
//
//	@Summary		Delete multimedia entry
//	@Tags			multimedia
//	@Param			id	path	string	true	"Entry ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/multimedia/{id} [delete]
func (h *Handler) DeleteMultimedia(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMultimedia(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Playback returns the element a page should render for an entry.
//
//	@Summary		Playback element
//	@Description	Embedded media is played in a sandboxed iframe with no transport controls.
//	@Description	Direct media is bound to a native video or audio element with full controls.
//	@Tags			multimedia
//	@Produce		json
//	@Param			id	path		string	true	"Entry ID"
//	@Success		200	{object}	domain.PlaybackElement
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/multimedia/{id}/playback [get]
func (h *Handler) Playback(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pb, err := h.service.Playback(c.Request.Context(), id, h.origin(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, pb)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "path parameter 'id' must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
