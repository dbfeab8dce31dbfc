package http

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jpp0ca/storybook-media/internal/app"
	"github.com/jpp0ca/storybook-media/internal/domain"
)

const maxFilenameLength = 255

var (
	errEmptyFile    = errors.New("file is empty")
	errFileTooLarge = errors.New("file is too large")
	errNameTooLong  = errors.New("filename is too long")
)

// ResolveResponse is a resolved media URL plus the element to render it with.
type ResolveResponse struct {
	domain.ResolvedMedia
	Playback domain.PlaybackElement `json:"playback"`
}

// UploadResponse describes a materialized upload.
type UploadResponse struct {
	domain.MaterializedAsset
	Degraded bool   `json:"degraded"`
	Warning  string `json:"warning,omitempty"`
}

// ResolveMedia classifies a media URL and returns its embed URL.
//
//	@Summary		Resolve media URL
//	@Description	Detects the hosting platform of a media URL and returns the URL to embed.
//	@Description	Unrecognized URLs are returned unchanged as direct media unless strict is set.
//	@Tags			media
//	@Produce		json
//	@Param			url		query		string	true	"Media URL"
//	@Param			kind	query		string	false	"Declared media kind"	Enums(video, audio)	default(video)
//	@Param			strict	query		bool	false	"Reject recognized platforms whose ID cannot be extracted"
//	@Success		200		{object}	ResolveResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/v1/media/resolve [get]
func (h *Handler) ResolveMedia(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		badRequest(c, "query parameter 'url' is required")
		return
	}

	kind := domain.MediaKind(c.DefaultQuery("kind", string(domain.MediaKindVideo)))
	if !kind.Valid() {
		badRequest(c, "query parameter 'kind' must be video or audio")
		return
	}

	strict := false
	if v := c.Query("strict"); v != "" {
		var err error
		if strict, err = strconv.ParseBool(v); err != nil {
			badRequest(c, "query parameter 'strict' must be a boolean")
			return
		}
	}

	res, err := h.service.ResolveMedia(c.Request.Context(), domain.MediaSource{RawURL: rawURL, Kind: kind}, h.origin(c), strict)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResolveResponse{ResolvedMedia: res, Playback: res.Playback()})
}

// UploadAsset materializes an uploaded file.
//
//	@Summary		Upload asset
//	@Description	Images are returned inline as base64 data URIs. Other files are written to object storage.
//	@Description	If the storage write fails the response still succeeds with degraded set and a
//	@Description	fallback /downloads/ reference that does not point at stored bytes.
//	@Tags			assets
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file	true	"File to upload"
//	@Param			category	formData	string	false	"Declared category"	Enums(image, other)
//	@Param			destination	formData	string	false	"Storage bucket hint"
//	@Success		201			{object}	UploadResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		429			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/api/v1/assets [post]
func (h *Handler) UploadAsset(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		// Leave room for the multipart envelope around the file itself.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+1<<20)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "form field 'file' is required: "+err.Error())
		return
	}
	if err := h.validateUpload(fh); err != nil {
		badRequest(c, err.Error())
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	category := domain.UploadCategory(c.DefaultPostForm("category", string(domain.UploadCategoryOther)))
	if category != domain.UploadCategoryImage && category != domain.UploadCategoryOther {
		badRequest(c, "form field 'category' must be image or other")
		return
	}

	asset, err := h.service.MaterializeAsset(c.Request.Context(), domain.UploadTarget{
		Name:            filepath.Base(fh.Filename),
		MimeType:        detectMimeType(fh),
		SizeBytes:       fh.Size,
		Category:        category,
		DestinationHint: strings.TrimSpace(c.PostForm("destination")),
		Content:         f,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, UploadResponse{MaterializedAsset: asset})
	case errors.Is(err, app.ErrUploadDegraded):
		c.JSON(http.StatusCreated, UploadResponse{
			MaterializedAsset: asset,
			Degraded:          true,
			Warning:           "file could not be stored; the returned reference is a placeholder",
		})
	default:
		h.writeError(c, err)
	}
}

func (h *Handler) validateUpload(fh *multipart.FileHeader) error {
	if fh.Size == 0 {
		return errEmptyFile
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit", errFileTooLarge, fh.Size, h.maxUploadBytes)
	}
	if len(filepath.Base(fh.Filename)) > maxFilenameLength {
		return fmt.Errorf("%w: at most %d characters", errNameTooLong, maxFilenameLength)
	}
	return nil
}

// detectMimeType trusts the part's Content-Type unless it is missing or
// generic, in which case the file extension decides.
func detectMimeType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename))); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
