// Package images exposes the image endpoints over gin. Handlers are thin:
// they bind transport parameters, delegate to the image service, and write
// the response envelope. All decision logic lives in pkg/imageservice.
package images

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/marmos91/imagevault/internal/api/respond"
	"github.com/marmos91/imagevault/pkg/imageservice"
)

// Handler holds the image endpoints' dependencies.
type Handler struct {
	svc *imageservice.Service
}

// NewHandler creates the image endpoints handler.
func NewHandler(svc *imageservice.Service) *Handler {
	return &Handler{svc: svc}
}

// Upload handles POST /images.
func (h *Handler) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, imageservice.CodeInvalidJSON, "Invalid JSON in request body")
		return
	}

	result, err := h.svc.Upload(c.Request.Context(), imageservice.UploadRequest{
		ImageData: req.ImageData,
		Filename:  req.Filename,
		UserID:    req.UserID,
		Metadata:  req.Metadata,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, result, "Image uploaded successfully")
}

// List handles GET /images.
func (h *Handler) List(c *gin.Context) {
	query := imageservice.ListQuery{
		UserID:        c.Query("user_id"),
		Title:         c.Query("title"),
		Tags:          c.Query("tags"),
		Location:      c.Query("location"),
		CreatedAfter:  c.Query("created_after"),
		CreatedBefore: c.Query("created_before"),
		Cursor:        c.Query("last_evaluated_key"),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respond.BadRequest(c, imageservice.CodeInvalidParameter, "Invalid parameter value: limit must be an integer")
			return
		}
		query.Limit = limit
	}

	result, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, result, "")
}

// Get handles GET /images/:image_id.
func (h *Handler) Get(c *gin.Context) {
	download := false
	if raw := c.Query("download"); raw != "" {
		download = raw == "true"
	}

	meta, payload, err := h.svc.Get(c.Request.Context(), imageservice.GetRequest{
		ImageID:  c.Param("image_id"),
		UserID:   c.Query("user_id"),
		Download: download,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	if payload != nil {
		respond.Raw(c, http.StatusOK, payload)
		return
	}

	respond.Success(c, http.StatusOK, meta, "")
}

// Delete handles DELETE /images/:image_id.
func (h *Handler) Delete(c *gin.Context) {
	result, err := h.svc.Delete(c.Request.Context(), imageservice.DeleteRequest{
		ImageID: c.Param("image_id"),
		UserID:  c.Query("user_id"),
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, result, "Image deleted successfully")
}
