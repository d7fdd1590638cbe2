package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/application"
	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/interface/middleware"
	"github.com/founditapp/foundit-backend/pkg/response"
	"github.com/founditapp/foundit-backend/pkg/validation"
)

// maxImageBytes caps analyze/upload payloads at 8 MiB.
const maxImageBytes = 8 << 20

type ItemHandler struct {
	Svc    *application.ItemService
	Logger *logrus.Logger
}

func NewItemHandler(svc *application.ItemService, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{Svc: svc, Logger: logger}
}

type reportItemRequest struct {
	Type          string `json:"type" binding:"required,oneof=lost found"`
	Title         string `json:"title" binding:"required,max=120"`
	Description   string `json:"description" binding:"required,max=2000"`
	Category      string `json:"category" binding:"required,max=60"`
	Location      string `json:"location" binding:"required,max=120"`
	ImageURL      string `json:"imageUrl" binding:"omitempty,url"`
	ContactNumber string `json:"contactNumber" binding:"omitempty,max=32"`
}

func (h *ItemHandler) List(c *gin.Context) {
	t := entity.ItemType(c.Query("type"))
	items, err := h.Svc.List(c.Request.Context(), t)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "unknown item type", nil)
		return
	}
	response.OK(c, http.StatusOK, items, "items", map[string]any{"count": len(items)})
}

func (h *ItemHandler) Report(c *gin.Context) {
	var req reportItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sess := middleware.SessionFromCtx(c)
	it, err := h.Svc.Report(c.Request.Context(), sess, application.ReportItemInput{
		Type:          entity.ItemType(req.Type),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		h.writeItemError(c, err, "report failed")
		return
	}
	response.OK(c, http.StatusCreated, it, "item reported", nil)
}

func (h *ItemHandler) MarkRetrieved(c *gin.Context) {
	sess := middleware.SessionFromCtx(c)
	if err := h.Svc.MarkRetrieved(c.Request.Context(), sess, c.Param("id")); err != nil {
		h.writeItemError(c, err, "retrieve failed")
		return
	}
	response.OK[any](c, http.StatusOK, gin.H{"retrieved": true}, "item marked as retrieved", nil)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	sess := middleware.SessionFromCtx(c)
	if err := h.Svc.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		h.writeItemError(c, err, "delete failed")
		return
	}
	response.OK[any](c, http.StatusOK, gin.H{"deleted": true}, "item deleted", nil)
}

// Analyze accepts a multipart image and returns AI-extracted listing
// details for form prefill.
func (h *ItemHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		response.Fail(c, http.StatusRequestEntityTooLarge, "image too large", nil)
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "unreadable image", nil)
		return
	}

	details, err := h.Svc.Analyze(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).Warn("image analysis failed")
		response.Fail(c, http.StatusBadGateway, "analysis failed", nil)
		return
	}
	response.OK(c, http.StatusOK, details, "image analyzed", nil)
}

func (h *ItemHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		response.Fail(c, http.StatusRequestEntityTooLarge, "image too large", nil)
		return
	}
	sess := middleware.SessionFromCtx(c)
	url, err := h.Svc.UploadImage(c.Request.Context(), sess, io.LimitReader(file, maxImageBytes), header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrNoSession) {
			response.Fail(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		h.Logger.WithError(err).Error("image upload failed")
		response.Fail(c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.OK[any](c, http.StatusCreated, gin.H{"imageUrl": url}, "image uploaded", nil)
}

// KeywordSearch runs the plain-text index search, separate from the
// AI matcher.
func (h *ItemHandler) KeywordSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size := 20
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			size = n
		}
	}
	hits, err := h.Svc.KeywordSearch(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("keyword search failed")
		response.Fail(c, http.StatusBadGateway, "search failed", nil)
		return
	}
	response.OK(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func (h *ItemHandler) writeItemError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, application.ErrNoSession):
		response.Fail(c, http.StatusUnauthorized, "authentication required", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Fail(c, http.StatusForbidden, "only the owner may do this", nil)
	case errors.Is(err, application.ErrItemNotFound):
		response.Fail(c, http.StatusNotFound, "item not found", nil)
	case errors.Is(err, application.ErrInvalidItem):
		response.Fail(c, http.StatusBadRequest, "invalid item", nil)
	default:
		h.Logger.WithError(err).Error(fallback)
		response.Fail(c, http.StatusInternalServerError, fallback, nil)
	}
}
