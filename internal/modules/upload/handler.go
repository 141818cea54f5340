package upload

import (
	"errors"
	"net/http"
	"strconv"

	"contentadmin/internal/pkg/response"
	"contentadmin/internal/pkg/validator"
	"contentadmin/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/uploads")
	g.GET("/presigned-url", h.PresignedURL)
	g.POST("/complete-upload", h.CompleteUpload)
	g.POST("/upload", h.DirectUpload)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.DELETE("/:id", h.Delete)
}

// PresignedURL handles GET /uploads/presigned-url?filename=&contentType=.
func (h *Handler) PresignedURL(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "filename is required")
		return
	}
	contentType := c.DefaultQuery("contentType", "image/jpeg")

	presigned, err := h.service.PresignUpload(c.Request.Context(), filename, contentType)
	if err != nil {
		h.gatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, presigned)
}

// CompleteUpload handles POST /uploads/complete-upload.
func (h *Handler) CompleteUpload(c *gin.Context) {
	var req CompleteUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid upload metadata", details)
		return
	}

	u, err := h.service.CompleteUpload(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to register upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"uploadId":     u.ID,
		"upload":       toUploadResponse(u),
		"permanentUrl": u.FileURL,
		"message":      "upload completed",
	})
}

// DirectUpload handles POST /uploads/upload (multipart form, field "file").
func (h *Handler) DirectUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file provided")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot read file")
		return
	}
	defer f.Close()

	u, err := h.service.DirectUpload(
		c.Request.Context(),
		f,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, ErrEmptyFile) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		h.gatewayError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"fileUrl":  u.FileURL,
		"upload":   toUploadResponse(u),
		"filename": u.OriginalName,
		"size":     u.FileSize,
		"mimetype": u.ContentType,
	})
}

// List handles GET /uploads with an optional contentType filter.
func (h *Handler) List(c *gin.Context) {
	uploads, err := h.service.List(c.Request.Context(), c.Query("contentType"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list uploads")
		return
	}

	items := make([]UploadResponse, 0, len(uploads))
	for i := range uploads {
		items = append(items, toUploadResponse(&uploads[i]))
	}
	c.JSON(http.StatusOK, items)
}

// GetByID handles GET /uploads/:id. Soft-deleted rows read as not found.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid upload id")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUploadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load upload")
		return
	}

	c.JSON(http.StatusOK, toUploadResponse(u))
}

// Delete handles DELETE /uploads/:id (soft delete, object store untouched).
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid upload id")
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrUploadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete upload")
		return
	}

	response.Message(c, http.StatusOK, "upload deleted")
}

func (h *Handler) gatewayError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotConfigured) {
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "object storage is not configured")
		return
	}
	response.Error(c, http.StatusBadGateway, "STORAGE_ERROR", "object storage operation failed")
}
