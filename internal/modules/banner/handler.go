package banner

import (
	"errors"
	"net/http"
	"strconv"

	"contentadmin/internal/domain"
	"contentadmin/internal/pkg/response"
	"contentadmin/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read endpoints the public site consumes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/banner")
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
}

// RegisterAdminRoutes exposes the mutating endpoints behind the JWT gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/banner")
	g.POST("", h.Create)
	g.PATCH("/display-orders", h.UpdateDisplayOrders)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET /banner, ordered by displayOrder then creation time.
func (h *Handler) List(c *gin.Context) {
	banners, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list banners")
		return
	}
	c.JSON(http.StatusOK, toBannerResponses(banners))
}

// GetByID handles GET /banner/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBannerResponse(b))
}

// Create handles POST /banner.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid banner payload", details)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create banner")
		return
	}
	c.JSON(http.StatusCreated, toBannerResponse(b))
}

// Update handles PUT /banner/:id. displayOrder is not writable here.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid banner payload", details)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBannerResponse(b))
}

// UpdateDisplayOrders handles PATCH /banner/display-orders. The updates are
// applied one by one, not in a transaction — a mid-list failure leaves the
// earlier rows reordered.
func (h *Handler) UpdateDisplayOrders(c *gin.Context) {
	var req UpdateDisplayOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid display orders payload", details)
		return
	}

	banners, err := h.service.UpdateDisplayOrders(c.Request.Context(), req.DisplayOrders)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBannerResponses(banners))
}

// Delete handles DELETE /banner/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "banner and its images were deleted")
}

func (h *Handler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, ErrBannerNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "banner not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL", "banner operation failed")
}

func toBannerResponses(banners []domain.Banner) []BannerResponse {
	out := make([]BannerResponse, 0, len(banners))
	for i := range banners {
		out = append(out, toBannerResponse(&banners[i]))
	}
	return out
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid banner id")
		return 0, false
	}
	return id, true
}
