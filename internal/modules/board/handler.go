package board

import (
	"errors"
	"net/http"
	"strconv"

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
	g := rg.Group("/board")
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
}

// RegisterAdminRoutes exposes the mutating endpoints behind the JWT gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/board")
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET /board?page=&pageSize=, newest first.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list boards")
		return
	}

	boards := make([]BoardResponse, 0, len(result.Boards))
	for i := range result.Boards {
		boards = append(boards, toBoardResponse(&result.Boards[i]))
	}
	c.JSON(http.StatusOK, PaginatedBoardsResponse{
		Boards:      boards,
		Total:       result.Total,
		Page:        result.Page,
		PageSize:    result.PageSize,
		TotalPages:  result.TotalPages,
		HasPrevious: result.HasPrevious,
		HasNext:     result.HasNext,
	})
}

// GetByID handles GET /board/:id.
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
	c.JSON(http.StatusOK, toBoardResponse(b))
}

// Create handles POST /board.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid board payload", details)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create board")
		return
	}
	c.JSON(http.StatusCreated, toBoardResponse(b))
}

// Update handles PUT /board/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid board payload", details)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBoardResponse(b))
}

// Delete handles DELETE /board/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "board and its images were deleted")
}

func (h *Handler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, ErrBoardNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "board not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL", "board operation failed")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid board id")
		return 0, false
	}
	return id, true
}
