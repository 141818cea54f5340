package auth

import (
	"net/http"
	"strings"

	"contentadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	g.POST("/login", h.Login)
	g.GET("/logout", h.Logout)
	g.GET("/status", h.Status)
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid username or password")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "login successful",
		"accessToken": token,
		"user":        AdminPublic{ID: admin.ID, Username: admin.Username},
	})
}

// Logout handles GET /auth/logout. Tokens are stateless, so this only tells
// the client to drop its copy.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logout complete"})
}

// Status handles GET /auth/status: reports whether the Bearer token in the
// Authorization header still names a live admin account.
func (h *Handler) Status(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false, "user": nil})
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	admin, err := h.service.Verify(c.Request.Context(), token)
	if err != nil || admin == nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false, "user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loggedIn": true,
		"user":     AdminPublic{ID: admin.ID, Username: admin.Username},
	})
}
