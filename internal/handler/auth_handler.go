package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"gefen_backend/internal/middleware"
	"gefen_backend/internal/model"
	"gefen_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Helper to get the authenticated admin from context
func getAuthAdmin(c *gin.Context) (*model.Admin, error) {
	adminVal, exists := c.Get(middleware.AuthAdminKey)
	if !exists {
		return nil, errors.New("admin not found in context")
	}
	admin, ok := adminVal.(*model.Admin)
	if !ok {
		return nil, errors.New("invalid admin type in context")
	}
	return admin, nil
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   admin,
		"token":   token,
	})
}

// CheckAuth returns the admin identity the auth middleware resolved. Clients
// call it on page load to confirm a stored token is still usable.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	admin, err := getAuthAdmin(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.GET("/check-auth", authMW, h.CheckAuth)
}
