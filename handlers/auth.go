package handlers

import (
	"net/http"

	"weddingconsole/middleware"
	"weddingconsole/models"
	"weddingconsole/services/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and logout for both account roles.
type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Register returns the handler for POST /api/<role>/register.
func (h *AuthHandler) Register(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		resp, err := h.Service.Register(c.Request.Context(), role, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// Login returns the handler for POST /api/<role>/login.
func (h *AuthHandler) Login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		resp, err := h.Service.Login(c.Request.Context(), role, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context(), c.GetString(middleware.ContextToken)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
