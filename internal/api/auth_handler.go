package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/validation"
)

// AuthHandler handles signup, login and token refresh
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body", nil)
		return
	}
	if errs := validation.Signup(&req); len(errs) > 0 {
		respondValidation(c, "invalid signup request", errs)
		return
	}

	result, err := h.services.Auth.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, http.StatusCreated, "User registered successfully", result)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body", nil)
		return
	}
	if errs := validation.Login(&req); len(errs) > 0 {
		respondValidation(c, "invalid login request", errs)
		return
	}

	result, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, http.StatusOK, "Login successful", result)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body", nil)
		return
	}
	if errs := validation.Refresh(&req); len(errs) > 0 {
		respondValidation(c, "invalid refresh request", errs)
		return
	}

	accessToken, err := h.services.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, http.StatusOK, "Token refreshed successfully", gin.H{"accessToken": accessToken})
}
