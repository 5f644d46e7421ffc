package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/oauth"
	"github.com/blog-platform-api/internal/service"
)

// OAuthHandler handles OAuth provider login flows
type OAuthHandler struct {
	services *service.Services
	client   *oauth.Client
	log      zerolog.Logger
}

// NewOAuthHandler creates a new OAuthHandler
func NewOAuthHandler(services *service.Services, client *oauth.Client, log zerolog.Logger) *OAuthHandler {
	return &OAuthHandler{
		services: services,
		client:   client,
		log:      log.With().Str("handler", "oauth").Logger(),
	}
}

// Redirect handles GET /auth/:provider, sending the user to the provider's
// consent screen
func (h *OAuthHandler) Redirect(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authURL, err := h.client.AuthCodeURL(provider)
		if err != nil {
			c.JSON(http.StatusNotFound, Response{Success: false, Message: "oauth provider not available"})
			return
		}
		c.Redirect(http.StatusFound, authURL)
	}
}

// Callback handles GET /auth/:provider/callback, exchanging the provider code
// for tokens and logging the user in
func (h *OAuthHandler) Callback(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if errParam := c.Query("error"); errParam != "" {
			h.log.Warn().Str("provider", provider).Str("error", errParam).Msg("OAuth denied by provider")
			c.JSON(http.StatusUnauthorized, Response{Success: false, Message: "OAuth authentication failed"})
			return
		}

		code := c.Query("code")
		state := c.Query("state")
		if code == "" || state == "" {
			respondValidation(c, "missing code or state", nil)
			return
		}

		profile, err := h.client.Exchange(c.Request.Context(), provider, code, state)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, oauth.ErrUnknownProvider) {
				status = http.StatusNotFound
			}
			h.log.Warn().Err(err).Str("provider", provider).Msg("OAuth exchange failed")
			c.JSON(status, Response{Success: false, Message: "OAuth authentication failed"})
			return
		}

		result, err := h.services.Auth.OAuthLogin(c.Request.Context(), profile.Email, profile.Name)
		if err != nil {
			respondError(c, h.log, err)
			return
		}

		respondOK(c, http.StatusOK, "OAuth login successful", result)
	}
}
