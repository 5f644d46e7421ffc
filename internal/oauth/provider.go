// Package oauth implements the authorization-code flow against Google and
// GitHub: redirect URL construction with a state nonce, code-for-token
// exchange, and userinfo profile retrieval.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/config"
)

// Flow failures surfaced to the API layer
var (
	ErrUnknownProvider = errors.New("unknown oauth provider")
	ErrInvalidState    = errors.New("invalid or expired oauth state")
	ErrExchangeFailed  = errors.New("oauth token exchange failed")
	ErrProfileFailed   = errors.New("oauth profile request failed")
)

// Provider names
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// stateTTL bounds how long a login redirect may take before the state nonce
// expires
const stateTTL = 10 * time.Minute

// Provider describes one OAuth provider's endpoints and credentials
type Provider struct {
	Name         string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	Scopes       []string
}

// Configured reports whether the provider has credentials set
func (p Provider) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// Profile is the identity returned by a provider's userinfo endpoint
type Profile struct {
	Email string
	Name  string
}

// Client drives the authorization-code flow for all configured providers.
// State nonces live in memory; a restart simply invalidates in-flight logins.
type Client struct {
	providers map[string]Provider
	states    *stateStore
	http      *http.Client
	log       zerolog.Logger
}

// NewClient creates an OAuth client for the configured providers
func NewClient(cfg *config.OAuthConfig, log zerolog.Logger) *Client {
	providers := map[string]Provider{
		ProviderGoogle: {
			Name:         ProviderGoogle,
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			CallbackURL:  cfg.Google.CallbackURL,
			AuthURL:      "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL:     "https://oauth2.googleapis.com/token",
			UserInfoURL:  "https://openidconnect.googleapis.com/v1/userinfo",
			Scopes:       []string{"openid", "profile", "email"},
		},
		ProviderGitHub: {
			Name:         ProviderGitHub,
			ClientID:     cfg.GitHub.ClientID,
			ClientSecret: cfg.GitHub.ClientSecret,
			CallbackURL:  cfg.GitHub.CallbackURL,
			AuthURL:      "https://github.com/login/oauth/authorize",
			TokenURL:     "https://github.com/login/oauth/access_token",
			UserInfoURL:  "https://api.github.com/user",
			Scopes:       []string{"user:email"},
		},
	}

	return &Client{
		providers: providers,
		states:    newStateStore(),
		http:      &http.Client{Timeout: 10 * time.Second},
		log:       log.With().Str("component", "oauth").Logger(),
	}
}

// AuthCodeURL builds the provider redirect URL with a fresh state nonce
func (c *Client) AuthCodeURL(providerName string) (string, error) {
	provider, ok := c.providers[providerName]
	if !ok || !provider.Configured() {
		return "", ErrUnknownProvider
	}

	state := uuid.NewString()
	c.states.Put(state, providerName, stateTTL)

	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", provider.ClientID)
	query.Set("redirect_uri", provider.CallbackURL)
	query.Set("scope", strings.Join(provider.Scopes, " "))
	query.Set("state", state)

	authURL, err := url.Parse(provider.AuthURL)
	if err != nil {
		return "", fmt.Errorf("invalid provider auth url: %w", err)
	}
	authURL.RawQuery = query.Encode()
	return authURL.String(), nil
}

// Exchange consumes the callback state, trades the code for an access token
// and fetches the user profile
func (c *Client) Exchange(ctx context.Context, providerName, code, state string) (*Profile, error) {
	provider, ok := c.providers[providerName]
	if !ok || !provider.Configured() {
		return nil, ErrUnknownProvider
	}

	if !c.states.Consume(state, providerName) {
		return nil, ErrInvalidState
	}

	accessToken, err := c.exchangeToken(ctx, provider, code)
	if err != nil {
		return nil, err
	}

	return c.fetchProfile(ctx, provider, accessToken)
}

func (c *Client) exchangeToken(ctx context.Context, provider Provider, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", provider.CallbackURL)
	form.Set("client_id", provider.ClientID)
	form.Set("client_secret", provider.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Str("provider", provider.Name).Int("status", resp.StatusCode).Msg("Token exchange rejected")
		return "", ErrExchangeFailed
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", ErrExchangeFailed
	}
	return payload.AccessToken, nil
}

func (c *Client) fetchProfile(ctx context.Context, provider Provider, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrProfileFailed
	}

	if provider.Name == ProviderGoogle {
		var payload struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, err
		}
		if payload.Email == "" {
			return nil, ErrProfileFailed
		}
		return &Profile{Email: payload.Email, Name: firstNonEmpty(payload.Name, payload.Email)}, nil
	}

	var payload struct {
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Login == "" && payload.Email == "" {
		return nil, ErrProfileFailed
	}
	// GitHub hides the email unless it is public
	email := payload.Email
	if email == "" {
		email = payload.Login + "@github.com"
	}
	return &Profile{Email: email, Name: firstNonEmpty(payload.Name, payload.Login)}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return "User"
}
