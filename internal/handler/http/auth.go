package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/auth"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/jwt"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/oauth"
)

// AuthHandler defines the authentication handler interface
type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
	jwtService  jwt.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService auth.Service, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login authenticates with email, password and the portal role
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	tokens, refreshToken, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, refreshToken, tokens.RefreshExpiresAt)
	response.Success(w, tokens)
}

// LoginWithGoogle hands out the Google consent URL. The state is kept in
// a cookie so the callback can verify it came from this flow.
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	role := profile.Role(r.URL.Query().Get("role"))

	redirect, err := h.authService.GoogleRedirectURL(role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "state",
		Value:    redirect.State,
		Path:     "/api/v1/auth",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, redirect)
}

// OAuthCallbackGoogle exchanges the provider callback for a session. The
// state must round-trip through the cookie set at redirect time; the
// portal role embedded in it is enforced by the service.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("error") == "access_denied" {
		response.Unauthorized(w, "Google sign-in was cancelled")
		return
	}

	stateCookie, err := r.Cookie("state")
	if err != nil || stateCookie.Value == "" {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" || state != stateCookie.Value {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	rolePayload, err := oauth.StatePayload(state)
	if err != nil {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	req := auth.GoogleLoginRequest{
		Code:  r.URL.Query().Get("code"),
		State: state,
		Role:  profile.Role(rolePayload),
	}
	if req.Code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	tokens, refreshToken, err := h.authService.GoogleLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// The state is single use
	http.SetCookie(w, &http.Cookie{
		Name:     "state",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Now().Add(-time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.setRefreshCookie(w, refreshToken, tokens.RefreshExpiresAt)
	response.Success(w, tokens)
}

// RefreshToken exchanges the refresh token cookie for a new token pair
func (h *authHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidRefreshToken)
		return
	}

	tokens, refreshToken, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, refreshToken, tokens.RefreshExpiresAt)
	response.Success(w, tokens)
}

// Logout revokes the refresh token and clears the cookie
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil && cookie.Value != "" {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me returns the authenticated profile
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	profileID := getProfileIDFromContext(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	p, err := h.authService.Me(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// setRefreshCookie stores the refresh token until the expiry the service
// computed for it, so the cookie lifetime follows the configured TTL.
func (h *authHandlerImpl) setRefreshCookie(w http.ResponseWriter, refreshToken string, expiresAt int64) {
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(refreshToken, expiresAt))
}
