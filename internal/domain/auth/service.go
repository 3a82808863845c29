package auth

import (
	"context"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
)

// RefreshTokenRepository persists refresh tokens, hashed at rest
type RefreshTokenRepository interface {
	// Store saves a refresh token for the profile
	Store(ctx context.Context, profileID, token string, expiresAt int64) error

	// Verify returns the profile ID owning a live token
	Verify(ctx context.Context, token string) (string, error)

	// Revoke marks the token revoked
	Revoke(ctx context.Context, token string) error

	// RevokeAll revokes every token belonging to the profile
	RevokeAll(ctx context.Context, profileID string) error
}

// Service defines the authentication operations
type Service interface {
	// Login verifies credentials and the requested role, returning a
	// token pair on success
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, string, error)

	// GoogleRedirectURL builds the provider redirect for the role portal
	GoogleRedirectURL(role profile.Role) (*RedirectResponse, error)

	// GoogleLogin exchanges the callback code and signs the user in
	GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*TokenResponse, string, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, string, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the profile behind the access token claims
	Me(ctx context.Context, profileID string) (*profile.ProfileResponse, error)
}
