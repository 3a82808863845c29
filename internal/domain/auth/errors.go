package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid access token")
	ErrRoleMismatch        = errors.New("account does not hold the requested role")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrEmailNotVerified    = errors.New("google account email is not verified")
)
