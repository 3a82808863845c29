package auth

import (
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

// LoginRequest carries the login form. Role is the portal the user is
// signing in through and must match the role on record.
type LoginRequest struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     profile.Role `json:"role"`
}

// Validate validates the login request
func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if !validator.IsInSlice(string(r.Role), profile.RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of: faculty, hod, registrar"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GoogleLoginRequest carries the OAuth2 callback parameters
type GoogleLoginRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
	Role  profile.Role
}

// ============= Response DTOs =============

// TokenResponse represents a successful authentication. RefreshExpiresAt
// is consumed by the handler for the refresh cookie lifetime and stays
// out of the body.
type TokenResponse struct {
	AccessToken      string                  `json:"access_token"`
	TokenType        string                  `json:"token_type"`
	ExpiresIn        int                     `json:"expires_in"`
	Profile          profile.ProfileResponse `json:"profile"`
	RefreshExpiresAt int64                   `json:"-"`
}

// RedirectResponse carries the provider redirect URL. State is stored
// in a cookie by the handler and checked again on the callback.
type RedirectResponse struct {
	RedirectURL string `json:"redirect_url"`
	State       string `json:"-"`
}
