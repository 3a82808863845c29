package auth

import (
	"context"
	"errors"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/auth"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/jwt"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/oauth"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	profileRepo   profile.ProfileRepository
	tokenRepo     auth.RefreshTokenRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

// NewAuthService creates a new auth service
func NewAuthService(
	profileRepo profile.ProfileRepository,
	tokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.Service {
	return &authService{
		profileRepo:   profileRepo,
		tokenRepo:     tokenRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login verifies the password and the requested role. The role on record
// must match the portal the user signed in through; a faculty account
// cannot enter the HOD portal even with valid credentials.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	p, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if p.PasswordHash == nil {
		return nil, "", auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	if p.Role != req.Role {
		return nil, "", auth.ErrRoleMismatch
	}

	return s.issueTokens(ctx, p)
}

// GoogleRedirectURL builds the provider redirect for the role portal.
// The portal role rides inside the state so the callback can enforce
// the same role-match rule as password login.
func (s *authService) GoogleRedirectURL(role profile.Role) (*auth.RedirectResponse, error) {
	if !validator.IsInSlice(string(role), profile.RoleValues) {
		return nil, validator.ValidationErrors{
			{Field: "role", Message: "role must be one of: faculty, hod, registrar"},
		}
	}

	state := s.googleService.GenerateState(string(role))
	return &auth.RedirectResponse{
		RedirectURL: s.googleService.RedirectURL(state),
		State:       state,
	}, nil
}

// GoogleLogin exchanges the callback code, verifies the Google account and
// signs the matching profile in. Accounts are provisioned administratively,
// so an unknown email fails rather than registering. The portal role
// recovered from the state must match the role on record, same as
// password login.
func (s *authService) GoogleLogin(ctx context.Context, req auth.GoogleLoginRequest) (*auth.TokenResponse, string, error) {
	token, err := s.googleService.VerifyToken(ctx, req.Code)
	if err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}
	if !info.VerifiedEmail {
		return nil, "", auth.ErrEmailNotVerified
	}

	p, err := s.profileRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if p.Role != req.Role {
		return nil, "", auth.ErrRoleMismatch
	}

	return s.issueTokens(ctx, p)
}

// Refresh exchanges a valid refresh token for a new token pair and rotates
// the old one out
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenResponse, string, error) {
	profileID, err := s.tokenRepo.Verify(ctx, refreshToken)
	if err != nil {
		return nil, "", err
	}

	p, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, "", err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, "", err
	}

	return s.issueTokens(ctx, p)
}

// Logout revokes the refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Revoke(ctx, refreshToken)
}

// Me returns the profile behind the access token claims
func (s *authService) Me(ctx context.Context, profileID string) (*profile.ProfileResponse, error) {
	p, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	resp := profile.ToResponse(*p)
	return &resp, nil
}

// issueTokens builds the access/refresh pair and persists the refresh token
func (s *authService) issueTokens(ctx context.Context, p *profile.Profile) (*auth.TokenResponse, string, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(p.ID, p.Email, p.Role, p.BranchID)
	if err != nil {
		return nil, "", err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(p.ID)
	if err != nil {
		return nil, "", err
	}

	if err := s.tokenRepo.Store(ctx, p.ID, refreshToken, refreshExpiresAt); err != nil {
		return nil, "", err
	}

	return &auth.TokenResponse{
		AccessToken:      accessToken,
		TokenType:        "Bearer",
		ExpiresIn:        int(expiresAt - time.Now().Unix()),
		Profile:          profile.ToResponse(*p),
		RefreshExpiresAt: refreshExpiresAt,
	}, refreshToken, nil
}
