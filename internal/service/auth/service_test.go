package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/auth"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/jwt"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const (
	testSecret     = "test-secret-key"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testPassword   = "supersecret"
)

type fakeProfileRepo struct {
	profiles map[string]*profile.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) AssignRole(ctx context.Context, profileID string, role profile.Role) error {
	return nil
}

func (f *fakeProfileRepo) CreateWithRole(ctx context.Context, p *profile.Profile, role profile.Role) error {
	return f.Create(ctx, p)
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetHODByBranch(ctx context.Context, branchID string) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListByBranch(ctx context.Context, branchID string, role *profile.Role) ([]*profile.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) CountByBranchAndRole(ctx context.Context, branchID string, role profile.Role) (int, error) {
	return 0, nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

type fakeTokenRepo struct {
	tokens  map[string]string // token -> profile ID
	revoked map[string]bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]string), revoked: make(map[string]bool)}
}

func (f *fakeTokenRepo) Store(ctx context.Context, profileID, token string, expiresAt int64) error {
	f.tokens[token] = profileID
	return nil
}

func (f *fakeTokenRepo) Verify(ctx context.Context, token string) (string, error) {
	profileID, ok := f.tokens[token]
	if !ok {
		return "", auth.ErrInvalidRefreshToken
	}
	if f.revoked[token] {
		return "", auth.ErrTokenRevoked
	}
	return profileID, nil
}

func (f *fakeTokenRepo) Revoke(ctx context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return auth.ErrInvalidRefreshToken
	}
	f.revoked[token] = true
	return nil
}

func (f *fakeTokenRepo) RevokeAll(ctx context.Context, profileID string) error {
	for token, id := range f.tokens {
		if id == profileID {
			f.revoked[token] = true
		}
	}
	return nil
}

type fakeGoogleService struct {
	email    string
	verified bool
}

func (f *fakeGoogleService) GenerateState(payload string) string {
	return base64.URLEncoding.EncodeToString([]byte("nonce." + payload))
}

func (f *fakeGoogleService) RedirectURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeGoogleService) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if code != "valid-code" {
		return nil, errors.New("invalid_grant")
	}
	return &oauth2.Token{AccessToken: "google-access-token"}, nil
}

func (f *fakeGoogleService) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return oauth.GoogleInformation{GoogleID: "g-1", Email: f.email, VerifiedEmail: f.verified}, nil
}

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (auth.Service, *fakeTokenRepo) {
	return newTestServiceWithGoogle(t, &fakeGoogleService{email: "asha@campus.edu", verified: true})
}

func newTestServiceWithGoogle(t *testing.T, googleService *fakeGoogleService) (auth.Service, *fakeTokenRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	profileRepo := &fakeProfileRepo{profiles: map[string]*profile.Profile{
		"faculty-1": {
			ID:           "faculty-1",
			Name:         "Asha Verma",
			Email:        "asha@campus.edu",
			PasswordHash: &hashStr,
			Department:   "Computer Science",
			BranchID:     strPtr("b1"),
			Role:         profile.RoleFaculty,
		},
		"google-only": {
			ID:    "google-only",
			Name:  "SSO Account",
			Email: "sso@campus.edu",
			Role:  profile.RoleRegistrar,
		},
	}}
	tokenRepo := newFakeTokenRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	return NewAuthService(profileRepo, tokenRepo, jwtService, googleService), tokenRepo
}

func TestLogin(t *testing.T) {
	svc, tokenRepo := newTestService(t)

	resp, refreshToken, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@campus.edu",
		Password: testPassword,
		Role:     profile.RoleFaculty,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.ExpiresIn, 0)
	assert.Equal(t, "asha@campus.edu", resp.Profile.Email)
	assert.Equal(t, profile.RoleFaculty, resp.Profile.Role)

	// The refresh expiry follows the configured TTL, not a fixed window
	wantExpiry := time.Now().Add(24 * time.Hour).Unix()
	assert.InDelta(t, wantExpiry, resp.RefreshExpiresAt, 5)

	// The refresh token is persisted for later rotation
	require.NotEmpty(t, refreshToken)
	profileID, err := tokenRepo.Verify(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "faculty-1", profileID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: testPassword,
		Role:     profile.RoleFaculty,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "wrong-password",
		Role:     profile.RoleFaculty,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRoleMismatch(t *testing.T) {
	svc, _ := newTestService(t)

	// Valid credentials through the wrong portal must not sign in
	_, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@campus.edu",
		Password: testPassword,
		Role:     profile.RoleHOD,
	})
	assert.ErrorIs(t, err, auth.ErrRoleMismatch)
}

func TestLoginPasswordlessAccount(t *testing.T) {
	svc, _ := newTestService(t)

	// Accounts provisioned for OAuth only have no password hash
	_, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "sso@campus.edu",
		Password: testPassword,
		Role:     profile.RoleRegistrar,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@campus.edu",
		Password: testPassword,
		Role:     "admin",
	})
	assert.Error(t, err)

	_, _, err = svc.Login(context.Background(), auth.LoginRequest{
		Password: testPassword,
		Role:     profile.RoleFaculty,
	})
	assert.Error(t, err)
}

func TestGoogleRedirectURLCarriesRole(t *testing.T) {
	svc, _ := newTestService(t)

	redirect, err := svc.GoogleRedirectURL(profile.RoleFaculty)
	require.NoError(t, err)
	require.NotEmpty(t, redirect.State)
	assert.Contains(t, redirect.RedirectURL, redirect.State)

	// The callback recovers the portal role from the state
	payload, err := oauth.StatePayload(redirect.State)
	require.NoError(t, err)
	assert.Equal(t, "faculty", payload)
}

func TestGoogleRedirectURLInvalidRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GoogleRedirectURL("admin")
	assert.Error(t, err)
	_, err = svc.GoogleRedirectURL("")
	assert.Error(t, err)
}

func TestGoogleLogin(t *testing.T) {
	svc, tokenRepo := newTestService(t)

	resp, refreshToken, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Code:  "valid-code",
		State: "opaque-state",
		Role:  profile.RoleFaculty,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "asha@campus.edu", resp.Profile.Email)

	_, err = tokenRepo.Verify(context.Background(), refreshToken)
	assert.NoError(t, err)
}

func TestGoogleLoginRoleMismatch(t *testing.T) {
	svc, _ := newTestService(t)

	// A verified faculty account through the HOD portal must not sign in
	_, _, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Code:  "valid-code",
		State: "opaque-state",
		Role:  profile.RoleHOD,
	})
	assert.ErrorIs(t, err, auth.ErrRoleMismatch)
}

func TestGoogleLoginMissingRole(t *testing.T) {
	svc, _ := newTestService(t)

	// A callback that carries no portal role never matches any account
	_, _, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Code:  "valid-code",
		State: "opaque-state",
	})
	assert.ErrorIs(t, err, auth.ErrRoleMismatch)
}

func TestGoogleLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestServiceWithGoogle(t, &fakeGoogleService{email: "stranger@campus.edu", verified: true})

	_, _, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Code:  "valid-code",
		State: "opaque-state",
		Role:  profile.RoleFaculty,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestGoogleLoginUnverifiedEmail(t *testing.T) {
	svc, _ := newTestServiceWithGoogle(t, &fakeGoogleService{email: "asha@campus.edu", verified: false})

	_, _, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Code:  "valid-code",
		State: "opaque-state",
		Role:  profile.RoleFaculty,
	})
	assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
}

func TestGoogleLoginBadCode(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Code:  "expired-code",
		State: "opaque-state",
		Role:  profile.RoleFaculty,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, tokenRepo := newTestService(t)

	_, refreshToken, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@campus.edu",
		Password: testPassword,
		Role:     profile.RoleFaculty,
	})
	require.NoError(t, err)

	resp, newRefreshToken, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, newRefreshToken)

	// The old token is revoked by the rotation
	assert.True(t, tokenRepo.revoked[refreshToken])
	_, _, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefreshInvalidToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Refresh(context.Background(), "not-a-stored-token")
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestLogout(t *testing.T) {
	svc, tokenRepo := newTestService(t)

	_, refreshToken, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@campus.edu",
		Password: testPassword,
		Role:     profile.RoleFaculty,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), refreshToken))
	assert.True(t, tokenRepo.revoked[refreshToken])

	_, _, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestMe(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Me(context.Background(), "faculty-1")
	require.NoError(t, err)
	assert.Equal(t, "asha@campus.edu", resp.Email)
	assert.Equal(t, profile.RoleFaculty, resp.Role)

	_, err = svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}
