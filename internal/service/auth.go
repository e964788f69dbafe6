package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/domain/model"
	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

// DefaultSessionTTL is the fixed client-side expiry applied at login,
// independent of any server-side token invalidation.
const DefaultSessionTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.APIClient
	Sessions ports.SessionStore
	TTL      time.Duration // zero means DefaultSessionTTL
}

// AuthService orchestrates the login flow: credential exchange against the
// backend, session persistence with a time-boxed expiry, and synchronous
// reads of the cached identity.
type AuthService struct {
	api          ports.APIClient
	sessions     ports.SessionStore
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return NewAuthServiceWithTimeProvider(opts, &RealTimeProvider{})
}

// NewAuthServiceWithTimeProvider constructs an AuthService with a custom time provider.
func NewAuthServiceWithTimeProvider(opts AuthServiceOptions, tp TimeProvider) *AuthService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		api:          opts.API,
		sessions:     opts.Sessions,
		ttl:          ttl,
		timeProvider: tp,
	}
}

// loginRequest is the credential exchange payload for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginData is the envelope data returned by a successful login.
type loginData struct {
	Token string     `json:"token"`
	Type  string     `json:"type"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a bearer token, persists the resulting
// session with a fixed expiry, and returns it. The request goes out
// unauthenticated: any cached session is set aside before the exchange and
// put back if the exchange fails, so a typo'd password never costs a
// still-valid session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}
	if password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}

	prev, prevErr := s.sessions.Current(ctx)
	if err := s.sessions.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear previous session: %w", err)
	}

	session, err := s.exchange(ctx, email, password)
	if err != nil {
		if prevErr == nil {
			// Best effort; the login failure is the error that matters.
			_ = s.sessions.Save(ctx, prev)
		}
		return nil, err
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

func (s *AuthService) exchange(ctx context.Context, email, password string) (domainauth.Session, error) {
	var data loginData
	err := s.api.Post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &data)
	if err != nil {
		return domainauth.Session{}, normalizeErr(err, "login error")
	}
	if data.Token == "" {
		return domainauth.Session{}, apperrors.Backend("login succeeded without a token")
	}
	if _, ok := domainauth.ParseRole(data.User.Role); !ok {
		return domainauth.Session{}, apperrors.Backendf("login returned unknown role %q", data.User.Role)
	}

	return domainauth.Session{
		Token:     data.Token,
		User:      data.User,
		ExpiresAt: s.timeProvider.Now().Add(s.ttl),
	}, nil
}

// Logout removes the stored session. Logging out with no session is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the cached profile, or nil when no usable session is
// stored. Absent, expired and corrupt records all degrade to nil; store
// read failures are reported.
func (s *AuthService) CurrentUser(ctx context.Context) (*model.User, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	user := sess.User
	return &user, nil
}

// CurrentToken returns the cached bearer token, or "" when none is stored.
func (s *AuthService) CurrentToken(ctx context.Context) string {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return ""
	}
	return sess.Token
}

// IsAuthenticated reports whether a non-expired token is cached. It does
// NOT verify the token server-side; invalidity is discovered lazily when a
// later call fails with an unauthorized outcome.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.CurrentToken(ctx) != ""
}
