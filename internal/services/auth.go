// Package services contains the auth core's business logic.
// This file defines the authentication service: signup, login, logout and
// bootstrap (restoring the previous session at process start).
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/localauth/internal/cryptox"
	"github.com/dmitrijs2005/localauth/internal/logging"
	"github.com/dmitrijs2005/localauth/internal/models"
	"github.com/dmitrijs2005/localauth/internal/repositories/auth"
	"github.com/dmitrijs2005/localauth/internal/validation"
)

// Operation names, used as log and metric labels.
const (
	opSignup    = "signup"
	opLogin     = "login"
	opLogout    = "logout"
	opBootstrap = "bootstrap"
)

// SignupCredentials are the raw, unsanitized signup form values.
type SignupCredentials struct {
	Name     string
	Email    string
	Password string
}

// LoginCredentials are the raw, unsanitized login form values.
type LoginCredentials struct {
	Email    string
	Password string
}

// AuthService defines the authentication operations exposed to the UI.
//
// Contract:
//   - Signup: validate, create the user and open a session for it.
//   - Login: verify credentials and open a session, replacing any previous one.
//   - Logout: drop the current session.
//   - Bootstrap: return the user of the stored session, or nil. Never fails.
//
// Every error returned is an *AuthError.
type AuthService interface {
	Signup(ctx context.Context, creds SignupCredentials) (*models.User, error)
	Login(ctx context.Context, creds LoginCredentials) (*models.User, error)
	Logout(ctx context.Context) error
	Bootstrap(ctx context.Context) *models.User
}

// MetricsRecorder counts finished operations.
type MetricsRecorder interface {
	ObserveOperation(operation, result string)
}

type authService struct {
	repo    auth.Repository
	hasher  cryptox.Hasher
	log     logging.Logger
	metrics MetricsRecorder
	now     func() time.Time
	newID   func() string
}

// Option customizes an AuthService.
type Option func(*authService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *authService) { s.now = now }
}

// WithIDGenerator replaces the UUIDv4 user id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *authService) { s.newID = newID }
}

// WithMetrics counts every operation in m.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *authService) { s.metrics = m }
}

// NewAuthService constructs an AuthService over the given repository and hasher.
func NewAuthService(repo auth.Repository, hasher cryptox.Hasher, log logging.Logger, opts ...Option) AuthService {
	s := &authService{
		repo:   repo,
		hasher: hasher,
		log:    log.With("component", "auth"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup registers a new user and logs them in. Checks run in a fixed order
// and the first failing one wins.
func (s *authService) Signup(ctx context.Context, creds SignupCredentials) (user *models.User, err error) {
	defer func() { s.observe(opSignup, err) }()

	if !validation.Required(creds.Name) || !validation.Required(creds.Email) || !validation.Required(creds.Password) {
		return nil, newAuthError(CodeMissingFields, "All fields are required")
	}

	name := validation.SanitizeName(creds.Name)
	email := validation.SanitizeEmail(creds.Email)

	// The name length check reports INVALID_EMAIL, not a code of its own.
	if !validation.IsWithinLength(name, 1, validation.MaxNameLength) {
		return nil, newAuthError(CodeInvalidEmail, "Name must be between 1 and 100 characters")
	}
	if !validation.IsValidEmail(email) {
		return nil, newAuthError(CodeInvalidEmail, "Invalid email format")
	}
	if !validation.IsStrongEnoughPassword(creds.Password) {
		return nil, newAuthError(CodeWeakPassword, "Password must be at least 6 characters")
	}

	email = validation.NormalizeEmail(email)

	existing, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		logging.LogError(ctx, s.log, "user lookup failed", err, "op", opSignup)
		return nil, newAuthError(CodeStorageError, "Failed to read users")
	}
	if existing != nil {
		return nil, newAuthError(CodeEmailAlreadyExists, "Email already registered")
	}

	passwordHash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		logging.LogError(ctx, s.log, "password hashing failed", err, "op", opSignup)
		return nil, newAuthError(CodeUnknownError, "Failed to hash password")
	}

	user = &models.User{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.AddUser(ctx, *user); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return nil, newAuthError(CodeEmailAlreadyExists, "Email already registered")
		}
		logging.LogError(ctx, s.log, "saving user failed", err, "op", opSignup)
		return nil, newAuthError(CodeStorageError, "Failed to save user")
	}

	if err := s.openSession(ctx, user.ID); err != nil {
		logging.LogError(ctx, s.log, "saving session failed", err, "op", opSignup, "user_id", user.ID)
		return nil, newAuthError(CodeStorageError, "Failed to save session")
	}

	s.log.Info(ctx, "user signed up", "user_id", user.ID)
	return user, nil
}

// Login authenticates an existing user. An unknown email and a wrong
// password produce the same INVALID_CREDENTIALS error.
func (s *authService) Login(ctx context.Context, creds LoginCredentials) (user *models.User, err error) {
	defer func() { s.observe(opLogin, err) }()

	if !validation.Required(creds.Email) || !validation.Required(creds.Password) {
		return nil, newAuthError(CodeMissingFields, "Email and password are required")
	}

	email := validation.SanitizeEmail(creds.Email)
	if !validation.IsValidEmail(email) {
		return nil, newAuthError(CodeInvalidEmail, "Invalid email format")
	}
	email = validation.NormalizeEmail(email)

	user, err = s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		logging.LogError(ctx, s.log, "user lookup failed", err, "op", opLogin)
		return nil, newAuthError(CodeStorageError, "Failed to read users")
	}
	if user == nil {
		return nil, newAuthError(CodeInvalidCredentials, "Invalid email or password")
	}

	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		return nil, newAuthError(CodeInvalidCredentials, "Invalid email or password")
	}

	if err := s.openSession(ctx, user.ID); err != nil {
		logging.LogError(ctx, s.log, "saving session failed", err, "op", opLogin, "user_id", user.ID)
		return nil, newAuthError(CodeStorageError, "Failed to save session")
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

// Logout clears the stored session.
func (s *authService) Logout(ctx context.Context) (err error) {
	defer func() { s.observe(opLogout, err) }()

	if err := s.repo.ClearSession(ctx); err != nil {
		logging.LogError(ctx, s.log, "clearing session failed", err, "op", opLogout)
		return newAuthError(CodeStorageError, "Failed to clear session")
	}
	s.log.Info(ctx, "user logged out")
	return nil
}

// Bootstrap restores the user of the stored session. It returns nil when
// there is no session, when the session points at a missing user (the
// session is then cleared) and on any storage fault (best-effort clear).
func (s *authService) Bootstrap(ctx context.Context) *models.User {
	user, result, err := s.restore(ctx)
	if err != nil {
		logging.LogError(ctx, s.log, "bootstrap failed, falling back to logged out", err, "op", opBootstrap)
		if clearErr := s.repo.ClearSession(ctx); clearErr != nil {
			s.log.Warn(ctx, "could not clear session after bootstrap failure", "error", clearErr)
		}
		s.observeResult(opBootstrap, "fault")
		return nil
	}
	s.observeResult(opBootstrap, result)
	return user
}

func (s *authService) restore(ctx context.Context) (*models.User, string, error) {
	session, err := s.repo.GetSession(ctx)
	if err != nil {
		return nil, "", err
	}
	if session == nil {
		return nil, "no_session", nil
	}

	user, err := s.repo.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		s.log.Warn(ctx, "session references a missing user, clearing it", "user_id", session.UserID)
		if err := s.repo.ClearSession(ctx); err != nil {
			return nil, "", err
		}
		return nil, "stale_session", nil
	}

	s.log.Debug(ctx, "session restored", "user_id", user.ID)
	return user, "ok", nil
}

func (s *authService) openSession(ctx context.Context, userID string) error {
	return s.repo.SaveSession(ctx, models.Session{UserID: userID, CreatedAt: s.now().UTC()})
}

func (s *authService) observe(operation string, err error) {
	if err != nil {
		s.observeResult(operation, string(CodeOf(err)))
		return
	}
	s.observeResult(operation, "ok")
}

func (s *authService) observeResult(operation, result string) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, result)
	}
}
