// Package auth signs users in against the mock backend and keeps the
// resulting session token in local storage.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/store"
)

// Storage keys and mock backend values.
const (
	TokenKey = "authToken"
	UserKey  = "authUser"

	MockToken     = "mock-jwt-token"
	LoginName     = "John Doe"
	GoogleEmail   = "demo@devnexus.com"
	GoogleName    = "Google User"
	mockAccountID = "1"
)

// ErrNotAuthenticated is returned by guarded operations without a session.
var ErrNotAuthenticated = errors.New("not signed in: run `devnexus login` first")

// KV is the key-value storage a session is kept in.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// User is the signed-in account as stored under UserKey.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is a stored token and its user.
type Session struct {
	Token string
	User  User
}

// Service performs sign-in flows against the mock backend.
type Service struct {
	kv    KV
	delay time.Duration
}

// NewService creates a service that stores sessions in kv and simulates
// delay of backend latency.
func NewService(kv KV, delay time.Duration) *Service {
	return &Service{kv: kv, delay: delay}
}

// Login validates the credentials and signs in as the mock account.
func (s *Service) Login(ctx context.Context, c Credentials) (*Session, error) {
	if err := ValidateLogin(c); err != nil {
		return nil, err
	}
	return s.signIn(ctx, User{ID: mockAccountID, Email: c.Email, Name: LoginName})
}

// SignUp validates the sign-up form and signs in with the given name.
func (s *Service) SignUp(ctx context.Context, c Credentials) (*Session, error) {
	if err := ValidateSignUp(c); err != nil {
		return nil, err
	}
	return s.signIn(ctx, User{ID: mockAccountID, Email: c.Email, Name: c.Name})
}

// Google signs in as the demo Google account.
func (s *Service) Google(ctx context.Context) (*Session, error) {
	return s.signIn(ctx, User{ID: mockAccountID, Email: GoogleEmail, Name: GoogleName})
}

func (s *Service) signIn(ctx context.Context, u User) (*Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	data, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encoding user: %w", err)
	}
	if err := s.kv.Set(ctx, TokenKey, MockToken); err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}
	if err := s.kv.Set(ctx, UserKey, string(data)); err != nil {
		return nil, fmt.Errorf("storing user: %w", err)
	}

	logger.Info("signed in as %s", u.Email)
	return &Session{Token: MockToken, User: u}, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Current restores the stored session. It returns nil without error when
// nobody is signed in; an unreadable user record counts as signed out.
func (s *Service) Current(ctx context.Context) (*Session, error) {
	token, err := s.kv.Get(ctx, TokenKey)
	if errors.Is(err, store.ErrNotFound) || (err == nil && token == "") {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	raw, err := s.kv.Get(ctx, UserKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		logger.Warn("discarding unreadable stored user: %v", err)
		return nil, nil
	}
	return &Session{Token: token, User: u}, nil
}

// Logout removes the stored session.
func (s *Service) Logout(ctx context.Context) error {
	return s.kv.Delete(ctx, TokenKey, UserKey)
}

// Guard returns the current session, or ErrNotAuthenticated when nobody is
// signed in. Commands that act on the user's behalf call it first.
func (s *Service) Guard(ctx context.Context) (*Session, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotAuthenticated
	}
	return sess, nil
}
