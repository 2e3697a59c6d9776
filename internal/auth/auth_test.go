package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/devnexus/devnexus/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "devnexus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st, 0), st
}

func TestLogin_StoresSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Login(ctx, Credentials{Email: "me@nexus.dev", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, MockToken, sess.Token)
	assert.Equal(t, "John Doe", sess.User.Name)
	assert.Equal(t, "me@nexus.dev", sess.User.Email)

	token, err := st.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "mock-jwt-token", token)

	raw, err := st.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","email":"me@nexus.dev","name":"John Doe"}`, raw)

	cur, err := svc.Guard(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.User, cur.User)
}

func TestLogin_InvalidDoesNotStore(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, Credentials{Email: "bad", Password: "123"})
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Email is invalid", verrs.For("email"))
	assert.Equal(t, "Password must be at least 6 characters", verrs.For("password"))

	sess, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSignUpAndGoogle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.SignUp(ctx, Credentials{Name: "Ada", Email: "ada@nexus.dev", Password: "engine", ConfirmPassword: "engine"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", sess.User.Name)

	sess, err = svc.Google(ctx)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "1", Email: "demo@devnexus.com", Name: "Google User"}, sess.User)
}

func TestLogoutAndGuard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Guard(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Google(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Guard(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrent_CorruptUser(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, TokenKey, MockToken))
	require.NoError(t, st.Set(ctx, UserKey, "{"))

	sess, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSignIn_HonorsContext(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "devnexus.db"))
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	svc := NewService(st, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = svc.Google(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	_, err = st.Get(context.Background(), TokenKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
