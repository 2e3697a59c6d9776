package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/devnexus/devnexus/internal/submit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "devnexus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// tick makes the store clock advance one second per call.
func tick(s *Store) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func TestOpen_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "devnexus.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	assert.Equal(t, len(migrations), s.schemaVersion(context.Background()))
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devnexus.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "authToken", "abc"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	v, err := s.Get(context.Background(), "authToken")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestKV(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "authUser", `{"name":"John Doe"}`))
	require.NoError(t, s.Set(ctx, "authUser", `{"name":"Jane"}`))
	v, err := s.Get(ctx, "authUser")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Jane"}`, v)

	require.NoError(t, s.Delete(ctx, "authUser", "never-set"))
	_, err = s.Get(ctx, "authUser")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDrafts(t *testing.T) {
	s := newTestStore(t)
	tick(s)
	ctx := context.Background()

	form := submit.NewForm().WithPlatform(submit.PlatformMobile)
	form.Title = "Nexus"
	form, err := form.WithScreenshot(1, submit.Image{URI: "/tmp/s.png"})
	require.NoError(t, err)

	id, err := s.SaveDraft(ctx, Draft{Owner: "demo", Form: form})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	untitled, err := s.SaveDraft(ctx, Draft{ID: "fixed", Owner: "demo", Form: submit.NewForm()})
	require.NoError(t, err)
	assert.Equal(t, "fixed", untitled)

	_, err = s.SaveDraft(ctx, Draft{Owner: "someone-else", Form: submit.NewForm()})
	require.NoError(t, err)

	got, err := s.GetDraft(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, form, got.Form)
	assert.Equal(t, "Nexus", got.Title())
	assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 1, 0, time.UTC), got.UpdatedAt)

	drafts, err := s.ListDrafts(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "fixed", drafts[0].ID, "newest first")
	assert.Equal(t, "Untitled draft", drafts[0].Title())

	// Updating moves a draft to the front.
	form.Title = "Nexus v2"
	_, err = s.SaveDraft(ctx, Draft{ID: id, Owner: "demo", Form: form})
	require.NoError(t, err)
	drafts, err = s.ListDrafts(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, id, drafts[0].ID)
	assert.Equal(t, "Nexus v2", drafts[0].Form.Title)

	require.NoError(t, s.DeleteDraft(ctx, id))
	_, err = s.GetDraft(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteDraft(ctx, id), ErrNotFound)
}
