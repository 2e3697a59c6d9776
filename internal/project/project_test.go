package project

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/devnexus/devnexus/internal/nats"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	e, err := nats.Start(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })

	stream, err := nats.SetupStream(context.Background(), e.JS)
	require.NoError(t, err)
	return NewStore(e.JS, stream)
}

func submission(id, title string, at time.Time, forSale bool) submit.Submission {
	f := submit.NewForm().WithForSale(forSale)
	f.Title = title
	if forSale {
		f.Price = "49"
	}
	return submit.Submission{ID: id, Project: f, Status: submit.StatusPending, SubmittedAt: at}
}

func TestStore_SubmitAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, s.Submit(ctx, "demo", submission("a1", "First", t0, false)))
	require.NoError(t, s.Submit(ctx, "demo", submission("b2", "Second", t0.Add(time.Hour), true)))
	require.NoError(t, s.Submit(ctx, "other", submission("c3", "Elsewhere", t0, false)))

	projects, err := s.List(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Second", projects[0].Project.Title)
	assert.Equal(t, "First", projects[1].Project.Title)
	assert.Equal(t, submit.StatusPending, projects[0].Status)

	others, err := s.List(ctx, "other")
	require.NoError(t, err)
	require.Len(t, others, 1)
}

func TestStore_SetStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.Submit(ctx, "demo", submission("sale-1", "For sale", now, true)))
	require.NoError(t, s.Submit(ctx, "demo", submission("free-1", "Free", now, false)))

	_, err := s.SetStatus(ctx, "demo", "sale-1", submit.StatusMarketplace, "")
	assert.ErrorIs(t, err, ErrInvalidTransition, "pending projects cannot be listed")

	p, err := s.SetStatus(ctx, "demo", "sale", submit.StatusApproved, "looks good")
	require.NoError(t, err)
	assert.Equal(t, submit.StatusApproved, p.Status)

	p, err = s.SetStatus(ctx, "demo", "sale-1", submit.StatusMarketplace, "")
	require.NoError(t, err)
	assert.Equal(t, submit.StatusMarketplace, p.Status)

	_, err = s.SetStatus(ctx, "demo", "free-1", submit.StatusApproved, "")
	require.NoError(t, err)
	_, err = s.SetStatus(ctx, "demo", "free-1", submit.StatusMarketplace, "")
	assert.ErrorIs(t, err, ErrInvalidTransition, "projects not for sale cannot be listed")

	_, err = s.SetStatus(ctx, "demo", "free-1", submit.StatusWithdrawn, "")
	require.NoError(t, err)

	state, err := s.LoadState(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, submit.StatusMarketplace, state.Projects["sale-1"].Status)
	assert.Equal(t, submit.StatusWithdrawn, state.Projects["free-1"].Status)

	_, err = s.SetStatus(ctx, "demo", "missing", submit.StatusApproved, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestState_Apply(t *testing.T) {
	st := NewState("demo")
	t0 := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	data, err := json.Marshal(submission("", "No ID", t0, false))
	require.NoError(t, err)
	st.Apply(Event{ID: "7", Timestamp: t0, Action: ActionSubmit, Data: data})
	require.Contains(t, st.Projects, "7")

	st.Apply(Event{Action: ActionSubmit, Data: json.RawMessage(`{not json`)})
	st.Apply(Event{Action: ActionStatus, Meta: json.RawMessage(`{"id":"nope","status":"approved"}`)})
	st.Apply(Event{Action: "unknown"})
	assert.Len(t, st.Projects, 1)

	st.Apply(Event{Timestamp: t0.Add(time.Minute), Action: ActionWithdraw, Meta: json.RawMessage(`{"id":"7"}`)})
	assert.Equal(t, submit.StatusWithdrawn, st.Projects["7"].Status)
	assert.Equal(t, t0.Add(time.Minute), st.Projects["7"].UpdatedAt)
}

func TestState_FindAmbiguous(t *testing.T) {
	st := NewState("demo")
	st.Projects["abc1"] = &Project{}
	st.Projects["abc2"] = &Project{}

	_, err := st.Find("abc")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Find("")
	assert.ErrorIs(t, err, ErrNotFound)
	p, err := st.Find("abc2")
	require.NoError(t, err)
	assert.Same(t, st.Projects["abc2"], p)
}

func TestOwnerKey(t *testing.T) {
	key := OwnerKey("demo@devnexus.com")
	assert.NotEmpty(t, key)
	assert.False(t, strings.ContainsAny(key, ". @"))
	assert.Equal(t, "anonymous", OwnerKey(""))
}
