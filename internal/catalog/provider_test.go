package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestProvider_Load(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProvider(10 * time.Millisecond)
	assert.Empty(t, p.Snapshot().Apps)

	start := time.Now()
	snap, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	assert.Len(t, snap.Apps, 4)
	assert.Len(t, snap.Items, 4)
	assert.Len(t, snap.Projects, 4)
	require.NotNil(t, snap.User)
	assert.Equal(t, "John Developer", snap.User.Name)
	assert.False(t, p.Loading())
}

func TestProvider_LoadIsCached(t *testing.T) {
	p := NewProvider(0)
	_, err := p.Load(context.Background())
	require.NoError(t, err)

	p.delay = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	snap, err := p.Load(ctx)
	require.NoError(t, err, "second load does not wait")
	assert.Len(t, snap.Apps, 4)
}

func TestProvider_RefreshCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProvider(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.Snapshot().Items)
	assert.False(t, p.Loading())
}

func TestProvider_Logout(t *testing.T) {
	p := NewProvider(0)
	_, err := p.Load(context.Background())
	require.NoError(t, err)

	p.Logout()
	snap := p.Snapshot()
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Projects)
	assert.Len(t, snap.Apps, 4, "public data survives logout")

	snap, err = p.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.User)
}

func TestProvider_SnapshotIsACopy(t *testing.T) {
	p := NewProvider(0)
	snap, err := p.Load(context.Background())
	require.NoError(t, err)

	snap.Apps[0].Title = "changed"
	snap.User.Name = "changed"

	fresh := p.Snapshot()
	assert.Equal(t, "AI Assistant", fresh.Apps[0].Title)
	assert.Equal(t, "John Developer", fresh.User.Name)
}

func TestProvider_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProvider(time.Millisecond)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = p.Refresh(context.Background())
			_ = p.Snapshot()
		}()
	}
	wg.Wait()
	assert.Len(t, p.Snapshot().Items, 4)
}

func TestSnapshot_Item(t *testing.T) {
	p := NewProvider(0)
	snap, err := p.Load(context.Background())
	require.NoError(t, err)

	it, ok := snap.Item("2")
	require.True(t, ok)
	assert.Equal(t, "Mobile App Source Code", it.Title)

	_, ok = snap.Item("99")
	assert.False(t, ok)
}
