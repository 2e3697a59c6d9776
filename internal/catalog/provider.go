package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/devnexus/devnexus/internal/logger"
)

// DefaultDelay is the simulated round trip of a catalog load.
const DefaultDelay = time.Second

// Snapshot is everything one load returns. Slices are owned by the caller.
type Snapshot struct {
	Apps     []App             `json:"apps"`
	Items    []MarketplaceItem `json:"items"`
	User     *User             `json:"user,omitempty"`
	Projects []UserProject     `json:"projects"`
}

// Provider hands out catalog data after a simulated delay. It is safe for
// concurrent use.
type Provider struct {
	delay time.Duration

	mu      sync.RWMutex
	data    Snapshot
	loaded  bool
	loading bool
}

// NewProvider creates an empty provider. A non-positive delay loads
// immediately.
func NewProvider(delay time.Duration) *Provider {
	return &Provider{delay: delay}
}

// Load returns the catalog, fetching it first if it has not been loaded.
func (p *Provider) Load(ctx context.Context) (Snapshot, error) {
	p.mu.RLock()
	loaded := p.loaded
	p.mu.RUnlock()
	if loaded {
		return p.Snapshot(), nil
	}
	return p.Refresh(ctx)
}

// Refresh refetches the catalog, replacing what was loaded before. A
// cancelled context leaves the previous data in place.
func (p *Provider) Refresh(ctx context.Context) (Snapshot, error) {
	p.setLoading(true)
	defer p.setLoading(false)

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Snapshot{}, ctx.Err()
		case <-timer.C:
		}
	}

	p.mu.Lock()
	p.data = Snapshot{
		Apps:     mockApps(),
		Items:    mockItems(),
		User:     mockUser(),
		Projects: mockProjects(),
	}
	p.loaded = true
	p.mu.Unlock()

	logger.Debug("catalog loaded")
	return p.Snapshot(), nil
}

// Logout clears the user and their projects. Apps and listings stay.
func (p *Provider) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data.User = nil
	p.data.Projects = nil
}

// Loading reports whether a refresh is in flight.
func (p *Provider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

func (p *Provider) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.mu.Unlock()
}

// Snapshot returns a copy of the current data without loading.
func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := Snapshot{
		Apps:     append([]App(nil), p.data.Apps...),
		Items:    append([]MarketplaceItem(nil), p.data.Items...),
		Projects: append([]UserProject(nil), p.data.Projects...),
	}
	if p.data.User != nil {
		u := *p.data.User
		s.User = &u
	}
	return s
}

// Item finds a marketplace listing by ID.
func (s Snapshot) Item(id string) (MarketplaceItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return MarketplaceItem{}, false
}
