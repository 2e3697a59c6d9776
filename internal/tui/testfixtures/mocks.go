// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    sub := testfixtures.NewMockSubmitter()
//	    drafts := testfixtures.NewMockDrafts()
//	    // Use mocks in your test...
//	    require.Len(t, sub.Submissions(), 1)
//	}
package testfixtures

import (
	"context"
	"fmt"
	"sync"

	"github.com/devnexus/devnexus/internal/store"
	"github.com/devnexus/devnexus/internal/submit"
)

// MockSubmitter records submissions instead of publishing them.
type MockSubmitter struct {
	mu    sync.Mutex
	subs  []submit.Submission
	owner string
	Err   error
}

// NewMockSubmitter creates an empty MockSubmitter.
func NewMockSubmitter() *MockSubmitter {
	return &MockSubmitter{}
}

// Submit records sub unless Err is set.
func (m *MockSubmitter) Submit(ctx context.Context, owner string, sub submit.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.owner = owner
	m.subs = append(m.subs, sub)
	return nil
}

// Submissions returns a copy of everything recorded.
func (m *MockSubmitter) Submissions() []submit.Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]submit.Submission, len(m.subs))
	copy(out, m.subs)
	return out
}

// Owner returns the owner of the last recorded submission.
func (m *MockSubmitter) Owner() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.owner
}

// MockDrafts keeps drafts in memory.
type MockDrafts struct {
	mu      sync.Mutex
	drafts  map[string]store.Draft
	counter int
	Deleted []string
}

// NewMockDrafts creates an empty MockDrafts.
func NewMockDrafts() *MockDrafts {
	return &MockDrafts{drafts: make(map[string]store.Draft)}
}

// SaveDraft stores d, assigning an ID when it has none.
func (m *MockDrafts) SaveDraft(ctx context.Context, d store.Draft) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == "" {
		m.counter++
		d.ID = fmt.Sprintf("draft-%d", m.counter)
	}
	m.drafts[d.ID] = d
	return d.ID, nil
}

// DeleteDraft removes a draft.
func (m *MockDrafts) DeleteDraft(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drafts[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.drafts, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// Get returns a stored draft.
func (m *MockDrafts) Get(id string) (store.Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	return d, ok
}
