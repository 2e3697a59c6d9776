package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/devnexus/devnexus/internal/submit"
	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("project not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Submit records a finalized submission.
func (s *Store) Submit(ctx context.Context, owner string, sub submit.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshaling submission: %w", err)
	}
	_, err = s.PublishEvent(ctx, Event{
		ID:     sub.ID,
		Owner:  owner,
		Action: ActionSubmit,
		Data:   data,
	})
	return err
}

// Find resolves a project by full ID or unique prefix.
func (st *State) Find(id string) (*Project, error) {
	if p, ok := st.Projects[id]; ok {
		return p, nil
	}
	var match *Project
	for key, p := range st.Projects {
		if id != "" && strings.HasPrefix(key, id) {
			if match != nil {
				return nil, fmt.Errorf("%w: %q is ambiguous", ErrNotFound, id)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return match, nil
}

// canMove reports whether a project may go from one status to another.
// Review decides pending projects; only approved projects that are for sale
// can be listed on the marketplace; anything still live can be withdrawn.
func canMove(p *Project, to submit.Status) bool {
	from := p.Status
	switch to {
	case submit.StatusApproved, submit.StatusRejected:
		return from == submit.StatusPending
	case submit.StatusMarketplace:
		return from == submit.StatusApproved && p.Project.ForSale
	case submit.StatusWithdrawn:
		return from != submit.StatusWithdrawn && from != submit.StatusRejected
	}
	return false
}

// SetStatus moves a project to a new review status.
func (s *Store) SetStatus(ctx context.Context, owner, id string, to submit.Status, reason string) (*Project, error) {
	state, err := s.LoadState(ctx, owner)
	if err != nil {
		return nil, err
	}
	p, err := state.Find(id)
	if err != nil {
		return nil, err
	}
	if !canMove(p, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, to)
	}

	action := ActionStatus
	if to == submit.StatusWithdrawn {
		action = ActionWithdraw
	}
	meta, err := json.Marshal(statusMeta{ID: p.ID, Status: to, Reason: reason})
	if err != nil {
		return nil, err
	}
	event := Event{
		ID:        uuid.NewString(),
		Timestamp: s.now(),
		Owner:     owner,
		Action:    action,
		Meta:      meta,
	}
	if _, err := s.PublishEvent(ctx, event); err != nil {
		return nil, err
	}
	state.Apply(event)
	return p, nil
}

// List loads the owner's projects, newest first.
func (s *Store) List(ctx context.Context, owner string) ([]*Project, error) {
	state, err := s.LoadState(ctx, owner)
	if err != nil {
		return nil, err
	}
	return state.List(), nil
}
