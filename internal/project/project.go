package project

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/submit"
)

// Project is a submission as it stands after every recorded event.
type Project struct {
	submit.Submission
	UpdatedAt time.Time `json:"updatedAt"`
	Reason    string    `json:"reason,omitempty"`
}

// State holds one owner's projects, keyed by submission ID.
type State struct {
	Owner    string              `json:"owner"`
	Projects map[string]*Project `json:"projects"`
}

// NewState returns an empty state for owner.
func NewState(owner string) *State {
	return &State{Owner: owner, Projects: make(map[string]*Project)}
}

type statusMeta struct {
	ID     string        `json:"id"`
	Status submit.Status `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

// Apply folds one event into the state. Unknown actions and events for
// unknown projects are ignored.
func (st *State) Apply(event Event) {
	switch event.Action {
	case ActionSubmit:
		var sub submit.Submission
		if err := json.Unmarshal(event.Data, &sub); err != nil {
			logger.Warn("ignoring submit event %s: %v", event.ID, err)
			return
		}
		if sub.ID == "" {
			sub.ID = event.ID
		}
		if sub.Status == "" {
			sub.Status = submit.StatusPending
		}
		st.Projects[sub.ID] = &Project{Submission: sub, UpdatedAt: event.Timestamp}

	case ActionStatus, ActionWithdraw:
		var meta statusMeta
		if err := json.Unmarshal(event.Meta, &meta); err != nil {
			return
		}
		p, ok := st.Projects[meta.ID]
		if !ok {
			return
		}
		if event.Action == ActionWithdraw {
			meta.Status = submit.StatusWithdrawn
		}
		p.Status = meta.Status
		p.Reason = meta.Reason
		p.UpdatedAt = event.Timestamp
	}
}

// List returns the projects newest first.
func (st *State) List() []*Project {
	out := make([]*Project, 0, len(st.Projects))
	for _, p := range st.Projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
