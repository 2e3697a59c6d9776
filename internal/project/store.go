// Package project keeps submitted projects as an append-only event log in
// JetStream and rebuilds their current state by replaying it.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/nats"
	"github.com/gosimple/slug"
	"github.com/nats-io/nats.go/jetstream"
)

// Event actions.
const (
	ActionSubmit   = "submit"
	ActionStatus   = "status"
	ActionWithdraw = "withdraw"
)

// Event is one entry of the project log.
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Owner     string          `json:"owner"`
	Type      string          `json:"type"`
	Action    string          `json:"action"`
	Meta      json.RawMessage `json:"meta,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Store publishes project events and loads state from the stream.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
	now    func() time.Time
}

// NewStore wraps a JetStream handle and the devnexus stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{js: js, stream: stream, now: time.Now}
}

// OwnerKey turns an account email into a subject-safe token.
func OwnerKey(email string) string {
	if key := slug.Make(email); key != "" {
		return key
	}
	return "anonymous"
}

// PublishEvent appends event to the log on devnexus.<owner>.<type>.
func (s *Store) PublishEvent(ctx context.Context, event Event) (*jetstream.PubAck, error) {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if event.Type == "" {
		event.Type = nats.EventTypeProject
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshaling event: %w", err)
	}

	subject := nats.SubjectForEvent(event.Owner, event.Type)
	logger.Debug("publishing %s/%s for %s", event.Type, event.Action, event.Owner)

	ack, err := s.js.Publish(ctx, subject, data)
	if err != nil {
		return nil, fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return ack, nil
}

// LoadState replays every event of owner into a fresh State.
func (s *Store) LoadState(ctx context.Context, owner string) (*State, error) {
	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject:     nats.SubjectForOwner(owner),
		DeliverPolicy:     jetstream.DeliverAllPolicy,
		AckPolicy:         jetstream.AckExplicitPolicy,
		InactiveThreshold: 30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("creating consumer: %w", err)
	}

	state := NewState(owner)

	const batchSize = 500
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		n := 0
		for msg := range msgs.Messages() {
			n++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				_ = msg.Ack()
				continue
			}
			if event.ID == "" {
				if meta, err := msg.Metadata(); err == nil {
					event.ID = fmt.Sprintf("%d", meta.Sequence.Stream)
				}
			}
			state.Apply(event)
			_ = msg.Ack()
		}

		if n < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("skipped %d malformed project events for %s", malformed, owner)
	}
	logger.Debug("loaded %d projects for %s", len(state.Projects), owner)
	return state, nil
}
