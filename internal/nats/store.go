package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the JetStream stream holding every devnexus event.
	StreamName = "devnexus"

	retention = 30 * 24 * time.Hour

	// EventTypeProject is the event type for project lifecycle events.
	EventTypeProject = "project"
)

// SubjectForOwner matches every event of one account: "devnexus.<owner>.>".
func SubjectForOwner(owner string) string {
	return fmt.Sprintf("devnexus.%s.>", owner)
}

// SubjectForEvent is the subject one event type is published on:
// "devnexus.<owner>.<type>".
func SubjectForEvent(owner, eventType string) string {
	return fmt.Sprintf("devnexus.%s.%s", owner, eventType)
}

// SetupStream creates or updates the devnexus stream with file storage and
// 30 day retention.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{"devnexus.>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   retention,
	})
}
