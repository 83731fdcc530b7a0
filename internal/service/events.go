// NATS JetStream 事件发布

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// StreamEvents is the JetStream stream holding every entry and report event
const StreamEvents = "IFTA_EVENTS"

// EventSubjectPrefix prefixes every event subject
const EventSubjectPrefix = "ifta.events"

// 事件类型
const (
	EventEntryCreated    = "entry.created"
	EventEntryUpdated    = "entry.updated"
	EventEntryIgnored    = "entry.ignored"
	EventEntryDeleted    = "entry.deleted"
	EventEntriesImported = "entries.imported"
	EventReportGenerated = "report.generated"
)

// Event is the envelope published for every change a user makes
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	UserID     int         `json:"userId"`
	Data       interface{} `json:"data,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// NewEvent stamps a new event with an ID and the current time
func NewEvent(eventType string, userID int, data interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// EventSubject returns the subject an event of eventType for userID goes to
func EventSubject(userID int, eventType string) string {
	return fmt.Sprintf("%s.%d.%s", EventSubjectPrefix, userID, eventType)
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// JetStreamPublisher 持久化事件发布
type JetStreamPublisher struct {
	js nats.JetStreamContext
}

// NewJetStreamPublisher creates the events stream if needed and returns a publisher
func NewJetStreamPublisher(nc *nats.Conn) (*JetStreamPublisher, error) {
	js, err := nc.JetStream()
	if err != nil {
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	cfg := &nats.StreamConfig{
		Name:      StreamEvents,
		Subjects:  []string{EventSubjectPrefix + ".>"},
		Retention: nats.LimitsPolicy,
		MaxMsgs:   -1,
		MaxBytes:  1024 * 1024 * 1024, // 1GB
		MaxAge:    30 * 24 * time.Hour,
		Storage:   nats.FileStorage,
		Replicas:  1,
		// 去重窗口
		Duplicates: 2 * time.Minute,
	}

	if _, err := js.AddStream(cfg); err != nil {
		if !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
			return nil, fmt.Errorf("failed to create stream %s: %w", cfg.Name, err)
		}
		if _, err := js.UpdateStream(cfg); err != nil {
			return nil, fmt.Errorf("failed to update stream %s: %w", cfg.Name, err)
		}
	}

	return &JetStreamPublisher{js: js}, nil
}

// Publish stores the event in the stream, deduplicated by event ID
func (p *JetStreamPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = p.js.Publish(EventSubject(event.UserID, event.Type), payload,
		nats.Context(ctx),
		nats.MsgId(event.ID),
	)
	return err
}

// NATSPublisher publishes events on core NATS without persistence
type NATSPublisher struct {
	nc *nats.Conn
}

// NewNATSPublisher creates a core NATS publisher
func NewNATSPublisher(nc *nats.Conn) *NATSPublisher {
	return &NATSPublisher{nc: nc}
}

func (p *NATSPublisher) Publish(_ context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(EventSubject(event.UserID, event.Type), payload)
}

// NopPublisher drops every event, used when NATS is unavailable
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
