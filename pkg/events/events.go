package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/penbot/penbot-web/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	ID        string
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// NoopBus satisfies EventBus when no broker is configured. Publishes
// are dropped silently; subscriptions never fire.
type NoopBus struct{}

func (NoopBus) Publish(context.Context, string, interface{}) error { return nil }
func (NoopBus) Subscribe(string, func(msg *Message)) error         { return nil }
func (NoopBus) Close() error                                       { return nil }

// Event subjects
const (
	BookingCreated = "booking.created"
	SessionChanged = "session.changed"
	SessionExpired = "session.expired"
)

type BookingCreatedEvent struct {
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Headcount int       `json:"headcount"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionChangedEvent notifies other instances that the stored token
// was written or cleared, replacing the browser storage-change event
// the web client used to rely on.
type SessionChangedEvent struct {
	Present   bool      `json:"present"`
	ChangedAt time.Time `json:"changed_at"`
}
