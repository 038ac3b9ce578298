// Package bus implements the cloud message bus publisher/subscriber over
// NATS: JSON-marshal on publish, bounded retry with linear backoff, and a
// thin subscription wrapper for the inbound control topics.
package bus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher is the capability interface the output worker depends on.
type Publisher interface {
	Publish(topic string, payload any) error
}

// NATSBus wraps a *nats.Conn as both Publisher and the inbound
// control-topic subscriber.
type NATSBus struct {
	conn       *nats.Conn
	maxRetries int
}

// Connect dials the configured NATS server.
func Connect(url string, maxRetries int) (*NATSBus, error) {
	conn, err := nats.Connect(url, nats.MaxReconnects(-1), nats.ReconnectWait(2*time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &NATSBus{conn: conn, maxRetries: maxRetries}, nil
}

// Publish JSON-marshals payload and publishes it to topic, retrying with a
// linear backoff on failure.
func (b *NATSBus) Publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	var lastErr error
	for i := 0; i < b.maxRetries; i++ {
		if err := b.conn.Publish(topic, data); err == nil {
			return nil
		} else {
			lastErr = err
			time.Sleep(time.Duration(i) * 100 * time.Millisecond)
		}
	}
	return fmt.Errorf("publish to %s failed after %d attempts: %w", topic, b.maxRetries, lastErr)
}

// ControlHandler receives an inbound control-topic payload.
type ControlHandler func(data []byte)

// Subscribe wires a handler to one of the inbound control topics named in
// the external interfaces section (reset_camera, force_detect, change_var,
// trigger_detection, stop_detection). Handlers must not block: NATS
// dispatches callbacks on its own goroutines.
func (b *NATSBus) Subscribe(topic string, handler ControlHandler) (*nats.Subscription, error) {
	return b.conn.Subscribe(topic, func(msg *nats.Msg) {
		handler(msg.Data)
	})
}

// Close drains and closes the connection.
func (b *NATSBus) Close() {
	b.conn.Drain()
}

// Conn exposes the underlying *nats.Conn for callers (health checks) that
// need to inspect connection state directly rather than through Publisher.
func (b *NATSBus) Conn() *nats.Conn {
	return b.conn
}

var _ Publisher = (*NATSBus)(nil)
