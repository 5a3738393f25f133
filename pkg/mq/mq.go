package mq

import "sync"

// Topics published by the server on task mutations.
const (
	TopicTaskCreated = "task.created"
	TopicTaskUpdated = "task.updated"
	TopicTaskDeleted = "task.deleted"
)

type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Subscriber is the consuming half of the interface. Nothing in the service
// subscribes yet; it is reserved for the day a real broker replaces Noop,
// which satisfies both halves.
type Subscriber interface {
	Subscribe(topic string, handler func([]byte) error) error
}

// Noop drops everything; the default wiring until a real broker is needed.
type Noop struct{}

func (Noop) Publish(topic string, payload []byte) error               { return nil }
func (Noop) Subscribe(topic string, handler func([]byte) error) error { return nil }

type Message struct {
	Topic   string
	Payload []byte
}

// Memory records published messages in order. Used by tests to assert what
// the server emits.
type Memory struct {
	mu   sync.Mutex
	msgs []Message
}

func (m *Memory) Publish(topic string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := make([]byte, len(payload))
	copy(p, payload)
	m.msgs = append(m.msgs, Message{Topic: topic, Payload: p})
	return nil
}

func (m *Memory) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.msgs))
	copy(out, m.msgs)
	return out
}
