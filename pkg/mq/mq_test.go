package mq

import "testing"

func TestMemoryRecordsInOrder(t *testing.T) {
	m := &Memory{}
	if err := m.Publish(TopicTaskCreated, []byte("a")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := m.Publish(TopicTaskDeleted, []byte("b")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	msgs := m.Messages()
	if len(msgs) != 2 || msgs[0].Topic != TopicTaskCreated || msgs[1].Topic != TopicTaskDeleted {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestMemoryCopiesPayload(t *testing.T) {
	m := &Memory{}
	payload := []byte("abc")
	_ = m.Publish(TopicTaskUpdated, payload)
	payload[0] = 'x'

	if got := string(m.Messages()[0].Payload); got != "abc" {
		t.Fatalf("payload aliased caller buffer: %q", got)
	}
}
