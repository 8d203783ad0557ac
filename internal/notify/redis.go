package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// message is the JSON envelope delivered to topic subscribers.
type message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// RedisSink publishes updates to a Redis channel named by the configured topic.
type RedisSink struct {
	client *redis.Client
	topic  string
}

// NewRedisSink creates a sink bound to one topic.
func NewRedisSink(client *redis.Client, topic string) *RedisSink {
	return &RedisSink{
		client: client,
		topic:  topic,
	}
}

// Publish delivers the subject and body as one JSON payload. A failed delivery
// is terminal for the invocation; the caller does not retry.
func (s *RedisSink) Publish(ctx context.Context, subject, body string) error {
	payload, err := encodeMessage(subject, body)
	if err != nil {
		return &PublishError{Topic: s.topic, Err: err}
	}

	if err := s.client.Publish(ctx, s.topic, payload).Err(); err != nil {
		return &PublishError{Topic: s.topic, Err: err}
	}
	return nil
}

func encodeMessage(subject, body string) ([]byte, error) {
	return json.Marshal(message{Subject: subject, Body: body})
}
