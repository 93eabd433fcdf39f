package messaging

import "context"

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
	Close() error
}

type nopPublisher struct{}

// NewNopPublisher drops every event. It is used when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	return nil
}

func (nopPublisher) Close() error { return nil }
