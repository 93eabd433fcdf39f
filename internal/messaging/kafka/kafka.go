package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aquarium-storefront/internal/messaging"

	kafkaGo "github.com/segmentio/kafka-go"
)

// batchTimeout bounds how long a synchronous write waits for a batch to fill.
const batchTimeout = 10 * time.Millisecond

type kafkaPublisher struct {
	writer *kafkaGo.Writer
}

// NewPublisher creates a Kafka publisher. The topic is chosen per message.
func NewPublisher(brokers []string) messaging.Publisher {
	return &kafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Balancer:               &kafkaGo.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           batchTimeout,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return k.writer.WriteMessages(ctx, kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}
