package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Event is the unit written to Kafka. Key drives partitioning and Value is
// JSON-encoded.
type Event struct {
	Key   string
	Value any
}

// Publisher writes batches of events to a broker.
type Publisher interface {
	PublishBatch(ctx context.Context, events []Event) error
	Close() error
}

// KafkaProducer publishes JSON events to a single Kafka topic.
type KafkaProducer struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

// NewKafkaProducer creates a producer for topic on the given brokers.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  3,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &KafkaProducer{
		writer: w,
		log:    log.With().Str("component", "kafka-producer").Str("topic", topic).Logger(),
	}
}

// PublishBatch encodes events and writes them in a single call.
func (p *KafkaProducer) PublishBatch(ctx context.Context, events []Event) error {
	msgs, err := encodeEvents(events)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.log.Error().Err(err).Int("count", len(msgs)).Msg("failed to publish batch")
		return fmt.Errorf("publishing batch to kafka: %w", err)
	}
	p.log.Debug().Int("count", len(msgs)).Msg("batch published")
	return nil
}

// Close flushes pending writes and closes the writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

func encodeEvents(events []Event) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		value, err := json.Marshal(ev.Value)
		if err != nil {
			return nil, fmt.Errorf("marshaling event value: %w", err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(ev.Key), Value: value})
	}
	return msgs, nil
}
