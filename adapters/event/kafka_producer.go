package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const TopicContactEvents = "contact.events"

const ContactEventTypeSubmitted = "contact.submitted"

type ContactEventPayload struct {
	EventID    string                   `json:"eventId"`
	EventType  string                   `json:"eventType"`
	OccurredAt time.Time                `json:"occurredAt"`
	Message    portfolio.ContactMessage `json:"message"`
}

// MessageWriter is the subset of *kafka.Writer the producer needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ContactEventsWriter MessageWriter
	logger              logger.Logger
	now                 func() time.Time
}

var _ service.ContactNotifier = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))
	return NewProducer(contactWriter, log), nil
}

func NewProducer(w MessageWriter, log logger.Logger) *KafkaProducerClient {
	return &KafkaProducerClient{ContactEventsWriter: w, logger: log, now: time.Now}
}

// NotifyContact publishes a contact.submitted event keyed by a fresh event id.
func (c *KafkaProducerClient) NotifyContact(ctx context.Context, msg portfolio.ContactMessage) error {
	payload := ContactEventPayload{
		EventID:    uuid.NewString(),
		EventType:  ContactEventTypeSubmitted,
		OccurredAt: c.now().UTC(),
		Message:    msg,
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal contact event: %w", err)
	}

	err = c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.EventID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish contact event: %w", err)
	}

	c.logger.Info("published contact event", zap.String("event_id", payload.EventID), zap.String("topic", TopicContactEvents))
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		if err := c.ContactEventsWriter.Close(); err != nil {
			c.logger.Error("failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka Producers")
}

// DecodeContactEvent parses a message read from TopicContactEvents.
func DecodeContactEvent(msg kafka.Message) (ContactEventPayload, error) {
	var payload ContactEventPayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal contact event: %w", err)
	}
	if payload.EventType != ContactEventTypeSubmitted {
		return payload, fmt.Errorf("unexpected event type %q", payload.EventType)
	}
	return payload, nil
}
