// Package notify publishes booking lifecycle events for the dispatch service.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
)

const (
	EventReservationCreated  = "reservation_created"
	EventReservationApproved = "reservation_approved"
	EventCancellation        = "cancellation"
)

// Envelope is the message value on the notifications topic.
type Envelope struct {
	Event      string                `json:"event"`
	Recipients []string              `json:"recipients"`
	Booking    domainbooking.Summary `json:"booking"`
}

type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	return sarama.NewSyncProducer(brokers, cfg)
}

func NewKafkaNotifier(producer sarama.SyncProducer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

func (n *KafkaNotifier) ReservationCreated(ctx context.Context, recipients []string, s domainbooking.Summary) error {
	return n.publish(ctx, EventReservationCreated, recipients, s)
}

func (n *KafkaNotifier) ReservationApproved(ctx context.Context, recipients []string, s domainbooking.Summary) error {
	return n.publish(ctx, EventReservationApproved, recipients, s)
}

func (n *KafkaNotifier) Cancellation(ctx context.Context, recipients []string, s domainbooking.Summary) error {
	return n.publish(ctx, EventCancellation, recipients, s)
}

func (n *KafkaNotifier) publish(ctx context.Context, event string, recipients []string, s domainbooking.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(Envelope{Event: event, Recipients: recipients, Booking: s})
	if err != nil {
		return fmt.Errorf("notify: encode %s: %w", event, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(s.BookingID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(event)},
		},
	}
	if _, _, err := n.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("notify: publish %s: %w", event, err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Close()
}

var _ domainbooking.Notifier = (*KafkaNotifier)(nil)
