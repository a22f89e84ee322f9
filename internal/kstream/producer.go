// Package kstream publishes admin activity to a Kafka topic.
package kstream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"aradamart/internal/domain"
	applog "aradamart/internal/log"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ActivityPublisher forwards every recorded activity to a topic, keyed by
// activity type so one type stays on one partition. It satisfies
// store.ActivitySink.
type ActivityPublisher struct {
	w messageWriter
}

func NewActivityPublisher(brokers []string, topic string) *ActivityPublisher {
	return &ActivityPublisher{w: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		WriteTimeout: 5 * time.Second,
		Completion:   reportDelivery,
	}}
}

// reportDelivery logs a failed async batch. WriteMessages has already
// returned nil for these messages, so this is the only place the loss shows.
func reportDelivery(msgs []kafka.Message, err error) {
	if err == nil {
		return
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		for _, h := range m.Headers {
			if h.Key == "activity-id" {
				ids = append(ids, string(h.Value))
			}
		}
	}
	applog.Error(nil, "activity.kafka.fail", err, map[string]any{"count": len(msgs), "activity_ids": ids})
}

func activityMessage(a domain.Activity) (kafka.Message, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(a.Type),
		Value: data,
		Time:  a.Timestamp,
		Headers: []kafka.Header{
			{Key: "activity-id", Value: []byte(a.ID)},
		},
	}, nil
}

func (p *ActivityPublisher) Append(ctx context.Context, a domain.Activity) error {
	msg, err := activityMessage(a)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, msg)
}

// Close flushes pending messages.
func (p *ActivityPublisher) Close() error { return p.w.Close() }
