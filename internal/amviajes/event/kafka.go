package event

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "amviajes_events_published_total",
	Help: "Domain events written to Kafka, by type and result",
}, []string{"type", "result"})

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Kafka struct {
	writer messageWriter
	topic  string
}

func NewKafka(cfg KafkaConfig) *Kafka {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            3,
		ReadTimeout:            5 * time.Second,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &Kafka{writer: w, topic: cfg.Topic}
}

func (k *Kafka) Topic() string {
	return k.topic
}

func (k *Kafka) Publish(ctx context.Context, e Event) error {
	value, err := e.Encode()
	if err != nil {
		return err
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   e.Key(),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
		},
	})
	if err != nil {
		eventsPublished.WithLabelValues(string(e.Type), "error").Inc()
		return fmt.Errorf("write event %s: %w", e.Type, err)
	}
	eventsPublished.WithLabelValues(string(e.Type), "ok").Inc()
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
