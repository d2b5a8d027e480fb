package messaging

import (
	"context"
	"log/slog"

	"guri24/internal/pkg/config"
	"guri24/internal/pkg/errs"
	"guri24/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

var ErrEmptyPayload = errs.New("notification payload is empty")

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes outbox jobs to "<prefix><topic>", keyed by job id so
// redeliveries of one job land on the same partition.
type KafkaPublisher struct {
	writer MessageWriter
	prefix string
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer", "message", msg, "args", args)
		}),
	}
}

func NewKafkaPublisher(writer MessageWriter, cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, prefix: cfg.TopicPrefix}
}

func (p *KafkaPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	if len(job.Payload) == 0 {
		return ErrEmptyPayload
	}

	msg := kafka.Message{
		Topic: p.prefix + job.Topic,
		Key:   []byte(job.ID.String()),
		Value: job.Payload,
		Headers: []kafka.Header{
			{Key: "job_id", Value: []byte(job.ID.String())},
			{Key: "topic", Value: []byte(job.Topic)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
