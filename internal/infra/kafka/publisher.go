// Package kafka streams harness results to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
)

// Ensure Publisher implements ports.ResultPublisher.
var _ ports.ResultPublisher = (*Publisher)(nil)

// PublisherConfig configures the Kafka-based result publisher.
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// Publisher publishes case results and run summaries to Kafka. Every message
// is keyed by the run ID so a run stays ordered within one partition.
type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// NewPublisher constructs a Publisher using the supplied configuration.
func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker must be provided")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic must be provided")
	}

	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		AllowAutoTopicCreation: true,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
	}

	return newPublisher(writer), nil
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

// PublishTestResult writes one "case" message for result.
func (p *Publisher) PublishTestResult(ctx context.Context, runID string, result execution.TestResult) error {
	if p.writer == nil {
		return fmt.Errorf("publisher is not initialized")
	}

	now := p.now()
	payload, err := encodeTestResult(runID, result, now)
	if err != nil {
		return err
	}
	return p.write(ctx, runID, payload, now)
}

// PublishRunReport writes the closing "summary" message of a run.
func (p *Publisher) PublishRunReport(ctx context.Context, report execution.RunReport) error {
	if p.writer == nil {
		return fmt.Errorf("publisher is not initialized")
	}

	now := p.now()
	payload, err := encodeRunReport(report, now)
	if err != nil {
		return err
	}
	return p.write(ctx, report.RunID, payload, now)
}

func (p *Publisher) write(ctx context.Context, key string, payload []byte, at time.Time) error {
	msg := kafkago.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  at,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying Kafka writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
