package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"timebar/internal/pkg/config"
	"timebar/internal/usecase/commands"

	"github.com/IBM/sarama"
)

// ImpressionProducer streams recorded impressions to Kafka, keyed by shop so
// per-shop ordering is preserved across partitions.
type ImpressionProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ commands.ImpressionPublisher = (*ImpressionProducer)(nil)

func NewImpressionProducer(cfg config.EventsConfig, logger *slog.Logger) (*ImpressionProducer, func(), error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.Retry.Max = cfg.Retries
	saramaCfg.Producer.Timeout = cfg.Timeout
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create producer: %w", err)
	}

	logger.Info("Kafka producer initialized", "brokers", cfg.Brokers, "topic", cfg.Topic)

	p := &ImpressionProducer{
		producer: producer,
		topic:    cfg.Topic,
		logger:   logger,
	}
	cleanup := func() {
		if err := p.producer.Close(); err != nil {
			p.logger.Error("failed to close Kafka producer", "error", err)
		}
	}
	return p, cleanup, nil
}

func (p *ImpressionProducer) PublishImpression(_ context.Context, event commands.ImpressionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal impression event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ShopID.String()),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send impression event: %w", err)
	}

	p.logger.Debug("impression event sent",
		"topic", p.topic, "partition", partition, "offset", offset,
		"timer_id", event.TimerID,
	)
	return nil
}

// NopPublisher is wired when the event stream is disabled; impressions are
// still counted in the database.
type NopPublisher struct{}

func (NopPublisher) PublishImpression(context.Context, commands.ImpressionEvent) error {
	return nil
}
