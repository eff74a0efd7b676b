package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var (
	errNoBrokers      = errors.New("kafka: at least one broker is required")
	errTopicRequired  = errors.New("kafka: topic is required")
	errNotInitialized = errors.New("kafka: producer is not initialized")
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return errNoBrokers
	}
	if cfg.Topic == "" {
		return errTopicRequired
	}
	return nil
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	if config.ClientID == "" {
		config.ClientID = DefaultClientID
	}
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion

	client, err := sarama.NewClient(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{client: client, producer: producer, topic: cfg.Topic}, nil
}

// Publish sends a message to the configured topic and waits for the leader ack.
func (p *producerImpl) Publish(key, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

// Close closes the producer and its client.
func (p *producerImpl) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		_ = p.client.Close()
		return err
	}
	return p.client.Close()
}

// HealthCheck refreshes metadata for the topic to verify a broker is reachable.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil || p.client == nil {
		return errNotInitialized
	}
	if err := p.client.RefreshMetadata(p.topic); err != nil {
		return fmt.Errorf("kafka: metadata refresh failed: %w", err)
	}
	return nil
}
