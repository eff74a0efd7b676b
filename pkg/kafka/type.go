package kafka

import "github.com/IBM/sarama"

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// producerImpl implements IProducer.
type producerImpl struct {
	client   sarama.Client
	producer sarama.SyncProducer
	topic    string
}
