package producer

import (
	"visibility-srv/internal/report"
	pkgKafka "visibility-srv/pkg/kafka"
	"visibility-srv/pkg/log"
)

// Producer publishes report events to Kafka.
type Producer interface {
	report.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a report producer on top of a topic-bound Kafka producer.
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
