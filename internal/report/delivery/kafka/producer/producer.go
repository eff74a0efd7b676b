package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"visibility-srv/internal/report"
	kafkaDelivery "visibility-srv/internal/report/delivery/kafka"
)

// PublishReportSubmitted publishes a report.submitted event keyed by report id.
func (p *implProducer) PublishReportSubmitted(ctx context.Context, msg report.ReportSubmittedMessage) error {
	body, err := json.Marshal(kafkaDelivery.ReportSubmittedMessage{
		EventType:       kafkaDelivery.EventTypeReportSubmitted,
		ReportID:        msg.ReportID,
		UserID:          msg.UserID,
		WebsiteURL:      msg.WebsiteURL,
		BusinessName:    msg.BusinessName,
		CompetitorCount: msg.CompetitorCount,
		Anonymous:       msg.Anonymous,
		SubmittedAt:     msg.SubmittedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal report submitted: %w", err)
	}

	if err := p.producer.Publish([]byte(msg.ReportID), body); err != nil {
		return fmt.Errorf("failed to publish report submitted: %w", err)
	}

	p.l.Infof(ctx, "report.delivery.kafka.producer.PublishReportSubmitted: published report %s", msg.ReportID)
	return nil
}
