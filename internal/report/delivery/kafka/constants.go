package kafka

const (
	// TopicReportSubmitted is the default topic for report lifecycle events.
	TopicReportSubmitted = "visibility.report.submitted"

	EventTypeReportSubmitted = "report.submitted"
)
