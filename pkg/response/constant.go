package response

import "time"

const (
	DateTimeFormat = time.RFC3339

	MessageSuccess      = "Success"
	MessageInternal     = "Something went wrong. Please try again."
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
	MessageValidation   = "Please check the highlighted fields."
)
