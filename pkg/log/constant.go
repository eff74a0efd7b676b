package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// requestIDField is the zap field carrying the request id stored in ctx.
	requestIDField = "request_id"
)
