package log

import "context"

// Logger is the ctx-aware logger used across the service.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
}

// Init builds the zap backed Logger. It never fails: an invalid level falls back to info.
func Init(cfg ZapConfig) Logger {
	return newZapLogger(cfg)
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return newNopLogger()
}
