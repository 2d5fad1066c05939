// Package logger provides structured logging with context extraction and Sentry integration.
//
// It builds on log/slog with two additions: attributes pulled from the context
// on every log call, and optional fan-out of warnings and errors to Sentry.
//
// # Basic Usage
//
//	log := logger.New(sendgrid.SendIDExtractor)
//
//	client, _ := sendgrid.New(cfg, sendgrid.WithLogger(log))
//	// Every diagnostic emitted during a send now carries "send_id".
//
// Level and format come from Config:
//
//	log := logger.NewWithConfig(logger.Config{Level: "debug", Format: "text"}, os.Stderr)
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, sendgrid.SendIDExtractor)
//
// Errors create Sentry issues; warnings are stored as Sentry logs. Rejected
// sends are logged at warn level, so MinLevel controls whether they reach Sentry.
// An empty DSN falls back to stdout only.
//
// # Context Extractors
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Return false to skip the attribute for that record. LogHandlerDecorator
// applies extractors to any slog.Handler.
//
// # No-op Logger
//
// NewNope discards everything and is the default for library code that was
// not given a logger.
package logger
