package sendgrid

import (
	"context"
	"log/slog"
)

// Result describes a message accepted by SendGrid.
type Result struct {
	// MessageID is the X-Message-Id response header, if present.
	MessageID string

	// SendID is a client-side identifier attached to every log line of the send.
	SendID string

	// StatusCode is the HTTP status, always in [200, 204].
	StatusCode int
}

type sendIDKey struct{}

// ContextWithSendID stores a send identifier in the context.
func ContextWithSendID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sendIDKey{}, id)
}

// SendIDFromContext returns the send identifier stored in the context.
func SendIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sendIDKey{}).(string)
	return id, ok && id != ""
}

// SendIDExtractor is a logger.ContextExtractor adding the "send_id" attribute.
func SendIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := SendIDFromContext(ctx); ok {
		return slog.String("send_id", id), true
	}
	return slog.Attr{}, false
}
