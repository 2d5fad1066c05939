package mailer

import "context"

// Sender delivers a prepared Email through an email provider.
type Sender interface {
	// Send delivers an email message.
	// Returns an error if the provider did not accept it.
	Send(ctx context.Context, email *Email) error
}
