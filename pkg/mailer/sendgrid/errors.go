package sendgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when the API key is not provided.
	ErrMissingAPIKey = errors.New("sendgrid: missing API key")

	// ErrNoClient is returned by Send on a Builder not created through
	// NewBuilder or Client.NewMessage.
	ErrNoClient = errors.New("sendgrid: builder has no client")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("sendgrid: invalid base URL")

	// ErrNoRecipient is returned when a message has no "to" address.
	ErrNoRecipient = errors.New("sendgrid: message must have at least one recipient")

	// ErrAlreadySent is returned when Send is called on a builder that was already sent.
	ErrAlreadySent = errors.New("sendgrid: message already sent")

	// ErrEncodeFailed is returned when the payload cannot be encoded as JSON.
	ErrEncodeFailed = errors.New("sendgrid: failed to encode payload")

	// ErrTransport is returned when the request could not be completed.
	ErrTransport = errors.New("sendgrid: transport failure")

	// ErrRejected is returned when the API answers with a non-success status.
	ErrRejected = errors.New("sendgrid: message rejected")
)

// RejectedError describes a response outside the accepted status range.
// It matches ErrRejected with errors.Is.
type RejectedError struct {
	Body       string
	StatusCode int
}

func (e *RejectedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", ErrRejected, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrRejected, e.StatusCode, e.Body)
}

// Is reports whether target is ErrRejected.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
