package mailer

import "errors"

var (
	ErrNoRecipient  = errors.New("mailer: no recipient")
	ErrNoSubject    = errors.New("mailer: subject is required without a template id")
	ErrNoContent    = errors.New("mailer: HTML or text body is required without a template id")
	ErrNoTemplateID = errors.New("mailer: template id is required")

	ErrTemplateNotFound   = errors.New("mailer: template not found")
	ErrLayoutNotFound     = errors.New("mailer: layout not found")
	ErrInvalidFrontmatter = errors.New("mailer: invalid frontmatter")
	ErrRenderFailed       = errors.New("mailer: render failed")

	// ErrSendFailed wraps the error returned by the Sender.
	ErrSendFailed = errors.New("mailer: send failed")
)
