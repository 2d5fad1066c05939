package mailer

import (
	"fmt"
	"time"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
//
// Either Subject with HTML or Text content, or a provider-hosted TemplateID
// must be set. Addresses may use the "Name <email>" form.
type Email struct {
	SendAt       time.Time    // Scheduled delivery time (zero sends immediately)
	TemplateData any          // Dynamic data for TemplateID
	Subject      string       // Email subject
	HTML         string       // HTML body content
	Text         string       // Plain text alternative
	From         string       // Override default sender
	FromName     string       // Sender display name (overrides the name parsed from From)
	TemplateID   string       // Provider-hosted dynamic template
	To           []string     // Recipients (at least one required)
	CC           []string     // Carbon copy recipients
	BCC          []string     // Blind carbon copy recipients
	Attachments  []Attachment // File attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Set for inline attachments referenced as cid:<ContentID>
	Content     []byte // Raw file content
}
