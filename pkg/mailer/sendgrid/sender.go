package sendgrid

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/dmitrymomot/sendgrid/pkg/mailer"
	"github.com/dmitrymomot/sendgrid/pkg/sanitizer"
)

// Send implements mailer.Sender.
func (c *Client) Send(ctx context.Context, email *mailer.Email) error {
	b := c.NewMessage()

	if email.From != "" {
		addr, name := splitAddress(email.From)
		if email.FromName != "" {
			name = email.FromName
		}
		b.SetFrom(addr, name)
	}

	for _, to := range email.To {
		b.AddTo(splitAddress(to))
	}
	for _, cc := range email.CC {
		addr, _ := splitAddress(cc)
		b.AddCc(addr)
	}
	for _, bcc := range email.BCC {
		addr, _ := splitAddress(bcc)
		b.AddBcc(addr)
	}

	b.SetSubject(email.Subject)

	// text/plain must precede text/html; derive one when only HTML is given.
	// SendGrid rejects empty content values, so an HTML body without text
	// (e.g. a single image) is sent as text/html only.
	text := email.Text
	if text == "" && email.HTML != "" {
		text = sanitizer.PlainText(email.HTML)
	}
	if text != "" {
		b.AddText(text)
	}
	if email.HTML != "" {
		b.AddHTML(email.HTML)
	}

	for _, a := range email.Attachments {
		if a.ContentID != "" {
			b.AddInline(a.Filename, a.ContentType, a.ContentID, a.Content)
			continue
		}
		b.AddAttachment(a.Filename, a.ContentType, DispositionAttachment, a.Content)
	}

	if email.TemplateID != "" {
		b.SetTemplate(email.TemplateID, email.TemplateData)
	}
	if !email.SendAt.IsZero() {
		b.SetSendAt(email.SendAt)
	}

	if _, err := b.Send(ctx); err != nil {
		return fmt.Errorf("sendgrid: failed to send email: %w", err)
	}

	return nil
}

// splitAddress parses "Name <email>" into its parts.
// Unparseable input is passed through as the email with no name.
func splitAddress(s string) (string, string) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return s, ""
	}
	return addr.Address, addr.Name
}

var _ mailer.Sender = (*Client)(nil)
