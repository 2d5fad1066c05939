// Package mailer provides a provider-agnostic email sending interface with
// markdown template rendering.
//
// # Architecture
//
//   - Sender: interface implemented by email providers (see the sendgrid sub-package)
//   - Renderer: converts markdown templates with YAML frontmatter to HTML
//   - Mailer: combines a Sender and a Renderer
//
// # Usage
//
//	client, err := sendgrid.New(sendgrid.Config{
//		APIKey:      os.Getenv("SENDGRID_API_KEY"),
//		SenderEmail: "team@example.com",
//		SenderName:  "Team",
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(client, mailer.NewRenderer(emails.FS), mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	err = m.Send(ctx, mailer.SendParams{
//		To:       "user@example.com",
//		Template: "welcome.md",
//		Data:     map[string]any{"Name": "John"},
//	})
//
// # Templates
//
// Local templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, welcome to our service!
//
// The subject is itself a Go template. The executed markdown doubles as the
// plain text alternative.
//
// Provider-hosted templates are sent with SendTemplate; the provider renders
// the subject and body from TemplateParams.Data.
//
// # Sending Emails
//
//   - Send: renders a local template and sends the email
//   - SendTemplate: sends a provider-hosted dynamic template
//   - SendRaw: sends a pre-built Email without rendering
//
// # Errors
//
//   - ErrNoRecipient: no recipient specified
//   - ErrNoSubject: no subject provided
//   - ErrNoContent: no HTML or text content provided
//   - ErrNoTemplateID: SendTemplate without a template id
//   - ErrTemplateNotFound: template file not found
//   - ErrLayoutNotFound: layout file not found
//   - ErrRenderFailed: template rendering failed
//   - ErrSendFailed: email sending failed
//   - ErrInvalidFrontmatter: invalid YAML frontmatter
package mailer
