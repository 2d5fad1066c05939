// Package sendgrid sends transactional email through the SendGrid v3 Mail Send API.
//
// A message is assembled with a chainable Builder and delivered with a single
// POST to /v3/mail/send. There are no retries: the outcome of that one request
// is returned to the caller.
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
//	res, err := client.NewMessage().
//		AddTo("alice@example.com", "Alice").
//		AddCc("billing@example.com").
//		SetSubject("Your invoice").
//		AddText("Invoice attached.").
//		AddHTML("<p>Invoice attached.</p>").
//		AddAttachment("invoice.pdf", "application/pdf", sendgrid.DispositionAttachment, pdf).
//		Send(ctx)
//
// A standalone builder can be created from an API key alone:
//
//	res, err := sendgrid.NewBuilder(apiKey).
//		AddTo("bob@example.com", "").
//		SetFrom("noreply@example.com", "").
//		SetTemplate("d-123", map[string]any{"name": "Bob"}).
//		Send(ctx)
//
// # Payload
//
// The builder always produces exactly one personalization. Text bodies are
// placed before HTML bodies in the content list. The sender is copied into
// reply_to. Optional sections (cc, bcc, attachments, content, send_at) are
// left out of the JSON entirely when empty.
//
// # Outcomes
//
// Send returns one of:
//
//   - *Result for status codes 200 through 204
//   - *RejectedError (matches ErrRejected) for any other status; the response
//     body is read only in this case
//   - an error wrapping ErrTransport when the request could not be completed
//
// A builder is single use: after Send it returns ErrAlreadySent.
//
// # Regional endpoints
//
// Use Config.BaseURL or WithBaseURL(sendgrid.EUBaseURL) to target the EU region.
//
// # Logging
//
// Pass WithLogger to receive request diagnostics. Each send carries a send
// identifier in its context; add SendIDExtractor to a logger.New logger to
// include it as "send_id".
//
// # Mailer integration
//
// *Client implements mailer.Sender, so it can back a mailer.Mailer.
package sendgrid
