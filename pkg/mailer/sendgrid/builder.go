package sendgrid

import (
	"context"
	"encoding/base64"
	"reflect"
	"slices"
	"time"
)

// Builder accumulates a single message and sends it once.
// Create one with NewBuilder or Client.NewMessage; a zero Builder has no
// client and its Send returns ErrNoClient.
//
// Setters never fail and return the builder for chaining. After Send the
// builder is spent: setters become no-ops and further Send or Payload calls
// return ErrAlreadySent. A Builder is not safe for concurrent use.
type Builder struct {
	client       *Client
	err          error
	from         *Address
	templateData any
	sendAt       time.Time
	subject      string
	templateID   string
	to           []Address
	cc           []Address
	bcc          []Address
	text         []string
	html         []string
	attachments  []Attachment
	sent         bool
}

// NewBuilder creates a standalone builder for the given API key.
// Configuration errors (e.g. an empty key) are reported by Send.
func NewBuilder(apiKey string, opts ...Option) *Builder {
	client, err := New(Config{APIKey: apiKey, BaseURL: GlobalBaseURL}, opts...)
	return &Builder{client: client, err: err}
}

// AddTo appends a recipient. An empty name leaves the display name out.
func (b *Builder) AddTo(email, name string) *Builder {
	if b.sent {
		return b
	}
	b.to = append(b.to, Address{Email: email, Name: name})
	return b
}

// SetFrom sets the sender, which is also used as the reply-to address.
func (b *Builder) SetFrom(email, name string) *Builder {
	if b.sent {
		return b
	}
	b.from = &Address{Email: email, Name: name}
	return b
}

// SetSubject sets the message subject.
func (b *Builder) SetSubject(subject string) *Builder {
	if b.sent {
		return b
	}
	b.subject = subject
	return b
}

// AddText appends a text/plain body variant.
func (b *Builder) AddText(text string) *Builder {
	if b.sent {
		return b
	}
	b.text = append(b.text, text)
	return b
}

// AddHTML appends a text/html body variant.
func (b *Builder) AddHTML(html string) *Builder {
	if b.sent {
		return b
	}
	b.html = append(b.html, html)
	return b
}

// AddAttachment base64-encodes content and appends it as an attachment.
func (b *Builder) AddAttachment(filename, contentType string, disposition Disposition, content []byte) *Builder {
	if b.sent {
		return b
	}
	b.attachments = append(b.attachments, Attachment{
		Content:     base64.StdEncoding.EncodeToString(content),
		Filename:    filename,
		Type:        contentType,
		Disposition: disposition,
	})
	return b
}

// AddInline appends an inline attachment referenced from HTML as cid:<contentID>.
func (b *Builder) AddInline(filename, contentType, contentID string, content []byte) *Builder {
	if b.sent {
		return b
	}
	b.AddAttachment(filename, contentType, DispositionInline, content)
	b.attachments[len(b.attachments)-1].ContentID = contentID
	return b
}

// SetTemplate selects a dynamic template and the data rendered into it.
// Nil data, including a typed nil map, slice or pointer, leaves
// dynamic_template_data out of the payload.
func (b *Builder) SetTemplate(id string, data any) *Builder {
	if b.sent {
		return b
	}
	b.templateID = id
	b.templateData = data
	if isNil(data) {
		b.templateData = nil
	}
	return b
}

// isNil reports whether v is nil or a nil map, slice, pointer or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// AddCc appends a carbon copy recipient.
func (b *Builder) AddCc(email string) *Builder {
	if b.sent {
		return b
	}
	b.cc = append(b.cc, Address{Email: email})
	return b
}

// AddBcc appends a blind carbon copy recipient.
func (b *Builder) AddBcc(email string) *Builder {
	if b.sent {
		return b
	}
	b.bcc = append(b.bcc, Address{Email: email})
	return b
}

// SetSendAt schedules delivery. A zero time clears the schedule.
func (b *Builder) SetSendAt(t time.Time) *Builder {
	if b.sent {
		return b
	}
	b.sendAt = t
	return b
}

// Payload assembles the request body from the accumulated fields
// without sending it. The returned payload owns its slices; editing it does
// not change what the builder sends.
func (b *Builder) Payload() (*Payload, error) {
	if b.sent {
		return nil, ErrAlreadySent
	}
	if len(b.to) == 0 {
		return nil, ErrNoRecipient
	}

	pers := Personalization{
		To:                  slices.Clone(b.to),
		DynamicTemplateData: b.templateData,
	}
	if len(b.cc) > 0 {
		pers.Cc = slices.Clone(b.cc)
	}
	if len(b.bcc) > 0 {
		pers.Bcc = slices.Clone(b.bcc)
	}

	p := &Payload{
		Personalizations: []Personalization{pers},
		Subject:          b.subject,
		TemplateID:       b.templateID,
	}

	if b.from != nil {
		from := *b.from
		replyTo := *b.from
		p.From = &from
		p.ReplyTo = &replyTo
	}

	if n := len(b.text) + len(b.html); n > 0 {
		content := make([]Content, 0, n)
		for _, v := range b.text {
			content = append(content, Content{Type: ContentTypeText, Value: v})
		}
		for _, v := range b.html {
			content = append(content, Content{Type: ContentTypeHTML, Value: v})
		}
		p.Content = content
	}

	if len(b.attachments) > 0 {
		p.Attachments = slices.Clone(b.attachments)
	}

	if !b.sendAt.IsZero() {
		p.SendAt = b.sendAt.Unix()
	}

	return p, nil
}

// Send assembles the payload and posts it once.
//
// A 200-204 response yields a Result. Any other status yields a
// *RejectedError holding the response body; network failures wrap
// ErrTransport. The builder cannot be reused afterwards, whatever the outcome.
func (b *Builder) Send(ctx context.Context) (*Result, error) {
	if b.sent {
		return nil, ErrAlreadySent
	}
	if err := b.err; err != nil {
		b.release()
		return nil, err
	}
	if b.client == nil {
		b.release()
		return nil, ErrNoClient
	}

	payload, err := b.Payload()
	client := b.client
	b.release()
	if err != nil {
		return nil, err
	}

	return client.deliver(ctx, payload)
}

// release marks the builder as sent and drops its references.
func (b *Builder) release() {
	*b = Builder{sent: true}
}
