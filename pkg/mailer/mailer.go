package mailer

import (
	"context"
	"errors"
	"strings"
	texttemplate "text/template"
	"time"
)

// Mailer renders templates and hands the resulting Email to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a new Mailer. The renderer may be nil when only
// SendRaw and SendTemplate are used.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a locally rendered template.
type SendParams struct {
	Data     any    // Template data
	To       string // Single recipient (most common case)
	Template string // Template filename (e.g., "welcome.md")

	// Optional overrides
	SendAt      time.Time    // Scheduled delivery
	Subject     string       // Override template subject
	Layout      string       // Override default layout
	From        string       // Override default sender
	CC          []string     // Carbon copy
	BCC         []string     // Blind carbon copy
	Attachments []Attachment // File attachments
}

// TemplateParams contains parameters for sending a provider-hosted dynamic template.
type TemplateParams struct {
	Data        any    // Dynamic template data
	To          string // Single recipient
	TemplateID  string // Provider template identifier
	SendAt      time.Time
	From        string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Send renders a template and sends an email.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}
	if m.renderer == nil {
		return errors.Join(ErrRenderFailed, errors.New("mailer has no renderer"))
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = m.config.FallbackSubject
		if s, ok := result.Metadata["Subject"].(string); ok && s != "" {
			subject = s
		}
	}

	subject, err = renderSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	return m.deliver(ctx, &Email{
		To:          []string{params.To},
		CC:          params.CC,
		BCC:         params.BCC,
		From:        params.From,
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		Attachments: params.Attachments,
		SendAt:      params.SendAt,
	})
}

// SendTemplate sends an email rendered by the provider from a hosted template.
func (m *Mailer) SendTemplate(ctx context.Context, params TemplateParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}
	if params.TemplateID == "" {
		return ErrNoTemplateID
	}

	return m.deliver(ctx, &Email{
		To:           []string{params.To},
		CC:           params.CC,
		BCC:          params.BCC,
		From:         params.From,
		TemplateID:   params.TemplateID,
		TemplateData: params.Data,
		Attachments:  params.Attachments,
		SendAt:       params.SendAt,
	})
}

// SendRaw sends a pre-built email without template rendering.
// Subject and content are optional when TemplateID is set.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.TemplateID == "" {
		if email.Subject == "" {
			return ErrNoSubject
		}
		if email.HTML == "" && email.Text == "" {
			return ErrNoContent
		}
	}

	return m.deliver(ctx, email)
}

func (m *Mailer) deliver(ctx context.Context, email *Email) error {
	if email.From == "" {
		email.From = m.config.DefaultFrom
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// renderSubject executes the subject as a text/template ({{.Name}} syntax).
func renderSubject(subject string, data any) (string, error) {
	if !strings.Contains(subject, "{{") {
		return subject, nil
	}

	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
