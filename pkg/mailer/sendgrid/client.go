package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sendgrid/pkg/logger"
)

// API base URLs.
const (
	GlobalBaseURL = "https://api.sendgrid.com"
	EUBaseURL     = "https://api.eu.sendgrid.com"
)

// Client delivers messages to the SendGrid Mail Send endpoint.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	httpClient HTTPClient
	logger     *slog.Logger
	endpoint   string
	config     Config
}

// New creates a new SendGrid client.
// Returns ErrMissingAPIKey if the API key is empty and ErrInvalidBaseURL
// if the base URL is not an absolute http(s) URL.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = GlobalBaseURL
	}

	endpoint, err := mailSendURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}
	if o.logger == nil {
		o.logger = logger.NewNope()
	}

	return &Client{
		httpClient: o.httpClient,
		logger:     o.logger.With(slog.String("provider", "sendgrid")),
		endpoint:   endpoint,
		config:     cfg,
	}, nil
}

// NewMessage starts a new message. The default sender from Config, if any,
// is pre-set and can be overridden with SetFrom.
func (c *Client) NewMessage() *Builder {
	b := &Builder{client: c}
	if c.config.SenderEmail != "" {
		b.SetFrom(c.config.SenderEmail, c.config.SenderName)
	}
	return b
}

// mailSendURL appends the mail send path to the base URL.
func mailSendURL(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	return parsed.JoinPath("v3", "mail", "send").String(), nil
}

// accepted reports whether the status code means the message was queued.
func accepted(status int) bool {
	return status >= http.StatusOK && status <= http.StatusNoContent
}

// deliver posts the payload. The response body is read only when the
// status code is outside the accepted range.
func (c *Client) deliver(ctx context.Context, payload *Payload) (*Result, error) {
	sendID := uuid.NewString()
	ctx = ContextWithSendID(ctx, sendID)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "sending message",
		slog.String("endpoint", c.endpoint),
		slog.Int("recipients", countRecipients(payload)),
		slog.Int("attachments", len(payload.Attachments)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("post %s: %w", c.endpoint, err))
	}
	if resp == nil || resp.Body == nil {
		return nil, errors.Join(ErrTransport, errors.New("empty response"))
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "sendgrid responded", slog.Int("status", resp.StatusCode))

	if accepted(resp.StatusCode) {
		return &Result{
			StatusCode: resp.StatusCode,
			MessageID:  resp.Header.Get("X-Message-Id"),
			SendID:     sendID,
		}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("read response body: %w", err))
	}

	c.logger.WarnContext(ctx, "sendgrid rejected message",
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(raw)),
	)

	return nil, &RejectedError{StatusCode: resp.StatusCode, Body: string(raw)}
}

func countRecipients(p *Payload) int {
	n := 0
	for _, pers := range p.Personalizations {
		n += len(pers.To) + len(pers.Cc) + len(pers.Bcc)
	}
	return n
}
