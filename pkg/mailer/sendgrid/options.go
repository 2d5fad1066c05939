package sendgrid

import (
	"log/slog"
	"net/http"
)

// HTTPClient is the subset of *http.Client used to deliver requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient HTTPClient
	logger     *slog.Logger
	baseURL    string
}

// WithHTTPClient sets a custom HTTP client.
// Useful for httptest servers, custom transports or request timeouts.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithBaseURL overrides the API base URL from Config (e.g. EUBaseURL).
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}
