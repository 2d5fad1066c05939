package attachment

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path"
	"time"
)

// HTTPSource downloads attachments from http(s) URLs.
type HTTPSource struct {
	client  *http.Client
	maxSize int64
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient sets the client used for downloads.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = client
	}
}

// WithMaxSize limits the download size in bytes.
func WithMaxSize(n int64) HTTPOption {
	return func(s *HTTPSource) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// NewHTTPSource creates a URL source with a 30 second timeout.
func NewHTTPSource(opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		client:  &http.Client{Timeout: 30 * time.Second},
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open downloads ref, which must be an absolute http or https URL.
// The filename comes from Content-Disposition when present, else the URL path.
func (s *HTTPSource) Open(ctx context.Context, ref string) (*File, error) {
	parsed, err := url.Parse(ref)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRef, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if resp == nil || resp.Body == nil {
		return nil, fmt.Errorf("%w: empty response", ErrDownloadFailed)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, ref)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode)
	}

	if resp.ContentLength > s.maxSize {
		return nil, ErrTooLarge
	}

	data, err := readLimited(resp.Body, s.maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}

	filename := path.Base(parsed.Path)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	if filename == "/" || filename == "." {
		filename = "attachment"
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || contentType == MIMEOctetStream {
		contentType = DetectMIME(filename, data)
	} else {
		contentType = normalizeMIME(contentType)
	}

	return &File{Filename: filename, ContentType: contentType, Content: data}, nil
}

var _ Source = (*HTTPSource)(nil)
