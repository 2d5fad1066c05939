package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendgrid/pkg/mailer/sendgrid"
)

// countingBody returns its whole content with io.EOF in a single Read,
// so each io.ReadAll performs exactly one Read call.
type countingBody struct {
	data   []byte
	reads  int
	closed bool
}

func (b *countingBody) Read(p []byte) (int, error) {
	b.reads++
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, io.EOF
}

func (b *countingBody) Close() error {
	b.closed = true
	return nil
}

// stubClient answers every request with a canned response.
type stubClient struct {
	err     error
	header  http.Header
	body    *countingBody
	req     *http.Request
	payload []byte
	status  int
}

func newStubClient(status int, body string) *stubClient {
	return &stubClient{
		status: status,
		header: http.Header{},
		body:   &countingBody{data: []byte(body)},
	}
}

func (c *stubClient) Do(req *http.Request) (*http.Response, error) {
	c.req = req
	if req.Body != nil {
		c.payload, _ = io.ReadAll(req.Body)
	}
	if c.err != nil {
		return nil, c.err
	}
	return &http.Response{
		StatusCode: c.status,
		Header:     c.header,
		Body:       c.body,
	}, nil
}

// capture records requests received by an httptest server.
type capture struct {
	header http.Header
	path   string
	method string
	body   []byte
	mu     sync.Mutex
}

func (c *capture) snapshot() (string, string, http.Header, []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.method, c.path, c.header, c.body
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *capture) {
	t.Helper()

	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.method = r.Method
		c.path = r.URL.Path
		c.header = r.Header.Clone()
		c.body = body
		c.mu.Unlock()

		w.Header().Set("X-Message-Id", "msg-123")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func newClient(t *testing.T, httpClient sendgrid.HTTPClient, opts ...sendgrid.Option) *sendgrid.Client {
	t.Helper()

	opts = append([]sendgrid.Option{sendgrid.WithHTTPClient(httpClient)}, opts...)
	client, err := sendgrid.New(sendgrid.Config{APIKey: "SG.test-key"}, opts...)
	require.NoError(t, err)
	return client
}

// payloadMap builds the payload and decodes its JSON into a generic map.
func payloadMap(t *testing.T, b *sendgrid.Builder) map[string]any {
	t.Helper()

	p, err := b.Payload()
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func firstPersonalization(t *testing.T, m map[string]any) map[string]any {
	t.Helper()

	list, ok := m["personalizations"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)

	pers, ok := list[0].(map[string]any)
	require.True(t, ok)
	return pers
}
