package attachment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendgrid/pkg/attachment"
)

func newFileServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/files/report.pdf", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 report"))
	})
	mux.HandleFunc("/download", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="terms.txt"`)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("terms and conditions"))
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 1024)))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/private", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_Open(t *testing.T) {
	t.Parallel()

	srv := newFileServer(t)
	src := attachment.NewHTTPSource(attachment.WithHTTPClient(srv.Client()), attachment.WithMaxSize(512))

	t.Run("filename from path", func(t *testing.T) {
		t.Parallel()
		f, err := src.Open(context.Background(), srv.URL+"/files/report.pdf")
		require.NoError(t, err)
		require.Equal(t, "report.pdf", f.Filename)
		require.Equal(t, "application/pdf", f.ContentType)
		require.Equal(t, []byte("%PDF-1.4 report"), f.Content)
	})

	t.Run("filename from content disposition", func(t *testing.T) {
		t.Parallel()
		f, err := src.Open(context.Background(), srv.URL+"/download")
		require.NoError(t, err)
		require.Equal(t, "terms.txt", f.Filename)
		require.Equal(t, "text/plain; charset=utf-8", f.ContentType)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := src.Open(context.Background(), srv.URL+"/missing")
		require.ErrorIs(t, err, attachment.ErrNotFound)
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		_, err := src.Open(context.Background(), srv.URL+"/private")
		require.ErrorIs(t, err, attachment.ErrAccessDenied)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		_, err := src.Open(context.Background(), srv.URL+"/broken")
		require.ErrorIs(t, err, attachment.ErrDownloadFailed)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		_, err := src.Open(context.Background(), srv.URL+"/big")
		require.ErrorIs(t, err, attachment.ErrTooLarge)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		_, err := src.Open(context.Background(), srv.URL+"/empty")
		require.ErrorIs(t, err, attachment.ErrEmpty)
	})
}

func TestHTTPSource_Open_InvalidRef(t *testing.T) {
	t.Parallel()

	src := attachment.NewHTTPSource()

	for _, ref := range []string{"", "ftp://example.com/file", "/relative/path", "https://"} {
		_, err := src.Open(context.Background(), ref)
		require.ErrorIs(t, err, attachment.ErrInvalidRef, ref)
	}
}
