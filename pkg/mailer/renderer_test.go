package mailer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

// countingFS wraps MapFS and counts ReadFile calls.
type countingFS struct {
	fstest.MapFS
	reads atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.MapFS.ReadFile(name)
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}<footer>{{index .Metadata "Footer"}}</footer></body></html>`),
		},
		"welcome.md": &fstest.MapFile{
			Data: []byte("---\nSubject: Welcome\nFooter: Acme Inc\n---\nHello **{{.Name}}**!\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"),
		},
	}

	result, err := NewRenderer(fs).Render("default.html", "welcome.md", map[string]string{"Name": "Alice"})
	require.NoError(t, err)

	require.Equal(t, "Welcome", result.Metadata["Subject"])
	require.Contains(t, result.Text, "Hello **Alice**!")
	require.NotContains(t, result.Text, "<strong>")

	require.Contains(t, result.HTML, "<strong>Alice</strong>")
	require.Contains(t, result.HTML, "<table>", "tables come from the GFM extension")
	require.Contains(t, result.HTML, "<footer>Acme Inc</footer>")
}

func TestRenderer_Render_WithoutLayout(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"note.md": &fstest.MapFile{Data: []byte("Plain *note*\n")},
	}

	result, err := NewRenderer(fs).Render("", "note.md", nil)
	require.NoError(t, err)
	require.Equal(t, "<p>Plain <em>note</em></p>\n", result.HTML)
	require.Equal(t, "Plain *note*\n", result.Text)
	require.NotNil(t, result.Metadata)
}

func TestRenderer_Render_CustomDirs(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"emails/layouts/main.html": &fstest.MapFile{Data: []byte(`<main>{{.Content}}</main>`)},
		"emails/reset.md":          &fstest.MapFile{Data: []byte("Code {{.Code}}\n")},
	}

	r := NewRendererWithConfig(fs, RendererConfig{TemplateDir: "emails", LayoutDir: "emails/layouts"})
	result, err := r.Render("main.html", "reset.md", map[string]string{"Code": "4821"})
	require.NoError(t, err)
	require.Equal(t, "<main><p>Code 4821</p>\n</main>", result.HTML)
}

func TestRenderer_Render_Errors(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html":   &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"layouts/broken.html": &fstest.MapFile{Data: []byte(`{{.Content`)},
		"ok.md":               &fstest.MapFile{Data: []byte("ok\n")},
		"broken.md":           &fstest.MapFile{Data: []byte("Hello {{.Name\n")},
		"frontmatter.md":      &fstest.MapFile{Data: []byte("---\nSubject: [\n---\nbody\n")},
		"missing-key.md":      &fstest.MapFile{Data: []byte("{{.Name.First}}\n")},
	}

	tests := []struct {
		wantErr  error
		name     string
		layout   string
		template string
	}{
		{name: "template not found", layout: "base.html", template: "nope.md", wantErr: ErrTemplateNotFound},
		{name: "layout not found", layout: "nope.html", template: "ok.md", wantErr: ErrLayoutNotFound},
		{name: "template parse error", layout: "base.html", template: "broken.md", wantErr: ErrRenderFailed},
		{name: "layout parse error", layout: "broken.html", template: "ok.md", wantErr: ErrRenderFailed},
		{name: "invalid frontmatter", layout: "base.html", template: "frontmatter.md", wantErr: ErrRenderFailed},
		{name: "execute error", layout: "base.html", template: "missing-key.md", wantErr: ErrRenderFailed},
	}

	r := NewRenderer(fs)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := r.Render(tt.layout, tt.template, map[string]string{"Name": "x"})
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, result)
		})
	}
}

func TestRenderer_Render_CachesTemplates(t *testing.T) {
	t.Parallel()

	cfs := &countingFS{
		MapFS: fstest.MapFS{
			"layouts/default.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
			"layouts/other.html":   &fstest.MapFile{Data: []byte(`<div>{{.Content}}</div>`)},
			"email.md":             &fstest.MapFile{Data: []byte("Hello {{.Name}}\n")},
		},
	}
	r := NewRenderer(cfs)

	first, err := r.Render("default.html", "email.md", map[string]string{"Name": "Alice"})
	require.NoError(t, err)
	require.Equal(t, int32(2), cfs.reads.Load())

	second, err := r.Render("default.html", "email.md", map[string]string{"Name": "Bob"})
	require.NoError(t, err)
	require.Equal(t, int32(2), cfs.reads.Load(), "cached template and layout are not read again")
	require.NotEqual(t, first.HTML, second.HTML)

	_, err = r.Render("other.html", "email.md", map[string]string{"Name": "Carol"})
	require.NoError(t, err)
	require.Equal(t, int32(3), cfs.reads.Load(), "only the new layout is read")
}

func TestRenderer_Render_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
		"email.md":             &fstest.MapFile{Data: []byte("Hello {{.ID}}\n")},
	}
	r := NewRenderer(fs)

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			result, err := r.Render("default.html", "email.md", map[string]int{"ID": id})
			if err != nil {
				errs <- err
				return
			}
			if want := fmt.Sprintf("<html><p>Hello %d</p>\n</html>", id); result.HTML != want {
				errs <- fmt.Errorf("got %q, want %q", result.HTML, want)
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent render failed: %v", err)
	}
}
