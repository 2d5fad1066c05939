package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts markdown templates with YAML frontmatter to HTML.
// Parsed templates and layouts are cached; rendering is safe for concurrent use.
type Renderer struct {
	fs          fs.FS
	md          goldmark.Markdown
	bodies      map[string]*parsedBody
	layouts     map[string]*template.Template
	templateDir string
	layoutDir   string
	mu          sync.RWMutex
}

type parsedBody struct {
	metadata map[string]any
	tmpl     *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a new renderer with default config.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a new renderer with custom config.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:          filesystem,
		md:          goldmark.New(goldmark.WithExtensions(extension.GFM)),
		bodies:      make(map[string]*parsedBody),
		layouts:     make(map[string]*template.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult contains the rendered HTML, plain text, and extracted metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // Executed markdown, before HTML conversion
}

// Render executes a markdown template and wraps the HTML in a layout.
// An empty layout name returns the converted markdown without wrapping.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	body, err := cached(r, r.bodies, name, r.parseBody)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := body.tmpl.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, name, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	result := &RenderResult{
		Metadata: body.metadata,
		HTML:     content.String(),
		Text:     markdown.String(),
	}
	if layout == "" {
		return result, nil
	}

	tmpl, err := cached(r, r.layouts, layout, r.parseLayout)
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	err = tmpl.Execute(&page, map[string]any{
		"Content":  template.HTML(result.HTML),
		"Metadata": body.metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}
	result.HTML = page.String()

	return result, nil
}

func (r *Renderer) parseBody(name string) (*parsedBody, error) {
	raw, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	tmpl, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	return &parsedBody{metadata: parsed.Metadata, tmpl: tmpl}, nil
}

func (r *Renderer) parseLayout(name string) (*template.Template, error) {
	raw, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}
	return tmpl, nil
}

// cached returns cache[key], parsing and storing it on first use.
func cached[T any](r *Renderer, cache map[string]T, key string, parse func(string) (T, error)) (T, error) {
	r.mu.RLock()
	v, ok := cache[key]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := cache[key]; ok {
		return v, nil
	}

	v, err := parse(key)
	if err != nil {
		return v, err
	}
	cache[key] = v
	return v, nil
}
