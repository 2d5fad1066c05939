package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Template is a parsed template file: YAML frontmatter metadata plus markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits template content into frontmatter metadata and body.
// Content without a leading "---" line is treated as body only.
func ParseTemplate(content []byte) (*Template, error) {
	text := string(content)
	if !strings.HasPrefix(text, frontmatterDelimiter) {
		return &Template{Metadata: map[string]any{}, Body: text}, nil
	}

	rest := strings.TrimLeft(strings.TrimPrefix(text, frontmatterDelimiter), "\r\n")
	if rest == "" {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	head, body, found := strings.Cut(rest, frontmatterDelimiter)
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	// Drop exactly one line break after the closing delimiter.
	if trimmed := strings.TrimPrefix(body, "\r\n"); trimmed != body {
		body = trimmed
	} else {
		body = strings.TrimPrefix(body, "\n")
	}

	var meta map[string]any
	if strings.TrimSpace(head) != "" {
		if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return &Template{Metadata: meta, Body: body}, nil
}
