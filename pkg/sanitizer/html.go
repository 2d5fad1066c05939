package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

var (
	// blockEndRegex matches tags that end a visual line.
	blockEndRegex = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|h[1-6]|li|tr|blockquote|pre|table|ul|ol)>`)
	blankRunRegex = regexp.MustCompile(`\n{3,}`)
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes all markup and returns the remaining text, entity-escaped.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// PlainText converts an HTML email body into a readable text/plain alternative.
// Block-level elements and <br> become line breaks, entities are decoded,
// and runs of blank lines collapse to one.
func PlainText(s string) string {
	s = blockEndRegex.ReplaceAllStringFunc(s, func(tag string) string {
		return tag + "\n"
	})
	s = html.UnescapeString(StripHTML(s))

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	return strings.TrimSpace(blankRunRegex.ReplaceAllString(s, "\n\n"))
}
