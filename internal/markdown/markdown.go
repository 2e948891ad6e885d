// Package markdown renders Markdown bodies (frontmatter already removed) to
// HTML with Goldmark, then applies an ordered chain of post-render hooks for
// inline content transforms such as embed rewrites.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Hook rewrites rendered HTML. Hooks run in registration order.
type Hook func(html string) string

// Renderer converts Markdown to HTML.
type Renderer struct {
	md    goldmark.Markdown
	hooks []Hook
}

// NewRenderer constructs a Renderer with GFM extensions enabled. Raw HTML in
// content is passed through; sources are trusted local files.
func NewRenderer(hooks ...Hook) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		hooks: hooks,
	}
}

// Render converts a Markdown body to HTML and applies the hook chain.
func (r *Renderer) Render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	html := buf.String()
	for _, hook := range r.hooks {
		html = hook(html)
	}
	return html, nil
}
