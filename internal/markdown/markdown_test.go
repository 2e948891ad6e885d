package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_BasicMarkdown(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render([]byte("# Hello\n\nWorld"))
	require.NoError(t, err)
	require.Contains(t, html, "Hello")
	require.Contains(t, html, "<p>World</p>")
}

func TestRender_GFMTablesEnabled(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	require.Contains(t, html, "<table>")
}

func TestRender_RawHTMLPassesThrough(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render([]byte("before\n\n<div class=\"x\">inner</div>\n"))
	require.NoError(t, err)
	require.Contains(t, html, `<div class="x">inner</div>`)
}

func TestYouTubeEmbed_RewritesEmbedLinks(t *testing.T) {
	r := NewRenderer(YouTubeEmbed())
	html, err := r.Render([]byte("[demo](https://www.youtube.com/watch?v=abc123_xy#embed)"))
	require.NoError(t, err)
	require.Contains(t, html, `youtube.com/embed/abc123_xy`)
	require.Contains(t, html, `video-container`)
	require.NotContains(t, html, "#embed")
}

func TestYouTubeEmbed_ShortURLForm(t *testing.T) {
	r := NewRenderer(YouTubeEmbed())
	html, err := r.Render([]byte("[demo](https://youtu.be/dQw4w9WgXcQ#embed)"))
	require.NoError(t, err)
	require.Contains(t, html, `youtube.com/embed/dQw4w9WgXcQ`)
}

func TestYouTubeEmbed_IgnoresPlainLinks(t *testing.T) {
	r := NewRenderer(YouTubeEmbed())
	html, err := r.Render([]byte("[demo](https://www.youtube.com/watch?v=abc123)"))
	require.NoError(t, err)
	require.Contains(t, html, `<a href="https://www.youtube.com/watch?v=abc123">demo</a>`)
}

func TestYouTubeEmbed_NonYouTubeEmbedLinkUntouched(t *testing.T) {
	r := NewRenderer(YouTubeEmbed())
	html, err := r.Render([]byte("[demo](https://example.com/video#embed)"))
	require.NoError(t, err)
	require.Contains(t, html, `https://example.com/video#embed`)
}
