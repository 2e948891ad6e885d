package markdown

import (
	"fmt"
	"regexp"
)

var (
	embedAnchorRE = regexp.MustCompile(`<a href="[^"]*#embed"[^>]*>.*?</a>`)
	youtubeIDRE   = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)
)

// YouTubeEmbed rewrites links whose destination ends in #embed into a
// responsive iframe player. Links that do not point at a recognizable YouTube
// video are left untouched.
func YouTubeEmbed() Hook {
	return func(html string) string {
		return embedAnchorRE.ReplaceAllStringFunc(html, func(anchor string) string {
			m := youtubeIDRE.FindStringSubmatch(anchor)
			if m == nil {
				return anchor
			}
			return fmt.Sprintf(`<div class="video-container"><iframe src="https://www.youtube.com/embed/%s" frameborder="0" allowfullscreen></iframe></div>`, m[1])
		})
	}
}
