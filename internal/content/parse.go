package content

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/frontmatter"
	"git.home.luguber.info/inful/sitegen/internal/markdown"
)

// DateLayout is the strict frontmatter date format, parsed in UTC for
// reproducible builds.
const DateLayout = "2006-01-02"

// ErrInvalidDate indicates a post or devlog entry with a missing or
// unparsable date field. Dates are never substituted: a silently invented
// date would corrupt sort order and sitemap lastmod values.
var ErrInvalidDate = errors.New("invalid or missing date")

// Parser turns a markdown file into a typed Item.
type Parser struct {
	renderer *markdown.Renderer
}

// NewParser constructs a Parser. The default renderer carries the YouTube
// embed rewrite hook.
func NewParser() *Parser {
	return &Parser{renderer: markdown.NewRenderer(markdown.YouTubeEmbed())}
}

// ParseItem extracts metadata and body from raw markdown, infers the content
// kind and builds the typed item. folderID is the item's folder name relative
// to its kind's subfolder ("my-post" or "project/entry" for devlogs).
func (p *Parser) ParseItem(folderID string, raw []byte) (Item, error) {
	meta, body, err := frontmatter.Parse(raw)
	if err != nil {
		return Item{}, err
	}

	kind, err := InferKind(meta)
	if err != nil {
		return Item{}, err
	}

	html, err := p.renderer.Render(body)
	if err != nil {
		return Item{}, err
	}

	title := meta["title"]
	if title == "" {
		title = "Untitled"
	}
	path := fmt.Sprintf("/%s/%s/", kind.Subfolder(), folderID)

	switch kind {
	case KindPost:
		date, err := parseDate(meta["date"])
		if err != nil {
			return Item{}, fmt.Errorf("post %s: %w", folderID, err)
		}
		return NewPost(title, date, path, html, ParseTopics(meta["topics"])), nil

	case KindProject:
		order, err := strconv.Atoi(meta["order"])
		if err != nil {
			order = 0
		}
		image := fmt.Sprintf("%s/%s", folderID, meta["image"])
		return NewProject(title, order, path, image, html), nil

	case KindDevlog:
		date, err := parseDate(meta["date"])
		if err != nil {
			return Item{}, fmt.Errorf("devlog %s: %w", folderID, err)
		}
		return NewDevlog(title, date, path, html, meta["project"], ParseTopics(meta["topics"]), meta["github"], meta["description"]), nil
	}

	return Item{}, fmt.Errorf("%w: unhandled kind %q", ErrClassificationFailed, kind)
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}
