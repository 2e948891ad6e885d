// Package content defines the unified content item model (posts, projects and
// devlog entries), topic normalization, type classification and item parsing.
package content

import (
	"fmt"
	"time"
)

// Kind identifies the content variant of an Item.
type Kind string

const (
	KindPost    Kind = "post"
	KindProject Kind = "project"
	KindDevlog  Kind = "devlog"
)

// Subfolder is the content and output subfolder for this kind.
func (k Kind) Subfolder() string {
	switch k {
	case KindPost:
		return "posts"
	case KindProject:
		return "work"
	case KindDevlog:
		return "devlogs"
	}
	return ""
}

// PostInfo carries post-only data.
type PostInfo struct {
	Date time.Time
}

// ProjectInfo carries project-only data.
type ProjectInfo struct {
	Order       int
	HeaderImage string
}

// DevlogInfo carries devlog-entry-only data.
type DevlogInfo struct {
	Date        time.Time
	Project     string
	GitHub      string
	Description string
}

// Item is one renderable unit. Exactly one of the variant pointers is non-nil
// and it matches Kind; the constructors below are the only way items are built
// so an item with mismatched variant data is unrepresentable in practice.
type Item struct {
	Kind   Kind
	Title  string
	HTML   string
	Path   string // canonical site-relative URL, always /<subfolder>/<folder>/
	Topics []Topic

	Post    *PostInfo
	Project *ProjectInfo
	Devlog  *DevlogInfo
}

// Date returns the item's date and whether it has one. Projects are undated.
func (i Item) Date() (time.Time, bool) {
	switch {
	case i.Post != nil:
		return i.Post.Date, true
	case i.Devlog != nil:
		return i.Devlog.Date, true
	}
	return time.Time{}, false
}

// NewPost builds a post item.
func NewPost(title string, date time.Time, path, html string, topics []Topic) Item {
	return Item{
		Kind:   KindPost,
		Title:  title,
		HTML:   html,
		Path:   path,
		Topics: topics,
		Post:   &PostInfo{Date: date},
	}
}

// NewProject builds a project item. Projects carry no topics.
func NewProject(title string, order int, path, image, html string) Item {
	return Item{
		Kind:    KindProject,
		Title:   title,
		HTML:    html,
		Path:    path,
		Topics:  []Topic{},
		Project: &ProjectInfo{Order: order, HeaderImage: image},
	}
}

// NewDevlog builds a devlog entry item.
func NewDevlog(title string, date time.Time, path, html, project string, topics []Topic, github, description string) Item {
	return Item{
		Kind:   KindDevlog,
		Title:  title,
		HTML:   html,
		Path:   path,
		Topics: topics,
		Devlog: &DevlogInfo{Date: date, Project: project, GitHub: github, Description: description},
	}
}

func (i Item) String() string {
	return fmt.Sprintf("%s %q (%s)", i.Kind, i.Title, i.Path)
}
