package templates

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/sitegen/internal/content"
)

// DisplayDateLayout is the human-facing date format used in page bodies and
// item lists.
const DisplayDateLayout = "02/01/2006"

// Page wraps rendered content with the shared header and footer.
func (e *Engine) Page(body string, nav []content.Topic) string {
	header := e.render("header", map[string]string{
		"title":      e.title,
		"topics_nav": e.topicsNav(nav),
	})
	footer := e.render("footer", nil)
	return header + body + footer
}

// HomePage renders the post list page.
func (e *Engine) HomePage(intro string, posts []content.Item, nav []content.Topic) string {
	var items strings.Builder
	for _, post := range posts {
		items.WriteString(e.render("post_item", map[string]string{
			"path":  post.Path,
			"title": post.Title,
			"date":  displayDate(post),
		}))
	}
	body := e.render("homepage", map[string]string{
		"intro": intro,
		"posts": items.String(),
	})
	return e.Page(body, nav)
}

// ProjectsPage renders the project card list.
func (e *Engine) ProjectsPage(intro string, projects []content.Item, nav []content.Topic) string {
	var cards strings.Builder
	for _, project := range projects {
		image := ""
		if project.Project != nil {
			image = project.Project.HeaderImage
		}
		cards.WriteString(e.render("project_card", map[string]string{
			"path":  project.Path,
			"image": image,
			"title": project.Title,
		}))
	}
	body := e.render("projects", map[string]string{
		"intro":    intro,
		"projects": cards.String(),
	})
	return e.Page(body, nav)
}

// PostPage renders a single post.
func (e *Engine) PostPage(post content.Item, nav []content.Topic) string {
	body := e.render("post", map[string]string{
		"title":  post.Title,
		"date":   displayDate(post),
		"topics": e.topicLinks(post.Topics),
		"body":   post.HTML,
	})
	return e.Page(body, nav)
}

// ProjectPage renders a single project.
func (e *Engine) ProjectPage(project content.Item, nav []content.Topic) string {
	body := e.render("project", map[string]string{
		"title": project.Title,
		"body":  project.HTML,
	})
	return e.Page(body, nav)
}

// DevlogEntryPage renders a single devlog entry.
func (e *Engine) DevlogEntryPage(entry content.Item, nav []content.Topic) string {
	data := map[string]string{
		"title":  entry.Title,
		"date":   displayDate(entry),
		"topics": e.topicLinks(entry.Topics),
		"body":   entry.HTML,
	}
	if entry.Devlog != nil {
		data["project"] = projectDisplayName(entry.Devlog.Project)
		data["project_path"] = "/devlog/" + entry.Devlog.Project + "/"
		data["github"] = entry.Devlog.GitHub
	}
	body := e.render("devlog_entry", data)
	return e.Page(body, nav)
}

// TopicPage renders the post list for one topic.
func (e *Engine) TopicPage(topic content.Topic, posts []content.Item, nav []content.Topic) string {
	var items strings.Builder
	for _, post := range posts {
		items.WriteString(e.render("post_item", map[string]string{
			"path":  post.Path,
			"title": post.Title,
			"date":  displayDate(post),
		}))
	}
	body := e.render("topic", map[string]string{
		"topic": topic.DisplayName(),
		"posts": items.String(),
	})
	return e.Page(body, nav)
}

// DevlogProjectPage renders the entry list for one devlog project. The
// description comes from any entry that carries one.
func (e *Engine) DevlogProjectPage(project string, entries []content.Item, description string, nav []content.Topic) string {
	var items strings.Builder
	for _, entry := range entries {
		items.WriteString(e.render("devlog_item", map[string]string{
			"path":  entry.Path,
			"title": entry.Title,
			"date":  displayDate(entry),
		}))
	}
	body := e.render("devlog", map[string]string{
		"project":     projectDisplayName(project),
		"description": description,
		"entries":     items.String(),
	})
	return e.Page(body, nav)
}

// DevlogIndexPage renders the list of devlog projects.
func (e *Engine) DevlogIndexPage(projects []string, devlogIndex map[string][]content.Item, nav []content.Topic) string {
	var items strings.Builder
	for _, project := range projects {
		entries := devlogIndex[project]
		latest := ""
		if len(entries) > 0 {
			latest = displayDate(entries[0])
		}
		items.WriteString(e.render("devlog_item", map[string]string{
			"path":  "/devlog/" + project + "/",
			"title": projectDisplayName(project),
			"date":  latest,
		}))
	}
	body := e.render("devlog_index", map[string]string{
		"projects": items.String(),
	})
	return e.Page(body, nav)
}

func (e *Engine) topicsNav(nav []content.Topic) string {
	links := make([]string, 0, len(nav))
	for _, topic := range nav {
		links = append(links, fmt.Sprintf(`<a href="/topics/%s/">%s</a>`, topic.Slug, topic.DisplayName()))
	}
	return strings.Join(links, "\n")
}

func (e *Engine) topicLinks(topics []content.Topic) string {
	links := make([]string, 0, len(topics))
	for _, topic := range topics {
		links = append(links, fmt.Sprintf(`<a href="/topics/%s/">%s</a>`, topic.Slug, topic.DisplayName()))
	}
	return strings.Join(links, ", ")
}

func displayDate(item content.Item) string {
	if date, ok := item.Date(); ok {
		return date.Format(DisplayDateLayout)
	}
	return ""
}

var headingCaser = cases.Title(language.English)

func projectDisplayName(slug string) string {
	return headingCaser.String(strings.ReplaceAll(slug, "-", " "))
}
