package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Topic is a normalized, deduplicated tag value. Two topics are the same topic
// iff their slugs match, regardless of casing or spacing in the raw name.
type Topic struct {
	Name string
	Slug string
}

var titleCaser = cases.Title(language.English)

// NewTopic builds a Topic from a raw tag value. ok is false when the trimmed
// name or the derived slug is empty.
func NewTopic(raw string) (Topic, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Topic{}, false
	}
	slug := Slugify(name)
	if slug == "" {
		return Topic{}, false
	}
	return Topic{Name: name, Slug: slug}, true
}

// DisplayName returns the title-cased topic name for navigation and headings.
func (t Topic) DisplayName() string {
	return titleCaser.String(t.Name)
}

// Slugify derives a URL-safe identifier: lowercase, keep alphanumerics,
// spaces, hyphens and underscores, map separators to hyphens, collapse runs,
// trim leading and trailing hyphens.
func Slugify(raw string) string {
	lowered := strings.ToLower(raw)

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteByte('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// ParseTopics splits a comma-separated tag string into Topics, skipping
// components that do not yield a valid topic and deduplicating by slug while
// preserving first-seen order. An empty input yields an empty list.
func ParseTopics(raw string) []Topic {
	topics := []Topic{}
	if strings.TrimSpace(raw) == "" {
		return topics
	}

	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		topic, ok := NewTopic(part)
		if !ok {
			continue
		}
		if _, dup := seen[topic.Slug]; dup {
			continue
		}
		seen[topic.Slug] = struct{}{}
		topics = append(topics, topic)
	}
	return topics
}
