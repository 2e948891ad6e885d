// Package index derives the ephemeral orderings and groupings the site pages
// are rendered from. Indexes are rebuilt on every run and never persisted.
package index

import (
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/content"
)

// SortByDateDesc returns the items ordered newest first. Items without a date
// sort as the distant past, so they end up last. The sort is stable.
func SortByDateDesc(items []content.Item) []content.Item {
	sorted := make([]content.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]).After(sortKey(sorted[j]))
	})
	return sorted
}

func sortKey(item content.Item) time.Time {
	if date, ok := item.Date(); ok {
		return date
	}
	return time.Time{}
}

// SortByOrderDesc returns project items ordered by their order field,
// highest first. The sort is stable so equal orders keep scan order.
func SortByOrderDesc(items []content.Item) []content.Item {
	sorted := make([]content.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderKey(sorted[i]) > orderKey(sorted[j])
	})
	return sorted
}

func orderKey(item content.Item) int {
	if item.Project != nil {
		return item.Project.Order
	}
	return 0
}

// BuildTopicIndex groups items by topic slug. Name variants feeding the same
// slug ("Go", "go") share one bucket, keyed by the first-seen variant. Only
// items carrying at least one topic participate; every bucket is date-sorted.
func BuildTopicIndex(items []content.Item) map[content.Topic][]content.Item {
	canonical := map[string]content.Topic{}
	buckets := map[string][]content.Item{}
	for _, item := range items {
		for _, topic := range item.Topics {
			if _, seen := canonical[topic.Slug]; !seen {
				canonical[topic.Slug] = topic
			}
			buckets[topic.Slug] = append(buckets[topic.Slug], item)
		}
	}

	grouped := make(map[content.Topic][]content.Item, len(buckets))
	for slug, bucket := range buckets {
		grouped[canonical[slug]] = SortByDateDesc(bucket)
	}
	return grouped
}

// BuildDevlogIndex groups devlog entries by project name, skipping entries
// with an empty project. Every bucket is date-sorted.
func BuildDevlogIndex(entries []content.Item) map[string][]content.Item {
	grouped := map[string][]content.Item{}
	for _, entry := range entries {
		if entry.Devlog == nil || entry.Devlog.Project == "" {
			continue
		}
		grouped[entry.Devlog.Project] = append(grouped[entry.Devlog.Project], entry)
	}
	for project, bucket := range grouped {
		grouped[project] = SortByDateDesc(bucket)
	}
	return grouped
}

// NavigationTopics returns the topic index keys sorted case-insensitively by
// display name, for consistent cross-page navigation.
func NavigationTopics(topicIndex map[content.Topic][]content.Item) []content.Topic {
	topics := make([]content.Topic, 0, len(topicIndex))
	for topic := range topicIndex {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		a := strings.ToLower(topics[i].DisplayName())
		b := strings.ToLower(topics[j].DisplayName())
		if a == b {
			return topics[i].Slug < topics[j].Slug
		}
		return a < b
	})
	return topics
}

// SortedProjects returns the devlog index keys in lexicographic order.
func SortedProjects(devlogIndex map[string][]content.Item) []string {
	projects := make([]string, 0, len(devlogIndex))
	for project := range devlogIndex {
		projects = append(projects, project)
	}
	sort.Strings(projects)
	return projects
}
