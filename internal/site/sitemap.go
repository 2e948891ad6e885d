package site

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/index"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// lastmodLayout matches the frontmatter date format; sitemap timestamps
// derive from content dates only, keeping builds byte-identical for
// unchanged input.
const lastmodLayout = "2006-01-02"

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapEntry struct {
	path    string
	lastMod *time.Time
}

// writeSitemap emits sitemap.xml at the output root covering every page the
// build produced.
func writeSitemap(bs *BuildState) error {
	entries := collectSitemapEntries(bs)

	base, err := url.Parse(bs.Generator.cfg.Site.BaseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}

	set := urlset{Xmlns: sitemapNamespace}
	for _, entry := range entries {
		ref, err := url.Parse(entry.path)
		if err != nil {
			slog.Warn("Skipping invalid sitemap entry", logfields.Path(entry.path), logfields.Error(err))
			continue
		}
		u := sitemapURL{Loc: base.ResolveReference(ref).String()}
		if entry.lastMod != nil {
			u.LastMod = entry.lastMod.Format(lastmodLayout)
		}
		set.URLs = append(set.URLs, u)
	}

	data, err := xml.MarshalIndent(set, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal sitemap: %w", err)
	}
	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')

	path := filepath.Join(bs.Generator.outputRoot, "sitemap.xml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	slog.Info("Sitemap written", logfields.Count(len(set.URLs)))
	return nil
}

func collectSitemapEntries(bs *BuildState) []sitemapEntry {
	entries := []sitemapEntry{}

	entries = append(entries, sitemapEntry{path: "/", lastMod: latestDate(bs.SortedPosts)})
	entries = append(entries, sitemapEntry{path: "/about/"})
	entries = append(entries, sitemapEntry{path: "/work/"})

	if len(bs.DevlogIndex) > 0 {
		entries = append(entries, sitemapEntry{path: "/devlog/", lastMod: latestDate(bs.devlogEntries())})
	}

	for _, post := range bs.SortedPosts {
		entries = append(entries, sitemapEntry{path: post.Path, lastMod: itemDate(post)})
	}
	for _, project := range bs.Projects {
		entries = append(entries, sitemapEntry{path: project.Path})
	}

	topics := make([]content.Topic, 0, len(bs.TopicIndex))
	for topic := range bs.TopicIndex {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		return strings.ToLower(topics[i].Slug) < strings.ToLower(topics[j].Slug)
	})
	for _, topic := range topics {
		entries = append(entries, sitemapEntry{
			path:    "/topics/" + topic.Slug + "/",
			lastMod: latestDate(bs.TopicIndex[topic]),
		})
	}

	for _, project := range index.SortedProjects(bs.DevlogIndex) {
		bucket := bs.DevlogIndex[project]
		entries = append(entries, sitemapEntry{path: "/devlog/" + project + "/", lastMod: latestDate(bucket)})
		for _, entry := range bucket {
			entries = append(entries, sitemapEntry{path: entry.Path, lastMod: itemDate(entry)})
		}
	}

	return entries
}

func itemDate(item content.Item) *time.Time {
	if date, ok := item.Date(); ok {
		return &date
	}
	return nil
}

// latestDate returns the newest date among the items, or nil if none are
// dated. Items need not be pre-sorted.
func latestDate(items []content.Item) *time.Time {
	var latest *time.Time
	for _, item := range items {
		date, ok := item.Date()
		if !ok {
			continue
		}
		if latest == nil || date.After(*latest) {
			d := date
			latest = &d
		}
	}
	return latest
}
