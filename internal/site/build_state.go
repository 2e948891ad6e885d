package site

import (
	"time"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/scanner"
)

// BuildState carries mutable state across stages. Scanning stages populate
// the targets and derived indexes; rendering stages consume them.
type BuildState struct {
	Generator *Generator
	Scanner   *scanner.Scanner
	Report    *BuildReport
	start     time.Time

	PostTargets    []scanner.RenderTarget
	ProjectTargets []scanner.RenderTarget
	DevlogTargets  []scanner.RenderTarget

	SortedPosts []content.Item                 // all posts, newest first
	Projects    []content.Item                 // all projects, by order descending
	TopicIndex  map[content.Topic][]content.Item
	NavTopics   []content.Topic
	DevlogIndex map[string][]content.Item
}

func newBuildState(g *Generator) *BuildState {
	return &BuildState{
		Generator:   g,
		Scanner:     scanner.New(g.contentRoot(), g.outputRoot),
		Report:      newBuildReport(),
		start:       time.Now(),
		TopicIndex:  map[content.Topic][]content.Item{},
		DevlogIndex: map[string][]content.Item{},
	}
}

func (bs *BuildState) devlogEntries() []content.Item {
	entries := make([]content.Item, 0, len(bs.DevlogTargets))
	for _, target := range bs.DevlogTargets {
		entries = append(entries, target.Item)
	}
	return entries
}
