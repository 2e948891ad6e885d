package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/index"
	"git.home.luguber.info/inful/sitegen/internal/linkcheck"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/markdown"
	"git.home.luguber.info/inful/sitegen/internal/scanner"
)

// stagePrepareOutput deletes any pre-existing output directory and recreates
// it, so every build starts from a clean tree.
func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	out := bs.Generator.outputRoot
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clean output directory %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", out, err)
	}
	slog.Debug("Output directory prepared", logfields.Output(out))
	return nil
}

// stageCopyStatic copies the static assets folder wholesale into the output
// root. A missing static folder is a warning, not an error.
func stageCopyStatic(_ context.Context, bs *BuildState) error {
	static := bs.Generator.staticRoot()
	if _, err := os.Stat(static); os.IsNotExist(err) {
		return newWarnStageError(StageCopyStatic, fmt.Errorf("static folder not found: %s", static))
	}
	if err := scanner.CopyDir(static, bs.Generator.outputRoot); err != nil {
		return fmt.Errorf("copy static files: %w", err)
	}
	return nil
}

func stageScanPosts(_ context.Context, bs *BuildState) error {
	targets, err := bs.Scanner.ScanKind(content.KindPost)
	if err != nil {
		return err
	}
	bs.PostTargets = targets

	posts := make([]content.Item, 0, len(targets))
	for _, target := range targets {
		posts = append(posts, target.Item)
	}
	bs.SortedPosts = index.SortByDateDesc(posts)
	bs.TopicIndex = index.BuildTopicIndex(posts)
	bs.NavTopics = index.NavigationTopics(bs.TopicIndex)

	slog.Info("Posts scanned", logfields.Count(len(posts)), slog.Int("topics", len(bs.TopicIndex)))
	return nil
}

func stageScanProjects(_ context.Context, bs *BuildState) error {
	targets, err := bs.Scanner.ScanKind(content.KindProject)
	if err != nil {
		return err
	}
	bs.ProjectTargets = targets

	projects := make([]content.Item, 0, len(targets))
	for _, target := range targets {
		projects = append(projects, target.Item)
	}
	bs.Projects = index.SortByOrderDesc(projects)

	slog.Info("Projects scanned", logfields.Count(len(projects)))
	return nil
}

func stageScanDevlogs(_ context.Context, bs *BuildState) error {
	targets, err := bs.Scanner.ScanDevlogs()
	if err != nil {
		return err
	}
	bs.DevlogTargets = targets
	bs.DevlogIndex = index.BuildDevlogIndex(bs.devlogEntries())

	slog.Info("Devlog entries scanned", logfields.Count(len(targets)), slog.Int("projects", len(bs.DevlogIndex)))
	return nil
}

// stageRenderItems writes every discovered item to <outputDir>/index.html via
// the type-dispatched template call.
func stageRenderItems(_ context.Context, bs *BuildState) error {
	g := bs.Generator
	all := make([]scanner.RenderTarget, 0, len(bs.PostTargets)+len(bs.ProjectTargets)+len(bs.DevlogTargets))
	all = append(all, bs.PostTargets...)
	all = append(all, bs.ProjectTargets...)
	all = append(all, bs.DevlogTargets...)

	for _, target := range all {
		var page string
		switch target.Item.Kind {
		case content.KindPost:
			page = g.engine.PostPage(target.Item, bs.NavTopics)
		case content.KindProject:
			page = g.engine.ProjectPage(target.Item, bs.NavTopics)
		case content.KindDevlog:
			page = g.engine.DevlogEntryPage(target.Item, bs.NavTopics)
		default:
			return fmt.Errorf("unknown item kind %q for %s", target.Item.Kind, target.Item.Path)
		}
		if err := bs.writePage(filepath.Join(target.OutputDir, "index.html"), page); err != nil {
			return err
		}
	}
	return nil
}

// stageRenderAggregates writes the homepage, projects page, topic pages,
// devlog pages and the about page.
func stageRenderAggregates(_ context.Context, bs *BuildState) error {
	g := bs.Generator
	out := g.outputRoot

	home := g.engine.HomePage(g.cfg.Site.Intro, bs.SortedPosts, bs.NavTopics)
	if err := bs.writePage(filepath.Join(out, "index.html"), home); err != nil {
		return err
	}

	projects := g.engine.ProjectsPage(g.cfg.Site.ProjectsIntro, bs.Projects, bs.NavTopics)
	if err := bs.writePage(filepath.Join(out, "work", "index.html"), projects); err != nil {
		return err
	}

	for _, topic := range bs.NavTopics {
		page := g.engine.TopicPage(topic, bs.TopicIndex[topic], bs.NavTopics)
		if err := bs.writePage(filepath.Join(out, "topics", topic.Slug, "index.html"), page); err != nil {
			return err
		}
	}

	if len(bs.DevlogIndex) > 0 {
		projects := index.SortedProjects(bs.DevlogIndex)
		for _, project := range projects {
			entries := bs.DevlogIndex[project]
			page := g.engine.DevlogProjectPage(project, entries, projectDescription(entries), bs.NavTopics)
			if err := bs.writePage(filepath.Join(out, "devlog", project, "index.html"), page); err != nil {
				return err
			}
		}
		page := g.engine.DevlogIndexPage(projects, bs.DevlogIndex, bs.NavTopics)
		if err := bs.writePage(filepath.Join(out, "devlog", "index.html"), page); err != nil {
			return err
		}
	}

	return bs.renderAboutPage()
}

// renderAboutPage renders content/about.md, a plain markdown file with no
// frontmatter block.
func (bs *BuildState) renderAboutPage() error {
	g := bs.Generator
	raw, err := os.ReadFile(filepath.Join(g.contentRoot(), "about.md"))
	if err != nil {
		return fmt.Errorf("read about page: %w", err)
	}
	html, err := markdown.NewRenderer(markdown.YouTubeEmbed()).Render(raw)
	if err != nil {
		return fmt.Errorf("render about page: %w", err)
	}
	page := g.engine.Page(html, bs.NavTopics)
	return bs.writePage(filepath.Join(g.outputRoot, "about", "index.html"), page)
}

// projectDescription returns the description from any entry carrying one.
func projectDescription(entries []content.Item) string {
	for _, entry := range entries {
		if entry.Devlog != nil && entry.Devlog.Description != "" {
			return entry.Devlog.Description
		}
	}
	return ""
}

func stageWriteSitemap(_ context.Context, bs *BuildState) error {
	return writeSitemap(bs)
}

// stageVerifyLinks walks the generated tree and reports internal links whose
// targets are missing. Broken links downgrade the stage to a warning; they
// never fail the build.
func stageVerifyLinks(_ context.Context, bs *BuildState) error {
	g := bs.Generator
	brokenTotal := 0

	err := filepath.WalkDir(g.outputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		broken, err := linkcheck.VerifyFile(path, g.outputRoot, g.cfg.Site.BaseURL)
		if err != nil {
			return err
		}
		for _, link := range broken {
			slog.Warn("Broken internal link", logfields.Path(path), slog.String("target", link.URL))
		}
		brokenTotal += len(broken)
		return nil
	})
	if err != nil {
		return fmt.Errorf("verify links: %w", err)
	}
	if brokenTotal > 0 {
		return newWarnStageError(StageVerifyLinks, fmt.Errorf("%d broken internal links", brokenTotal))
	}
	return nil
}

func (bs *BuildState) writePage(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write page %s: %w", path, err)
	}
	bs.Report.PagesRendered++
	return nil
}
