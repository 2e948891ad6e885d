// Package scanner discovers content item folders under the content root,
// parses their markdown into typed items and copies their asset files into
// the output tree.
package scanner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// RenderTarget pairs a parsed item with the output directory its index.html
// must be written under.
type RenderTarget struct {
	Item      content.Item
	OutputDir string
}

// Scanner walks the content tree for one build.
type Scanner struct {
	ContentRoot string
	OutputRoot  string
	Parser      *content.Parser

	assetsCopied int
}

// New constructs a Scanner rooted at contentRoot writing under outputRoot.
func New(contentRoot, outputRoot string) *Scanner {
	return &Scanner{
		ContentRoot: contentRoot,
		OutputRoot:  outputRoot,
		Parser:      content.NewParser(),
	}
}

// AssetsCopied reports how many asset files this scanner has copied so far.
func (s *Scanner) AssetsCopied() int { return s.assetsCopied }

// ScanKind walks content/<subfolder>, treating each immediate subfolder as
// one item folder. Hidden entries are skipped. A folder without a markdown
// file yields no item (a warning is logged, its assets are still copied).
func (s *Scanner) ScanKind(kind content.Kind) ([]RenderTarget, error) {
	root := filepath.Join(s.ContentRoot, kind.Subfolder())
	folders, err := listVisible(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", kind.Subfolder(), err)
	}

	targets := []RenderTarget{}
	for _, folder := range folders {
		target, err := s.scanItemFolder(filepath.Join(root, folder), folder, kind.Subfolder())
		if err != nil {
			return nil, err
		}
		if target != nil {
			targets = append(targets, *target)
		}
	}
	return targets, nil
}

// ScanDevlogs walks the two-level devlogs tree
// (devlogs/<project-slug>/<entry-slug>/). A missing devlogs root is not an
// error; it yields an empty list.
func (s *Scanner) ScanDevlogs() ([]RenderTarget, error) {
	root := filepath.Join(s.ContentRoot, content.KindDevlog.Subfolder())
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return []RenderTarget{}, nil
	}

	projects, err := listVisible(root)
	if err != nil {
		return nil, fmt.Errorf("scan devlogs: %w", err)
	}

	targets := []RenderTarget{}
	for _, project := range projects {
		entries, err := listVisible(filepath.Join(root, project))
		if err != nil {
			return nil, fmt.Errorf("scan devlogs/%s: %w", project, err)
		}
		for _, entry := range entries {
			folderID := project + "/" + entry
			target, err := s.scanItemFolder(filepath.Join(root, project, entry), folderID, content.KindDevlog.Subfolder())
			if err != nil {
				return nil, err
			}
			if target != nil {
				targets = append(targets, *target)
			}
		}
	}
	return targets, nil
}

// scanItemFolder processes one item folder. Directory entries are handled in
// lexicographic order so the choice of markdown file is deterministic: the
// first .md is parsed as the item, every other file (additional .md files
// included) is copied verbatim into the output folder.
func (s *Scanner) scanItemFolder(srcDir, folderID, subfolder string) (*RenderTarget, error) {
	entries, err := listVisible(srcDir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", srcDir, err)
	}

	outDir := filepath.Join(s.OutputRoot, subfolder, filepath.FromSlash(folderID))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output folder %s: %w", outDir, err)
	}

	var target *RenderTarget
	for _, name := range entries {
		src := filepath.Join(srcDir, name)
		if info, err := os.Stat(src); err != nil || info.IsDir() {
			continue
		}

		if strings.HasSuffix(name, ".md") && target == nil {
			raw, err := os.ReadFile(src)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", src, err)
			}
			item, err := s.Parser.ParseItem(folderID, raw)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", src, err)
			}
			target = &RenderTarget{Item: item, OutputDir: outDir}
			continue
		}

		if strings.HasSuffix(name, ".md") {
			slog.Warn("Multiple markdown files in item folder, copying extra file as asset",
				logfields.Folder(folderID), logfields.Path(name))
		}
		if err := copyFile(src, filepath.Join(outDir, name)); err != nil {
			return nil, err
		}
		s.assetsCopied++
	}

	if target == nil {
		slog.Warn("No markdown file found in item folder, skipping", logfields.Folder(folderID), logfields.Path(srcDir))
	}
	return target, nil
}

// listVisible returns the sorted names of non-hidden entries in dir.
func listVisible(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open asset %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create asset %s: %w", dst, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy asset %s: %w", dst, err)
	}
	return out.Close()
}

// CopyDir recursively copies a directory tree (used for the static assets
// folder). Destination directories are created as needed.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}
