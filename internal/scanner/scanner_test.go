package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

const helloPost = "---\ntitle: \"Hello\"\ndate: \"2024-01-15\"\n---\nWorld\n"

func TestScanKind_ParsesItemsAndCopiesAssets(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(src, "posts", "hello", "index.md"), helloPost)
	writeFile(t, filepath.Join(src, "posts", "hello", "photo.jpg"), "jpegbytes")

	s := New(src, out)
	targets, err := s.ScanKind(content.KindPost)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, "Hello", targets[0].Item.Title)
	require.Equal(t, filepath.Join(out, "posts", "hello"), targets[0].OutputDir)

	copied, err := os.ReadFile(filepath.Join(out, "posts", "hello", "photo.jpg"))
	require.NoError(t, err)
	require.Equal(t, "jpegbytes", string(copied))
	require.Equal(t, 1, s.AssetsCopied())
}

func TestScanKind_SkipsHiddenEntries(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "posts", ".hidden", "index.md"), helloPost)
	writeFile(t, filepath.Join(src, "posts", "visible", "index.md"), helloPost)

	targets, err := New(src, t.TempDir()).ScanKind(content.KindPost)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, "/posts/visible/", targets[0].Item.Path)
}

func TestScanKind_FolderWithoutMarkdownYieldsNoItemButCopiesAssets(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(src, "posts", "pictures-only", "a.png"), "png")

	s := New(src, out)
	targets, err := s.ScanKind(content.KindPost)
	require.NoError(t, err)
	require.Empty(t, targets)
	require.FileExists(t, filepath.Join(out, "posts", "pictures-only", "a.png"))
}

func TestScanKind_MultipleMarkdownFilesPicksLexFirst(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(src, "posts", "p", "b.md"), "---\ntitle: \"B\"\ndate: \"2024-01-02\"\n---\nb\n")
	writeFile(t, filepath.Join(src, "posts", "p", "a.md"), "---\ntitle: \"A\"\ndate: \"2024-01-01\"\n---\na\n")

	targets, err := New(src, out).ScanKind(content.KindPost)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, "A", targets[0].Item.Title)
	// the other markdown file is treated as an asset
	require.FileExists(t, filepath.Join(out, "posts", "p", "b.md"))
}

func TestScanKind_ParseFailureIsFatal(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "posts", "bad", "index.md"), "no frontmatter here\n")

	_, err := New(src, t.TempDir()).ScanKind(content.KindPost)
	require.Error(t, err)
}

func TestScanDevlogs_MissingRootYieldsEmpty(t *testing.T) {
	targets, err := New(t.TempDir(), t.TempDir()).ScanDevlogs()
	require.NoError(t, err)
	require.Empty(t, targets)
}

func TestScanDevlogs_TwoLevelWalk(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	entry := "---\ntitle: \"Week 1\"\ndate: \"2024-02-01\"\nproject: \"rover\"\n---\nProgress\n"
	writeFile(t, filepath.Join(src, "devlogs", "rover", "week-1", "index.md"), entry)
	writeFile(t, filepath.Join(src, "devlogs", "rover", "week-1", "diagram.svg"), "svg")

	targets, err := New(src, out).ScanDevlogs()
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, "/devlogs/rover/week-1/", targets[0].Item.Path)
	require.Equal(t, filepath.Join(out, "devlogs", "rover", "week-1"), targets[0].OutputDir)
	require.FileExists(t, filepath.Join(out, "devlogs", "rover", "week-1", "diagram.svg"))
}

func TestCopyDir_RecursiveByteForByte(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "static")
	writeFile(t, filepath.Join(src, "css", "style.css"), "body{}")
	writeFile(t, filepath.Join(src, "favicon.ico"), "icon")

	require.NoError(t, CopyDir(src, dst))
	data, err := os.ReadFile(filepath.Join(dst, "css", "style.css"))
	require.NoError(t, err)
	require.Equal(t, "body{}", string(data))
	require.FileExists(t, filepath.Join(dst, "favicon.ico"))
}
