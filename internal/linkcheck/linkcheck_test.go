package linkcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<a href="/posts/hello/">hello</a>
<a href="https://external.example.org/page">external</a>
<a href="mailto:me@example.com">mail</a>
<img src="/posts/hello/photo.jpg">
</body></html>`

func TestExtractLinks_ClassifiesInternalAndExternal(t *testing.T) {
	links, err := ExtractLinks(strings.NewReader(page), "https://www.example.com")
	require.NoError(t, err)
	require.Len(t, links, 4)

	byURL := map[string]Link{}
	for _, l := range links {
		byURL[l.URL] = l
	}
	require.True(t, byURL["/posts/hello/"].IsInternal)
	require.False(t, byURL["https://external.example.org/page"].IsInternal)
	require.False(t, byURL["mailto:me@example.com"].IsInternal)
	require.True(t, byURL["/posts/hello/photo.jpg"].IsInternal)
}

func TestVerifyFile_ReportsMissingInternalTargets(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "posts", "hello"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "posts", "hello", "index.html"), []byte("x"), 0o644))
	pagePath := filepath.Join(out, "index.html")
	require.NoError(t, os.WriteFile(pagePath, []byte(page), 0o644))

	broken, err := VerifyFile(pagePath, out, "https://www.example.com")
	require.NoError(t, err)
	require.Len(t, broken, 1)
	require.Equal(t, "/posts/hello/photo.jpg", broken[0].URL)
}

func TestVerifyFile_AllTargetsPresent(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "posts", "hello"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "posts", "hello", "index.html"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(out, "posts", "hello", "photo.jpg"), []byte("jpg"), 0o644))
	pagePath := filepath.Join(out, "index.html")
	require.NoError(t, os.WriteFile(pagePath, []byte(page), 0o644))

	broken, err := VerifyFile(pagePath, out, "https://www.example.com")
	require.NoError(t, err)
	require.Empty(t, broken)
}
