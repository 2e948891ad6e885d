package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsError(t *testing.T) {
	_, _, err := Split([]byte("# Title\n\nHello\n"))
	require.ErrorIs(t, err, ErrMissingFrontMatter)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, err := Split([]byte("---\ntitle: x\n# Title\n"))
	require.ErrorIs(t, err, ErrMissingFrontMatter)
}

func TestSplit_SeparatesFrontmatterAndBody(t *testing.T) {
	fm, body, err := Split([]byte("---\ntitle: Hello\n---\n\nWorld\n"))
	require.NoError(t, err)
	require.Equal(t, "title: Hello\n", string(fm))
	require.Equal(t, "World\n", string(body))
}

func TestFields_StringifiesScalars(t *testing.T) {
	fields, err := Fields([]byte("title: Hello\norder: 3\ndraft: false\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, "3", fields["order"])
	require.Equal(t, "false", fields["draft"])
}

func TestFields_SkipsNestedValues(t *testing.T) {
	fields, err := Fields([]byte("title: x\nextra:\n  a: 1\n"))
	require.NoError(t, err)
	require.Equal(t, "x", fields["title"])
	_, ok := fields["extra"]
	require.False(t, ok)
}

func TestFields_UnquotedDateKeepsISOForm(t *testing.T) {
	fields, err := Fields([]byte("date: 2024-01-15\n"))
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", fields["date"])
}

func TestParse_DateStaysRawString(t *testing.T) {
	fields, body, err := Parse([]byte("---\ntitle: \"Hello\"\ndate: \"2024-01-15\"\n---\nWorld\n"))
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", fields["date"])
	require.Equal(t, "World\n", string(body))
}
