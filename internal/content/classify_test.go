package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferKind_DateAndProjectIsDevlog(t *testing.T) {
	kind, err := InferKind(map[string]string{"date": "2024-01-01", "project": "x"})
	require.NoError(t, err)
	require.Equal(t, KindDevlog, kind)
}

func TestInferKind_DateAloneIsPost(t *testing.T) {
	kind, err := InferKind(map[string]string{"date": "2024-01-01"})
	require.NoError(t, err)
	require.Equal(t, KindPost, kind)
}

func TestInferKind_EmptyProjectFallsBackToPost(t *testing.T) {
	kind, err := InferKind(map[string]string{"date": "2024-01-01", "project": ""})
	require.NoError(t, err)
	require.Equal(t, KindPost, kind)
}

func TestInferKind_OrderAndImageIsProject(t *testing.T) {
	kind, err := InferKind(map[string]string{"order": "2", "image": "cover.png"})
	require.NoError(t, err)
	require.Equal(t, KindProject, kind)
}

func TestInferKind_NoRuleMatches(t *testing.T) {
	for _, meta := range []map[string]string{
		{},
		{"title": "x"},
		{"order": "2"},
		{"image": "cover.png"},
	} {
		_, err := InferKind(meta)
		require.ErrorIs(t, err, ErrClassificationFailed)
	}
}
