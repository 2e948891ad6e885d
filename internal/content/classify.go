package content

import (
	"errors"
	"fmt"
)

// ErrClassificationFailed indicates no type-inference rule matched the
// metadata of a content item.
var ErrClassificationFailed = errors.New("could not infer content item type")

// InferKind determines the content variant from frontmatter metadata.
//
// Rules are checked in order and the first match wins. A devlog entry's
// metadata is a superset of a post's (both carry a date), so the devlog rule
// must run first; the project field disambiguates.
func InferKind(meta map[string]string) (Kind, error) {
	_, hasDate := meta["date"]
	if hasDate && meta["project"] != "" {
		return KindDevlog, nil
	}
	if hasDate {
		return KindPost, nil
	}
	_, hasOrder := meta["order"]
	_, hasImage := meta["image"]
	if hasOrder && hasImage {
		return KindProject, nil
	}
	return "", fmt.Errorf("%w: metadata has none of date or order+image", ErrClassificationFailed)
}
