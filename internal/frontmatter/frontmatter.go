// Package frontmatter separates the `---` delimited YAML metadata block at the
// start of a Markdown document from its body and exposes the recognized fields
// as plain strings.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingFrontMatter indicates the document does not start with a delimited
// metadata block, or the closing delimiter is missing.
var ErrMissingFrontMatter = errors.New("missing frontmatter block")

var delimiter = []byte("---")

// Split separates the YAML frontmatter from the Markdown body.
//
// The document must begin with a `---` line and contain a closing `---` line;
// anything else is ErrMissingFrontMatter. The body is returned with leading
// blank lines trimmed.
func Split(content []byte) (frontmatter []byte, body []byte, err error) {
	open := append(append([]byte{}, delimiter...), '\n')
	if !bytes.HasPrefix(content, open) {
		return nil, nil, ErrMissingFrontMatter
	}

	rest := content[len(open):]
	closeSeq := []byte("\n---")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrMissingFrontMatter)
	}

	frontmatter = rest[:idx+1]
	body = rest[idx+len(closeSeq):]
	if nl := bytes.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = nil
	}
	return frontmatter, bytes.TrimLeft(body, "\n"), nil
}

// Fields parses raw YAML frontmatter (without delimiters) into a flat
// string-to-string map. Scalar values are stringified; nested structures and
// unrecognized shapes are skipped rather than failing the parse.
func Fields(frontmatter []byte) (map[string]string, error) {
	fields := map[string]string{}
	if len(frontmatter) == 0 {
		return fields, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(frontmatter, &raw); err != nil {
		return nil, fmt.Errorf("decode frontmatter: %w", err)
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case int:
			fields[key] = strconv.Itoa(v)
		case float64:
			fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			fields[key] = strconv.FormatBool(v)
		case time.Time:
			// yaml resolves unquoted ISO dates to time.Time; keep the raw form.
			fields[key] = v.UTC().Format("2006-01-02")
		}
	}
	return fields, nil
}

// Parse combines Split and Fields.
func Parse(content []byte) (map[string]string, []byte, error) {
	fm, body, err := Split(content)
	if err != nil {
		return nil, nil, err
	}
	fields, err := Fields(fm)
	if err != nil {
		return nil, nil, err
	}
	return fields, body, nil
}
