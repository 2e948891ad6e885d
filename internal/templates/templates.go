// Package templates implements the named-placeholder template engine the site
// pages are assembled with. Templates are plain text blobs with {{key}}
// tokens; rendering substitutes string values and tolerates whitespace inside
// the braces. A bundled default set is embedded into the binary.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

//go:embed defaults/*.html
var builtinFS embed.FS

// ErrTemplateLoad indicates a required template file is missing or unreadable.
var ErrTemplateLoad = errors.New("failed to load template")

// Names lists the required templates, loaded as <name>.html.
var Names = []string{
	"header",
	"footer",
	"homepage",
	"post_item",
	"projects",
	"project_card",
	"post",
	"project",
	"topic",
	"devlog",
	"devlog_item",
	"devlog_entry",
	"devlog_index",
}

var placeholderRE = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Engine holds the loaded template set and site title.
type Engine struct {
	title     string
	templates map[string]string
}

// Load reads the full template set from dir. An empty dir loads the embedded
// defaults.
func Load(title, dir string) (*Engine, error) {
	e := &Engine{title: title, templates: make(map[string]string, len(Names))}
	for _, name := range Names {
		var data []byte
		var err error
		if dir == "" {
			data, err = builtinFS.ReadFile("defaults/" + name + ".html")
		} else {
			data, err = os.ReadFile(filepath.Join(dir, name+".html"))
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, name, err)
		}
		e.templates[name] = string(data)
	}
	return e, nil
}

// ResolveDir picks the template directory: the explicit override when given
// (absolute or relative to sourceRoot), then <sourceRoot>/templates, then the
// embedded defaults (returned as the empty string). The first existing
// directory wins; a missing override is skipped with a warning.
func ResolveDir(override, sourceRoot string) string {
	if override != "" {
		dir := override
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(sourceRoot, dir)
		}
		if isDir(dir) {
			return dir
		}
		slog.Warn("Template directory override not found, falling back", logfields.Path(dir))
	}

	local := filepath.Join(sourceRoot, "templates")
	if isDir(local) {
		return local
	}
	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// render substitutes {{key}} placeholders with data values. Placeholders
// without a matching key render as the empty string.
func (e *Engine) render(name string, data map[string]string) string {
	tpl := e.templates[name]
	return placeholderRE.ReplaceAllStringFunc(tpl, func(token string) string {
		key := placeholderRE.FindStringSubmatch(token)[1]
		return data[key]
	})
}
