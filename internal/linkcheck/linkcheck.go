// Package linkcheck extracts links from generated HTML pages and verifies
// that internal targets exist in the output tree. Findings are reported as
// warnings; a broken link never fails a build.
package linkcheck

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Link is one extracted reference from an HTML document.
type Link struct {
	URL        string // the raw href/src value
	Tag        string // html tag (a, img, link, script)
	IsInternal bool   // true when the link stays on this site
}

// ExtractLinks parses an HTML document and collects link-like attributes.
func ExtractLinks(r io.Reader, baseURL string) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a", "link":
				if href := attr(n, "href"); href != "" {
					links = append(links, Link{URL: href, Tag: n.Data, IsInternal: isInternal(href, base)})
				}
			case "img", "script":
				if src := attr(n, "src"); src != "" {
					links = append(links, Link{URL: src, Tag: n.Data, IsInternal: isInternal(src, base)})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// VerifyFile extracts links from one generated page and returns the internal
// links whose targets do not exist under outputRoot.
func VerifyFile(htmlPath, outputRoot, baseURL string) ([]Link, error) {
	f, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	links, err := ExtractLinks(f, baseURL)
	if err != nil {
		return nil, err
	}

	var broken []Link
	for _, link := range links {
		if !link.IsInternal {
			continue
		}
		if targetExists(link.URL, outputRoot) {
			continue
		}
		broken = append(broken, link)
	}
	return broken, nil
}

func targetExists(raw string, outputRoot string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return true // unparsable links are not this check's concern
	}
	path := parsed.Path
	if path == "" { // pure fragment or query
		return true
	}

	local := filepath.Join(outputRoot, filepath.FromSlash(strings.TrimPrefix(path, "/")))
	if strings.HasSuffix(path, "/") {
		local = filepath.Join(local, "index.html")
	}
	if _, err := os.Stat(local); err == nil {
		return true
	}
	// pretty URL without trailing slash
	if _, err := os.Stat(filepath.Join(local, "index.html")); err == nil {
		return true
	}
	return false
}

func isInternal(raw string, base *url.URL) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme == "mailto" || parsed.Scheme == "tel" || parsed.Scheme == "javascript" {
		return false
	}
	if parsed.Host == "" {
		return true
	}
	return parsed.Host == base.Host
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
