// Package markdown turns the site's Markdown copy into HTML fragments.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// New returns the goldmark instance used for site copy. Raw HTML in the
// source is omitted from the output. Source line breaks inside a paragraph
// stay soft.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
	)
}

// Render converts source to an HTML fragment.
func Render(md goldmark.Markdown, source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// LoadDir renders every *.md file in dir of fsys, keyed by base name without extension.
func LoadDir(fsys fs.FS, dir string) (map[string]template.HTML, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("markdown: read dir %s: %w", dir, err)
	}

	md := New()
	out := make(map[string]template.HTML, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		source, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("markdown: read %s: %w", entry.Name(), err)
		}
		rendered, err := Render(md, source)
		if err != nil {
			return nil, fmt.Errorf("markdown: render %s: %w", entry.Name(), err)
		}
		out[strings.TrimSuffix(entry.Name(), ".md")] = rendered
	}
	return out, nil
}
