// Package view renders the site pages from the embedded templates.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/internal/infrastructure/markdown"
)

// NavItem is one entry of the page menu.
type NavItem struct {
	Name   string
	Active bool
}

// Data is everything a page template can read.
type Data struct {
	AppName     string
	Title       string
	Page        string
	Nav         []NavItem
	State       domain.StateSnapshot
	Plans       []domain.ProductPlan
	Copy        map[string]template.HTML
	ScrollToTop bool
}

type Renderer struct {
	appName string
	tmpl    *template.Template
	copy    map[string]template.HTML
}

// New parses templates/*.html and renders content/*.md from files.
func New(files fs.FS, appName string) (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"statusClass": statusClass,
	}).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}

	sections, err := markdown.LoadDir(files, "content")
	if err != nil {
		return nil, err
	}

	return &Renderer{appName: appName, tmpl: tmpl, copy: sections}, nil
}

// NewData assembles template data for a visitor state.
func (r *Renderer) NewData(state domain.StateSnapshot, plans []domain.ProductPlan, scroll bool) Data {
	nav := make([]NavItem, 0, len(domain.NavPages))
	for _, p := range domain.NavPages {
		nav = append(nav, NavItem{Name: p.String(), Active: p == state.Page})
	}

	title := state.Page.String()
	if state.Page == domain.PageNotFound {
		title = "Pet Not Found"
	}

	return Data{
		AppName:     r.appName,
		Title:       title,
		Page:        state.Page.String(),
		Nav:         nav,
		State:       state,
		Plans:       plans,
		Copy:        r.copy,
		ScrollToTop: scroll,
	}
}

// Render writes the full page for data to w. Output is buffered so a
// template error never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, data Data) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("view: render %s: %w", data.Page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func statusClass(status domain.EmploymentStatus) string {
	switch status {
	case domain.StatusActive:
		return "status-active"
	case domain.StatusIntern:
		return "status-intern"
	default:
		return "status-leave"
	}
}
