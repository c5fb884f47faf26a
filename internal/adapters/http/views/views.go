// Package views renders the catalog's server-side HTML pages: the product
// list at "/" and the product detail at "/product/{id}".
//
// Pages are html/template files embedded in the binary. Each page defines a
// "content" template rendered inside the shared "layout"; failures are shown
// in place through the "error-panel" template.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
)

// Page names accepted by Renderer.Render.
const (
	ListView   = "list"
	DetailView = "detail"
)

//go:embed templates/*.html
var files embed.FS

// Renderer executes the embedded page templates. It is safe for concurrent
// use.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the layout and error panel.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, 2)
	for _, name := range []string{ListView, DetailView} {
		t, err := template.New(name).
			Funcs(sprig.FuncMap()).
			ParseFS(files, "templates/layout.html", "templates/error.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s view: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page with data and writes it with status. The
// page is rendered into a buffer first so a template error never leaves a
// half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s view: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s view: %w", name, err)
	}
	return nil
}
