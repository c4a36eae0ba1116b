// Package views renders the server-side HTML pages. Templates and static
// assets are embedded in the binary.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/fugu-chop/todo-db/internal/adapters/http/flash"
	"github.com/fugu-chop/todo-db/internal/domain/list"
)

// Page names.
const (
	PageLists    = "lists"
	PageNewList  = "new_list"
	PageList     = "list"
	PageEditList = "edit_list"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// Page is the data every template receives. Fields irrelevant to a page
// are left zero.
type Page struct {
	Flash flash.Messages
	// Error is an inline validation message shown next to the form.
	Error string

	Lists []list.Summary
	List  *list.List

	// Form values echoed back after a rejected submission.
	ListName string
	TodoName string
}

// CompleteAllLabel is the label of the list page's bulk toggle button.
func (p Page) CompleteAllLabel() string {
	if p.List != nil && p.List.AllComplete() {
		return "Uncheck All"
	}
	return "Complete All"
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageLists, PageNewList, PageList, PageEditList} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render executes page into a buffer first so a template error never leaves
// a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet and script.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}
