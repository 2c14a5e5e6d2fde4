package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"

	"github.com/mvolkov/inventory_app/internal/models"
	"github.com/mvolkov/inventory_app/internal/validation"
	webembed "github.com/mvolkov/inventory_app/web"
)

// PageData is the part of the template data every page shares.
type PageData struct {
	Title     string
	Flash     string
	CSRFToken string
}

// FormData echoes raw form field values back into a re-rendered form.
type FormData struct {
	Name        string
	Description string
	Quantity    string
	Price       string
}

type listData struct {
	PageData
	Items []models.Item
}

type detailData struct {
	PageData
	Item *models.Item
}

type formData struct {
	PageData
	Form   FormData
	Errors validation.FieldErrors
}

// Renderer parses the embedded page templates and implements echo.Renderer.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	tfs := webembed.TemplatesFS()

	layout, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"index.html",
		"item_detail.html",
		"item_form.html",
		"404.html",
		"error.html",
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, page := range pages {
		content, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}
		t, err := template.New("layout").Parse(string(layout))
		if err != nil {
			return nil, fmt.Errorf("parsing layout template: %w", err)
		}
		if _, err := t.Parse(string(content)); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("no such template: %s", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
