// Package web holds the embedded HTML templates and static assets and the
// thin renderer over them.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Templates struct {
	set *template.Template
}

func NewTemplates() (*Templates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Templates{set: set}, nil
}

func (t *Templates) Render(w io.Writer, name string, data any) error {
	return t.set.ExecuteTemplate(w, name, data)
}

// Static serves the embedded asset tree (mounted under /static/).
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
