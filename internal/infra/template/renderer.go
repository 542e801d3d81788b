package template

import (
	"bytes"
	"embed"
	"html/template"

	"dealership-api/internal/pkg/errs"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer resolves embedded email templates by name. The template set is
// fixed at build time; an unknown name is a caller error, not a fallback.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse email templates")
	}
	return &Renderer{templates: templates}, nil
}

// Render substitutes data into the named template and returns the finished
// body. Any failure is fatal; partial output is never returned.
func (r *Renderer) Render(name string, data any) (string, error) {
	tmpl := r.templates.Lookup(name + ".html")
	if tmpl == nil {
		return "", errs.New("template not found: " + name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errs.Wrap(err, "failed to execute template "+name)
	}
	return buf.String(), nil
}
