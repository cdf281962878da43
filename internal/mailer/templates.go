package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderTemplate executes the named embedded template with the message
// context.
func renderTemplate(name string, ctx map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
