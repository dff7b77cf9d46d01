// Package templates holds text templates for generated files and help text.
package templates

import (
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
)

// Parse parses text as a template named name. It panics on malformed
// templates, which are compiled in.
func Parse(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// Execute renders tmpl with data.
func Execute(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder

	if err := tmpl.Execute(&b, data); err != nil {
		return "", errors.Wrapf(err, "failed to render template %s", tmpl.Name())
	}

	return b.String(), nil
}

// MustExecute renders tmpl with data and panics on failure.
func MustExecute(tmpl *template.Template, data any) string {
	out, err := Execute(tmpl, data)
	if err != nil {
		panic(err)
	}

	return out
}
