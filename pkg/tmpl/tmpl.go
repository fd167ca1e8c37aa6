// Package tmpl renders the user-configurable message templates.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"
)

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(n int, s string) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}

// orDefault returns def when s is blank.
func orDefault(def, s string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var funcs = template.FuncMap{
	"trim":     strings.TrimSpace,
	"upper":    strings.ToUpper,
	"lower":    strings.ToLower,
	"truncate": truncate,
	"default":  orDefault,
}

// Parse compiles a template string without executing it.
func Parse(tmpl string) (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return t, nil
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - trim, upper, lower: string helpers from the strings package
//   - truncate: cut a string to N runes (e.g., truncate 200 .Comment)
//   - default: fall back to a value when blank (e.g., default "-" .Lesson)
func Render(tmpl string, data any) (string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
