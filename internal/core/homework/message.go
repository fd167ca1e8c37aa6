package homework

import (
	"fmt"

	"github.com/hay-kot/hwbot/pkg/tmpl"
)

// Default message templates.
const (
	DefaultChangedTemplate = `Изменился статус проверки работы "{{ .Name }}". {{ .Verdict }}`
	DefaultUnknownTemplate = `unknown status received: {{ .Status }}`
	DefaultFailureTemplate = `Сбой в работе программы: {{ .Error }}`
)

// Templates holds the message templates used by a Formatter.
// Empty fields fall back to the defaults.
type Templates struct {
	Changed string
	Unknown string
	Failure string
}

// MessageData is the data passed to change templates.
type MessageData struct {
	Name    string
	Status  string
	Verdict string
	Lesson  string
	Comment string
}

// FailureData is the data passed to the failure template.
type FailureData struct {
	Error string
}

// Formatter renders notification text.
type Formatter struct {
	templates Templates
}

// NewFormatter creates a formatter, filling blank templates with defaults.
func NewFormatter(t Templates) *Formatter {
	if t.Changed == "" {
		t.Changed = DefaultChangedTemplate
	}
	if t.Unknown == "" {
		t.Unknown = DefaultUnknownTemplate
	}
	if t.Failure == "" {
		t.Failure = DefaultFailureTemplate
	}
	return &Formatter{templates: t}
}

// Change renders the notification for an item's current status. Items with
// a status outside the catalog use the unknown template.
func (f *Formatter) Change(item Item) string {
	data := MessageData{
		Name:    item.Name,
		Status:  string(item.Status),
		Lesson:  item.Lesson,
		Comment: item.Comment,
	}

	verdict, err := DisplayText(item.Status)
	if err != nil {
		return f.render(f.templates.Unknown, DefaultUnknownTemplate, data)
	}

	data.Verdict = verdict
	return f.render(f.templates.Changed, DefaultChangedTemplate, data)
}

// Failure renders the iteration failure report.
func (f *Formatter) Failure(err error) string {
	return f.render(f.templates.Failure, DefaultFailureTemplate, FailureData{Error: err.Error()})
}

// render executes tmplStr, falling back to the built-in template when the
// configured one fails at execution time.
func (f *Formatter) render(tmplStr, fallback string, data any) string {
	out, err := tmpl.Render(tmplStr, data)
	if err == nil {
		return out
	}

	out, err = tmpl.Render(fallback, data)
	if err != nil {
		// built-in templates only reference fields that exist
		return fmt.Sprintf("%+v", data)
	}
	return out
}

// ValidateTemplates checks that every template parses and executes against
// sample data.
func ValidateTemplates(t Templates) error {
	sample := MessageData{Name: "hw", Status: string(StatusApproved), Verdict: "ok"}

	if t.Changed != "" {
		if _, err := tmpl.Render(t.Changed, sample); err != nil {
			return fmt.Errorf("changed: %w", err)
		}
	}
	if t.Unknown != "" {
		if _, err := tmpl.Render(t.Unknown, sample); err != nil {
			return fmt.Errorf("unknown: %w", err)
		}
	}
	if t.Failure != "" {
		if _, err := tmpl.Render(t.Failure, FailureData{Error: "boom"}); err != nil {
			return fmt.Errorf("failure: %w", err)
		}
	}
	return nil
}
