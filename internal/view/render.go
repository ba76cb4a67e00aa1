package view

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/kailas-cloud/homepage/internal/domain/page"
)

// Format is an output encoding for a rendered page.
type Format string

// Supported formats.
const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatHTML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want html or json)", s)
	}
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// HTML writes the document as a standalone HTML page.
func HTML(w io.Writer, doc page.Document) error {
	if err := pageTemplate.Execute(w, FromPage(doc)); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// JSON writes the document tree as indented JSON.
func JSON(w io.Writer, doc page.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromPage(doc)); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// Render writes the document in the requested format.
func Render(w io.Writer, doc page.Document, f Format) error {
	switch f {
	case FormatHTML:
		return HTML(w, doc)
	case FormatJSON:
		return JSON(w, doc)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
