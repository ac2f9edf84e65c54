// Package render writes loaded display lists as text, markdown, JSON or YAML.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/storeview/internal/service"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat resolves a format name. Matching is case-insensitive and "md" is
// accepted for markdown.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Extension returns the file extension for output written in f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return string(f)
	}
}

// Render writes results to w in format.
func Render(w io.Writer, format Format, results []*service.Result) error {
	switch format {
	case FormatText:
		return renderText(w, results)
	case FormatMarkdown:
		return renderMarkdown(w, results)
	case FormatJSON:
		return renderJSON(w, results)
	case FormatYAML:
		return renderYAML(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
