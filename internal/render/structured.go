package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lepinkainen/storeview/internal/service"
	"gopkg.in/yaml.v3"
)

func nonNil(results []*service.Result) []*service.Result {
	if results == nil {
		return []*service.Result{}
	}
	return results
}

func renderJSON(w io.Writer, results []*service.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(nonNil(results)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, results []*service.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nonNil(results)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
