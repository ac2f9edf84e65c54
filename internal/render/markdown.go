package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/lepinkainen/storeview/internal/display"
	"github.com/lepinkainen/storeview/internal/service"
	"gopkg.in/yaml.v3"
)

// storeURL is recorded in the markdown frontmatter of every document.
const storeURL = "https://store.steampowered.com/app/%d"

// frontmatter is a YAML mapping emitted with sorted keys.
type frontmatter map[string]any

func (f frontmatter) MarshalYAML() (any, error) {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, len(keys)*2)}
	for _, key := range keys {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(f[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, valueNode)
	}
	return node, nil
}

// renderMarkdown writes one document per result: YAML frontmatter followed by
// a body that keeps the store HTML inline.
func renderMarkdown(w io.Writer, results []*service.Result) error {
	var buf bytes.Buffer

	for i, result := range results {
		if i > 0 {
			buf.WriteString("\n")
		}

		fm, err := yaml.Marshal(frontmatter{
			"app_id": result.AppID,
			"name":   result.Name,
			"url":    fmt.Sprintf(storeURL, result.AppID),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal frontmatter for app %d: %w", result.AppID, err)
		}

		buf.WriteString("---\n")
		buf.Write(fm)
		buf.WriteString("---\n")
		writeMarkdownItems(&buf, result.Items)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func writeMarkdownItems(buf *bytes.Buffer, items []display.Item) {
	for _, item := range items {
		switch item.Kind {
		case display.KindHeading:
			fmt.Fprintf(buf, "\n# %s\n", stripTags(item.Content))
		case display.KindImage:
			fmt.Fprintf(buf, "\n![](%s)\n", item.URL)
		case display.KindText:
			if item.Content == "" {
				continue
			}
			if item.Layout == display.LayoutFooter {
				fmt.Fprintf(buf, "\n<small>%s</small>\n", item.Content)
				continue
			}
			fmt.Fprintf(buf, "\n%s\n", item.Content)
		}
	}
}
