package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lepinkainen/storeview/internal/display"
	"github.com/lepinkainen/storeview/internal/service"
)

type textStyles struct {
	heading lipgloss.Style
	image   lipgloss.Style
	footer  lipgloss.Style
	rule    lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer) textStyles {
	return textStyles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		image:   r.NewStyle().Foreground(lipgloss.Color("110")),
		footer:  r.NewStyle().Faint(true).Italic(true),
		rule:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// renderText writes a terminal-friendly rendition. Colors are only emitted when
// w is a terminal.
func renderText(w io.Writer, results []*service.Result) error {
	styles := newTextStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	for i, result := range results {
		if i > 0 {
			b.WriteString(styles.rule.Render(strings.Repeat("─", 40)))
			b.WriteString("\n\n")
		}
		writeTextItems(&b, styles, result.Items)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextItems(b *strings.Builder, styles textStyles, items []display.Item) {
	for _, item := range items {
		switch item.Kind {
		case display.KindHeading:
			fmt.Fprintf(b, "%s\n\n", styles.heading.Render(plainText(item.Content)))
		case display.KindImage:
			fmt.Fprintf(b, "%s\n", styles.image.Render("[image] "+item.URL))
		case display.KindSpacer:
			b.WriteString("\n")
		case display.KindText:
			text := plainText(item.Content)
			if text == "" {
				continue
			}
			if item.Layout == display.LayoutFooter {
				b.WriteString("\n")
				for _, line := range strings.Split(text, "\n") {
					fmt.Fprintf(b, "%s\n", styles.footer.Render(line))
				}
				continue
			}
			fmt.Fprintf(b, "%s\n", text)
		}
	}
}
