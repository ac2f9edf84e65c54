package display

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/lepinkainen/storeview/internal/storeapi"
)

// DefaultIconBaseURL is where the store serves category icons.
const DefaultIconBaseURL = "https://steamstore-a.akamaihd.net/public/images/v6/ico"

// Transformer converts parsed app details into display items.
type Transformer struct {
	iconBaseURL string
}

// TransformerOption configures a Transformer.
type TransformerOption func(*Transformer)

// WithIconBaseURL overrides the category icon CDN base.
func WithIconBaseURL(base string) TransformerOption {
	return func(t *Transformer) {
		if base != "" {
			t.iconBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// NewTransformer creates a Transformer.
func NewTransformer(opts ...TransformerOption) *Transformer {
	t := &Transformer{iconBaseURL: DefaultIconBaseURL}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform builds the item list for one app, in this order: title, synopsis
// with inline images, release date, genres, category icons, spacer,
// screenshots, legal notice. Absent fields drop only their own items.
func (t *Transformer) Transform(details *storeapi.AppDetails) []Item {
	items := []Item{
		Heading("<h1>" + html.EscapeString(details.Name) + "</h1>"),
	}

	if details.AboutTheGame != nil {
		items = append(items, SplitInlineImages(*details.AboutTheGame)...)
	}

	if details.ReleaseDate != nil {
		items = append(items, HTMLText("<strong>Release:</strong> "+*details.ReleaseDate))
	}

	if len(details.Genres) > 0 {
		items = append(items, HTMLText("<strong>Genre:</strong> "+strings.Join(details.Genres, ", ")))
	}

	if details.HasCategories() {
		items = append(items, HTMLText(t.categoryIcons(details.AppID, details.Categories)))
	}

	items = append(items, Spacer())

	for _, thumb := range details.Screenshots {
		items = append(items, Image(thumb))
	}

	if details.LegalNotice != nil {
		items = append(items, Footer(*details.LegalNotice))
	}

	return items
}

// categoryIcons renders one inline icon per known category; unknown IDs are skipped.
func (t *Transformer) categoryIcons(appID int, ids []int) string {
	var sb strings.Builder
	for _, id := range ids {
		icon, ok := CategoryIcon(id)
		if !ok {
			slog.Debug("No icon for category", "appid", appID, "category", id)
			continue
		}
		fmt.Fprintf(&sb, `<img src="%s/%s.png" style="width: 26px; height: 16px;">`, t.iconBaseURL, icon)
	}
	return sb.String()
}
