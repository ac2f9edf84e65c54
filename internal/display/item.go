// Package display turns parsed store entries into an ordered list of display items.
package display

// Kind identifies the variant of an Item.
type Kind string

const (
	KindHeading Kind = "heading"
	KindText    Kind = "text"
	KindImage   Kind = "image"
	KindSpacer  Kind = "spacer"
)

// Layout selects how a consumer lays out a text item.
type Layout string

const (
	LayoutDefault Layout = "default"
	// LayoutFooter marks the end-of-list footer (the legal notice).
	LayoutFooter Layout = "footer"
)

// Item is one renderable unit. Items have no identity beyond their position.
type Item struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	HTML    bool   `json:"html,omitempty" yaml:"html,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Layout  Layout `json:"layout,omitempty" yaml:"layout,omitempty"`
	Last    bool   `json:"last,omitempty" yaml:"last,omitempty"`
}

// Heading returns a heading item; content is already-escaped HTML.
func Heading(html string) Item {
	return Item{Kind: KindHeading, Content: html, HTML: true, Layout: LayoutDefault}
}

// HTMLText returns a text item carrying HTML content.
func HTMLText(html string) Item {
	return Item{Kind: KindText, Content: html, HTML: true, Layout: LayoutDefault}
}

// Image returns an image item for url.
func Image(url string) Item {
	return Item{Kind: KindImage, URL: url}
}

// Spacer returns a spacer item.
func Spacer() Item {
	return Item{Kind: KindSpacer}
}

// Footer returns the terminal text item of a list.
func Footer(html string) Item {
	return Item{Kind: KindText, Content: html, HTML: true, Layout: LayoutFooter, Last: true}
}
