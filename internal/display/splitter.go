package display

import (
	"regexp"
)

var (
	brTag  = regexp.MustCompile(`(?i)<br>`)
	imgTag = regexp.MustCompile(`(?i)<img\s(?:[^>]*?\s)?src="([^"]*)"[^>]*>`)
)

// normalizeBreaks rewrites bare <br> tags as "<br/>\n".
func normalizeBreaks(html string) string {
	return brTag.ReplaceAllString(html, "<br/>\n")
}

// SplitInlineImages splits an HTML blob on embedded <img> tags into
// alternating text and image items.
//
// The scan moves forward from a cursor, so every byte of the input ends up in
// exactly one item even when the same tag appears more than once. Empty text
// segments are dropped; input without any image tag yields a single text item.
func SplitInlineImages(html string) []Item {
	html = normalizeBreaks(html)

	var items []Item
	cursor := 0
	for cursor < len(html) {
		loc := imgTag.FindStringSubmatchIndex(html[cursor:])
		if loc == nil {
			break
		}
		start, end := cursor+loc[0], cursor+loc[1]
		src := html[cursor+loc[2] : cursor+loc[3]]

		if start > cursor {
			items = append(items, HTMLText(html[cursor:start]))
		}
		items = append(items, Image(src))
		cursor = end
	}

	if cursor < len(html) {
		items = append(items, HTMLText(html[cursor:]))
	}
	if len(items) == 0 {
		items = append(items, HTMLText(html))
	}
	return items
}
