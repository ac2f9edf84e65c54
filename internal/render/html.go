package render

import (
	"html"
	"path"
	"regexp"
	"strings"
)

var (
	imgTag      = regexp.MustCompile(`(?i)<img\s(?:[^>]*?\s)?src="([^"]*)"[^>]*>`)
	breakTag    = regexp.MustCompile(`(?i)<br\s*/?>\n?`)
	blockEnd    = regexp.MustCompile(`(?i)</(?:p|div|li|ul|ol|h[1-6])>`)
	listItem    = regexp.MustCompile(`(?i)<li[^>]*>`)
	anyTag      = regexp.MustCompile(`<[^>]*>`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
	inlineSpace = regexp.MustCompile(`[ \t]+`)
)

// plainText reduces an HTML fragment to readable terminal text. Inline images
// become bracketed names, so a category icon line reads "[multiPlayer] [coop]".
func plainText(fragment string) string {
	s := imgTag.ReplaceAllStringFunc(fragment, func(tag string) string {
		m := imgTag.FindStringSubmatch(tag)
		return "[" + imageName(m[1]) + "] "
	})
	s = breakTag.ReplaceAllString(s, "\n")
	s = listItem.ReplaceAllString(s, "- ")
	s = blockEnd.ReplaceAllString(s, "\n")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// stripTags removes markup but keeps entities escaped.
func stripTags(fragment string) string {
	return strings.TrimSpace(anyTag.ReplaceAllString(fragment, ""))
}

func imageName(src string) string {
	base := path.Base(src)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	return strings.TrimPrefix(base, "ico_")
}
