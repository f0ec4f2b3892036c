package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Make converts a title to a URL-friendly slug.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonWord.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
