package listing

import (
	"html"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// TruthyStrings are string values which can be used in properties to represent true.
var TruthyStrings = []string{"1", "y", "true"}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// NormalizeTitle collapses whitespace, replaces colons with " -" and trims
// leading spaces and "+-!?" characters. Etsy rejects titles starting with those.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(whitespacePattern.ReplaceAllString(title, " "))
	title = strings.ReplaceAll(title, ":", " -")
	return strings.TrimLeft(title, " +-!?")
}

// StripDescription removes html tags and decodes html entities.
func StripDescription(description string) string {
	return html.UnescapeString(htmlTagPattern.ReplaceAllString(description, ""))
}

// Truthy reports whether value is one of the truthy string tokens, case-insensitive.
func Truthy(value string) bool {
	return lo.Contains(TruthyStrings, strings.ToLower(value))
}
