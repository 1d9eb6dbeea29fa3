// Package sanitize cleans free text before it is echoed back inside generated scripts.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
	)
)

// StripHTML removes HTML tags, decodes the common entities and strips again
// so encoded tags do not survive.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = entityReplacer.Replace(result)
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Placeholder prepares a name-like value for substitution into a script line:
// no markup, a single line, and at most maxRunes characters. A maxRunes of
// zero or less disables truncation.
func Placeholder(s string, maxRunes int) string {
	result := whitespaceRegex.ReplaceAllString(StripHTML(s), " ")
	if maxRunes <= 0 {
		return result
	}
	runes := []rune(result)
	if len(runes) <= maxRunes {
		return result
	}
	return strings.TrimSpace(string(runes[:maxRunes]))
}
