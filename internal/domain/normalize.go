package domain

import (
	"regexp"
	"strings"
)

var (
	// markupRe matches HTML/XML tags; feed descriptions routinely embed them.
	markupRe = regexp.MustCompile(`<[^>]+>`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText strips markup and normalizes whitespace in a raw text fragment.
// Tags are replaced by a single space, non-breaking spaces become regular
// spaces, zero-width spaces are removed, and runs of whitespace collapse to
// one space. Empty input yields an empty string.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = markupRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "\u200b", "")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
