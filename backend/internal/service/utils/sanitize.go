package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds decoding of nested entity escapes such as &amp;lt;.
const maxPasses = 4

// Sanitizer strips markup from user supplied text.
// Content is stored as plain text; clients escape it when rendering.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text returns text with all markup removed, including markup hidden
// behind entity escapes. The result is stable: sanitizing and decoding
// it again yields the same string.
func (s *Sanitizer) Text(text string) string {
	for i := 0; i < maxPasses; i++ {
		plain := html.UnescapeString(s.policy.Sanitize(text))
		if plain == text {
			return strings.TrimSpace(plain)
		}
		text = plain
	}
	// Still changing: keep the escaped form so nothing decodes into a tag.
	return strings.TrimSpace(s.policy.Sanitize(text))
}
