// Package htmlsanitize strips markup from operator-supplied free text
// before it is stored or rendered. Presence detail, audit summaries, and
// similar fields accept arbitrary text from editors; everything passes
// through the strict policy so stored values are plain text.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text returns s with all HTML elements removed and surrounding
// whitespace trimmed.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
