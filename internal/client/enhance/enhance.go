// Package enhance provides the collaborators that rewrite a CV summary:
// the backend's enhancement endpoint and a locally configured LLM.
package enhance

import (
	"errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrEmptySuggestion is returned when a provider produced no usable text.
var ErrEmptySuggestion = errors.New("enhancement returned no text")

var policy = bluemonday.StrictPolicy()

// Sanitize strips markup from provider output and normalises whitespace.
// Suggestions are shown in a terminal and may end up in the CV, so only
// plain text survives. Line breaks are kept; blank lines between
// paragraphs are collapsed to one.
func Sanitize(s string) (string, error) {
	s = policy.Sanitize(s)
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	s = strings.TrimRight(strings.Join(out, "\n"), "\n")
	if s == "" {
		return "", ErrEmptySuggestion
	}
	return s, nil
}
