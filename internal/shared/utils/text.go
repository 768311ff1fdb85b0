package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var stripPolicy = bluemonday.StrictPolicy()

// NormalizeText strips markup, composes to Unicode NFC and trims
// whitespace. Values compared for equality (group names) must pass through
// it so visually identical input maps to one key.
func NormalizeText(s string) string {
	s = html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.TrimSpace(norm.NFC.String(s))
}

// NormalizeOptional applies NormalizeText to a non-nil pointer and turns
// an empty result into nil.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := NormalizeText(*s)
	if v == "" {
		return nil
	}
	return &v
}
