package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a title into a URL-safe slug:
// "My Résumé Site" → "my-resume-site"
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(ascii)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugHyphens.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// RemoveDiacritics maps accented characters to their base form by
// decomposing to NFD and stripping combining marks.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}
