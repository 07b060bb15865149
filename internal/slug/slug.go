package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make derives a URL-safe slug from a display name: lowercase, diacritics
// stripped, runs of non-alphanumerics collapsed into single dashes, leading
// and trailing dashes trimmed.
func Make(name string) string {
	s, _, err := transform.String(diacritics, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix appends the last six characters of id to a slug that collided
// with another profile's slug.
func WithSuffix(base, id string) string {
	suffix := id
	if len(id) > 6 {
		suffix = id[len(id)-6:]
	}
	return base + "-" + suffix
}
