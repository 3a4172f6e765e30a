package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics decomposes accented characters and drops the combining marks,
// so "Ríos" becomes "Rios".
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify normalizes a display name into a username base.
// "Valentina Ríos" -> "valentina_rios". Only [a-z0-9_] survive.
func Slugify(name string) string {
	stripped, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		stripped = name
	}

	lowered := strings.ToLower(strings.TrimSpace(stripped))
	joined := strings.Join(strings.Fields(lowered), "_")

	var b strings.Builder
	for _, ch := range joined {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
