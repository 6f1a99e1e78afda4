package workload

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName es la clave interna de agrupamiento: descompone,
// quita tildes, recorta y pasa a minúsculas. El nombre visible no
// se toca.
func NormalizeName(name string) string {
	clean, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		clean = name
	}
	return strings.ToLower(strings.TrimSpace(clean))
}
