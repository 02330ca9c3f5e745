package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// stripDiacritics decompõe (NFD) e remove as marcas combinantes: "é" -> "e".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converte um nome de empresa num slug de domínio:
// "Café & Cie" -> "cafe-cie".
func Slugify(name string) string {
	lowered := strings.ToLower(name)

	ascii, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		ascii = lowered
	}

	slug := nonAlphanumeric.ReplaceAllString(ascii, "-")
	return strings.Trim(slug, "-")
}
