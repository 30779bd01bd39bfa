package svgmap

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// regionKeyReplacer is the closed substitution table applied to column
// headers. Characters outside it pass through unchanged.
var regionKeyReplacer = strings.NewReplacer(
	"ü", "ue",
	"ä", "ae",
	"ö", "oe",
	"ß", "ss",
	" ", "_",
)

// RegionKey derives the element identifier for a column header.
// The header is first composed to NFC so that a decomposed "u" plus
// combining diaeresis matches the table like a precomposed "ü".
func RegionKey(header string) string {
	return regionKeyReplacer.Replace(norm.NFC.String(header))
}
