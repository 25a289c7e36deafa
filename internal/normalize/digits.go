package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Zero code points of the decimal digit blocks folded to ASCII. Fullwidth
// digits are handled by NFKC before this table is consulted.
var digitZeros = []rune{
	'٠', // Arabic-Indic
	'۰', // Extended Arabic-Indic
	'०', // Devanagari
	'০', // Bengali
	'๐', // Thai
}

// FoldDigits applies NFKC compatibility folding and rewrites non-Latin decimal
// digits to their ASCII equivalents. Letters and punctuation are left alone.
func FoldDigits(s string) string {
	s = norm.NFKC.String(s)
	return strings.Map(func(r rune) rune {
		for _, zero := range digitZeros {
			if r >= zero && r <= zero+9 {
				return '0' + (r - zero)
			}
		}
		return r
	}, s)
}
