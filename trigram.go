// Trigram extraction with diacritic folding.
//
// Trigrams feed the same lexicon filters as whole words: building a
// filter over a language's trigrams gives a signal that survives
// misspellings and inflection where whole-word lookup fails. Input is
// folded to ASCII first (café → cafe, piñata → pinata) so that accented
// and unaccented spellings produce the same trigrams.
package floret

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes to NFD, strips combining marks, and recomposes.
// Safe for concurrent use: transform.Chain values are stateless until
// bound to a transformer, and transform.String binds per call.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Trigrams returns the distinct three-character windows of s after
// diacritic folding and lowercasing, in order of first appearance.
// Windows slide one rune at a time; strings shorter than three runes
// yield nil.
func Trigrams(s string) []string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}
	r := []rune(strings.ToLower(folded))
	if len(r) < 3 {
		return nil
	}

	seen := make(map[string]struct{}, len(r))
	out := make([]string, 0, len(r)-2)
	for i := 0; i+3 <= len(r); i++ {
		tri := string(r[i : i+3])
		if _, ok := seen[tri]; ok {
			continue
		}
		seen[tri] = struct{}{}
		out = append(out, tri)
	}
	return out
}
