package ngram

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// whitespaceRuns matches two or more consecutive whitespace characters.
// Only runs fold to a single space; a lone tab or newline passes through
// and stays visible to the plain character analyzer.
var whitespaceRuns = regexp.MustCompile(`\s\s+`)

// normalize prepares a string for extraction: diacritics stripped,
// lowercased, whitespace runs folded to single spaces.
func normalize(s string) string {
	// NFD decompose, drop combining marks, NFC recompose. The transformer
	// chain is stateful, so a fresh one is built per call.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(strip, s); err == nil {
		s = stripped
	}
	s = strings.ToLower(s)
	return whitespaceRuns.ReplaceAllString(s, " ")
}

// grams extracts every n-gram of s for each n in [MinN, MaxN], after
// normalization. Rune-wise, so multi-byte characters count as one position.
func (o Options) grams(s string) []string {
	s = normalize(s)
	if s == "" {
		return nil
	}

	if o.WordBoundary {
		// Fields splits on any whitespace, so a surviving lone tab still
		// separates words and never reaches a padded gram.
		var out []string
		for _, w := range strings.Fields(s) {
			out = o.paddedGrams(out, w)
		}
		return out
	}

	r := []rune(s)
	var out []string
	for n := o.MinN; n <= o.MaxN; n++ {
		for i := 0; i+n <= len(r); i++ {
			out = append(out, string(r[i:i+n]))
		}
	}
	return out
}

// paddedGrams appends the n-grams of one word padded with a boundary space
// on each side. A padded word no longer than n is emitted whole, once:
// shorter words still contribute a single identifying gram.
func (o Options) paddedGrams(dst []string, word string) []string {
	r := []rune(" " + word + " ")
	for n := o.MinN; n <= o.MaxN; n++ {
		if len(r) <= n {
			dst = append(dst, string(r))
			break
		}
		for i := 0; i+n <= len(r); i++ {
			dst = append(dst, string(r[i:i+n]))
		}
	}
	return dst
}
