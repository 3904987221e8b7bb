package editdist

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/antzucaro/matchr"

	"github.com/danakf/recordlinkage/series"
)

// Jaro scores each aligned pair with the Jaro similarity, already in [0,1].
func Jaro(a, b []series.String, opts ...series.Option) ([]series.Score, error) {
	return series.Apply(a, b, series.PresentPair(func(x, y string) series.Score {
		return series.Value(matchr.Jaro(x, y))
	}), opts...)
}

// JaroWinkler scores each aligned pair with the Jaro-Winkler similarity:
// Jaro boosted for a shared prefix of up to four characters.
func JaroWinkler(a, b []series.String, opts ...series.Option) ([]series.Score, error) {
	return series.Apply(a, b, series.PresentPair(func(x, y string) series.Score {
		return series.Value(matchr.JaroWinkler(x, y, false))
	}), opts...)
}

// Levenshtein scores each aligned pair with length-normalized Levenshtein
// similarity: 1 - distance/max(len), so identical strings score 1.
func Levenshtein(a, b []series.String, opts ...series.Option) ([]series.Score, error) {
	return series.Apply(a, b, series.PresentPair(func(x, y string) series.Score {
		return normalized(levenshtein.ComputeDistance(x, y), x, y)
	}), opts...)
}

// DamerauLevenshtein scores each aligned pair with length-normalized
// Damerau-Levenshtein similarity, where a transposition counts as one edit.
func DamerauLevenshtein(a, b []series.String, opts ...series.Option) ([]series.Score, error) {
	return series.Apply(a, b, series.PresentPair(func(x, y string) series.Score {
		return normalized(matchr.DamerauLevenshtein(x, y), x, y)
	}), opts...)
}

// normalized maps an edit distance to 1 - dist/max(rune length). When both
// strings are empty there is no length to normalize by; that pair scores NA
// rather than dividing zero by zero.
func normalized(dist int, x, y string) series.Score {
	longest := max(utf8.RuneCountInString(x), utf8.RuneCountInString(y))
	if longest == 0 {
		return series.NA()
	}
	return series.Value(1 - float64(dist)/float64(longest))
}
