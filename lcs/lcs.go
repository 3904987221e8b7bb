package lcs

import (
	"log/slog"

	"github.com/danakf/recordlinkage/series"
)

// Similarity scores each aligned pair by repeatedly extracting the longest
// common substring, accumulating the extracted lengths in both pair
// orderings, normalizing each total and averaging. nil opts means
// DefaultOptions.
//
// A missing value on either side scores NA. A pair whose shorter string is
// below MinLen scores 0 without running the extraction loop.
func Similarity(a, b []series.String, opts *Options, seriesOpts ...series.Option) ([]series.Score, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MinLen < 1 {
		return nil, ErrBadMinLen
	}
	o.Norm = o.resolveNorm()
	return series.Apply(a, b, series.PresentPair(func(x, y string) series.Score {
		return series.Value(o.scorePair(x, y))
	}), seriesOpts...)
}

// resolveNorm maps an unrecognized normalization to dice, warning once per
// call rather than once per pair.
func (o Options) resolveNorm() Norm {
	switch o.Norm {
	case NormOverlap, NormJaccard, NormDice:
		return o.Norm
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("unrecognized longest-common-substring normalization, defaulting to dice",
		"norm", string(o.Norm))
	return NormDice
}

// scorePair runs the extraction in both orderings and averages the
// normalized totals. Excision order matters: removing one substring can
// destroy or expose later matches, so the two orderings may diverge.
func (o Options) scorePair(x, y string) float64 {
	rx, ry := []rune(x), []rune(y)
	if min(len(rx), len(ry)) < o.MinLen {
		return 0
	}
	forward := o.extract(rx, ry)
	reverse := o.extract(ry, rx)
	return (o.normalizeTotal(forward, len(rx), len(ry)) +
		o.normalizeTotal(reverse, len(rx), len(ry))) / 2
}

// extract accumulates common-substring lengths, excising each extracted
// substring from both strings before searching again. The loop stops at the
// first length below MinLen, which is discarded rather than accumulated.
func (o Options) extract(s1, s2 []rune) int {
	total := 0
	for {
		n, r1, r2 := longestCommonSubstring(s1, s2, o.MinLen)
		if n < o.MinLen {
			return total
		}
		total += n
		s1, s2 = r1, r2
	}
}

// longestCommonSubstring finds the longest contiguous common substring via
// the standard suffix-run DP matrix and returns its length together with
// both inputs spliced around the first occurrence. Inputs shorter than
// minLen come back untouched with length 0.
func longestCommonSubstring(s1, s2 []rune, minLen int) (int, []rune, []rune) {
	if min(len(s1), len(s2)) < minLen {
		return 0, s1, s2
	}

	run := make([][]int, len(s1)+1)
	for i := range run {
		run[i] = make([]int, len(s2)+1)
	}

	longest, endX, endY := 0, 0, 0
	for x := 1; x <= len(s1); x++ {
		for y := 1; y <= len(s2); y++ {
			if s1[x-1] != s2[y-1] {
				continue
			}
			run[x][y] = run[x-1][y-1] + 1
			if run[x][y] > longest {
				longest = run[x][y]
				endX, endY = x, y
			}
		}
	}

	return longest, excise(s1, endX, longest), excise(s2, endY, longest)
}

// excise returns s with the substring ending at end (exclusive) and of the
// given length spliced out.
func excise(s []rune, end, length int) []rune {
	out := make([]rune, 0, len(s)-length)
	out = append(out, s[:end-length]...)
	return append(out, s[end:]...)
}

// normalizeTotal scales an accumulated length by the original pair lengths.
func (o Options) normalizeTotal(total, la, lb int) float64 {
	switch o.Norm {
	case NormOverlap:
		return float64(total) / float64(min(la, lb))
	case NormJaccard:
		return float64(total) / float64(la+lb-total)
	default: // NormDice, resolved upstream
		return 2 * float64(total) / float64(la+lb)
	}
}
