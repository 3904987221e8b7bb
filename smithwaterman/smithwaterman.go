package smithwaterman

import (
	"math"

	"github.com/danakf/recordlinkage/series"
)

// trace marks which predecessor direction(s) achieved a cell's best score.
// A cell can carry several tags when moves tie; the next cell's
// gap-continuation test checks membership, not a single path.
type trace uint8

const (
	traceDiag trace = 1 << iota
	traceLeft
	traceAbove
)

// Similarity scores each aligned pair with an affine-gap Smith-Waterman
// local alignment, normalized into [0,1] by the configured length
// statistic. nil opts means DefaultOptions.
//
// Either string of a pair empty scores 0 regardless of parameters; a
// missing value on either side scores NA.
func Similarity(a, b []series.String, opts *Options, seriesOpts ...series.Option) ([]series.Score, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return series.Apply(a, b, series.PresentPair(func(x, y string) series.Score {
		return series.Value(o.alignPair(x, y))
	}), seriesOpts...)
}

// alignPair returns the normalized best local-alignment score for one pair.
func (o Options) alignPair(x, y string) float64 {
	rx, ry := []rune(x), []rune(y)
	if len(rx) == 0 || len(ry) == 0 {
		return 0
	}
	return o.normalize(o.bestScore(rx, ry), len(rx), len(ry))
}

// bestScore fills the (n+1)x(m+1) score matrix and returns the highest
// value ever written to any cell. No alignment is reconstructed; the trace
// matrix exists solely so gap moves can tell whether the predecessor cell
// already reached its best via the same gap direction (continue) or not
// (start). Both matrices are transient and released when the pair is done.
func (o Options) bestScore(rx, ry []rune) float64 {
	n, m := len(rx), len(ry)
	score := make([][]float64, n+1)
	tags := make([][]trace, n+1)
	for i := range score {
		score[i] = make([]float64, m+1)
		tags[i] = make([]trace, m+1)
	}

	var highest float64
	for x := 1; x <= n; x++ {
		for y := 1; y <= m; y++ {
			diag := score[x-1][y-1] + o.Mismatch
			if rx[x-1] == ry[y-1] {
				diag = score[x-1][y-1] + o.Match
			}
			left := score[x-1][y] + o.gapCost(tags[x-1][y], traceLeft)
			above := score[x][y-1] + o.gapCost(tags[x][y-1], traceAbove)

			best := math.Max(diag, math.Max(left, above))
			if best <= 0 {
				// Local alignment restarts: the cell stays 0, untagged.
				continue
			}

			var t trace
			if best == diag {
				t |= traceDiag
			}
			if best == above {
				t |= traceAbove
			}
			if best == left {
				t |= traceLeft
			}
			score[x][y] = best
			tags[x][y] = t

			if best > highest {
				highest = best
			}
		}
	}
	return highest
}

// gapCost prices a gap move in direction dir arriving from a predecessor
// with tag set prev.
func (o Options) gapCost(prev, dir trace) float64 {
	if prev&dir != 0 {
		return o.GapContinue
	}
	return o.GapStart
}

// normalize scales the raw score by lengthStat(la, lb) * Match.
func (o Options) normalize(raw float64, la, lb int) float64 {
	switch o.Norm {
	case NormMin:
		return raw / (float64(min(la, lb)) * o.Match)
	case NormMax:
		return raw / (float64(max(la, lb)) * o.Match)
	default: // NormMean, validated upstream
		return 2 * raw / (float64(la+lb) * o.Match)
	}
}
