// Package smithwaterman defines configuration for the affine-gap local
// alignment scorer.
//
// Options:
//
//	– Match / Mismatch:       score contribution of aligning two characters.
//	– GapStart / GapContinue: affine gap model — opening a gap costs
//	                          GapStart, extending an open gap costs
//	                          GapContinue (typically cheaper).
//	– Norm:                   length statistic scaling the raw score into
//	                          [0,1]: NormMin, NormMax or NormMean.
//
// Errors (sentinel):
//
//	– ErrBadWeights if Match < max(Mismatch, GapStart, GapContinue).
//	– ErrBadNorm    if Norm is not one of the three recognized statistics.
package smithwaterman

import (
	"errors"
	"math"
)

// Sentinel errors returned before any alignment runs.
var (
	// ErrBadWeights indicates that Match does not dominate the penalties;
	// such a configuration cannot produce a meaningful local alignment.
	ErrBadWeights = errors.New("smithwaterman: match must be >= mismatch, gap-start and gap-continue")

	// ErrBadNorm indicates an unrecognized normalization statistic.
	ErrBadNorm = errors.New("smithwaterman: unknown normalization")
)

// Norm selects the length statistic used to scale the raw alignment score.
type Norm string

const (
	// NormMin divides by the shorter string's length times Match.
	NormMin Norm = "min"

	// NormMax divides by the longer string's length times Match.
	NormMax Norm = "max"

	// NormMean divides by the mean of the two lengths times Match.
	NormMean Norm = "mean"
)

// Options configures the local alignment scorer.
type Options struct {
	// Match is added when two characters agree. Must dominate the penalties.
	Match float64

	// Mismatch is added when two aligned characters differ.
	Mismatch float64

	// GapStart is the cost of opening a gap.
	GapStart float64

	// GapContinue is the cost of extending an already-open gap.
	GapContinue float64

	// Norm selects the length statistic for normalization.
	Norm Norm
}

// DefaultOptions mirrors the classic record-linkage parameterization:
// strong match reward, symmetric mismatch and gap-open penalty, cheap gap
// extension, mean-length normalization.
func DefaultOptions() Options {
	return Options{Match: 5, Mismatch: -5, GapStart: -5, GapContinue: -1, Norm: NormMean}
}

// validate enforces the configuration contract before the DP runs.
func (o Options) validate() error {
	if o.Match < math.Max(o.Mismatch, math.Max(o.GapStart, o.GapContinue)) {
		return ErrBadWeights
	}
	switch o.Norm {
	case NormMin, NormMax, NormMean:
		return nil
	}
	return ErrBadNorm
}
