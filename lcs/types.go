// Package lcs defines configuration for the iterative
// longest-common-substring scorer.
//
// Options:
//
//	– Norm:   scaling of the accumulated substring length — NormOverlap,
//	          NormJaccard or NormDice (default). An unrecognized value
//	          falls back to dice with a logged warning.
//	– MinLen: substrings shorter than this do not count (default 2).
//	– Logger: destination for the fallback warning; nil means slog.Default().
//
// Errors (sentinel):
//
//	– ErrBadMinLen if MinLen < 1.
package lcs

import (
	"errors"
	"log/slog"
)

// ErrBadMinLen indicates a minimum substring length below 1, which would
// make the extraction loop meaningless.
var ErrBadMinLen = errors.New("lcs: MinLen must be >= 1")

// Norm selects how the accumulated common-substring length is scaled by the
// two string lengths.
type Norm string

const (
	// NormOverlap divides by the shorter string's length.
	NormOverlap Norm = "overlap"

	// NormJaccard divides by the union size: len(a) + len(b) - total.
	NormJaccard Norm = "jaccard"

	// NormDice divides twice the total by the summed lengths.
	NormDice Norm = "dice"
)

// Options configures the longest-common-substring scorer.
type Options struct {
	// Norm selects the normalization. Unrecognized values are not fatal:
	// the scorer warns and proceeds with NormDice.
	Norm Norm

	// MinLen is the shortest common substring worth extracting.
	MinLen int

	// Logger receives the unrecognized-norm warning. nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the standard configuration: dice normalization,
// substrings of at least two characters.
func DefaultOptions() Options {
	return Options{Norm: NormDice, MinLen: 2}
}
