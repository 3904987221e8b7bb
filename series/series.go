// Package series defines the aligned-series data model shared by every
// similarity scorer: optional strings, optional scores, the equal-length
// contract, and the order-preserving batch runner.
//
// Errors (sentinel):
//
//	– ErrLengthMismatch if the two input series differ in length.
package series

import (
	"errors"
	"strconv"
)

// ErrLengthMismatch indicates that the two input series differ in length.
// It is returned before any per-pair computation takes place.
var ErrLengthMismatch = errors.New("series: input series must have equal length")

// String is an optional string: a present value or a missing-value marker.
// The zero value is missing.
type String struct {
	value   string
	present bool
}

// Some returns a present String holding s. Note that Some("") is a present
// empty string, which is distinct from a missing value.
func Some(s string) String { return String{value: s, present: true} }

// None returns a missing String.
func None() String { return String{} }

// Value returns the held string; it is empty when the String is missing.
func (s String) Value() string { return s.value }

// Missing reports whether no value is present.
func (s String) Missing() bool { return !s.present }

// Strings wraps raw strings into a series of present values.
func Strings(ss ...string) []String {
	out := make([]String, len(ss))
	for i, s := range ss {
		out[i] = Some(s)
	}
	return out
}

// Score is an optional float64: a computed score or a missing-value marker.
// The zero value is missing, so a missing score can never be confused with
// a legitimate 0.0.
type Score struct {
	value   float64
	present bool
}

// Value returns a present Score holding v.
func Value(v float64) Score { return Score{value: v, present: true} }

// NA returns a missing Score.
func NA() Score { return Score{} }

// Float64 returns the held value and whether one is present.
func (s Score) Float64() (float64, bool) { return s.value, s.present }

// Missing reports whether no value is present.
func (s Score) Missing() bool { return !s.present }

// String renders the score for display: "NA" when missing.
func (s Score) String() string {
	if !s.present {
		return "NA"
	}
	return strconv.FormatFloat(s.value, 'g', -1, 64)
}
